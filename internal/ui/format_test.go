package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{512, "512 B"},
		{999, "999 B"},
		{1000, "1 KB"},
		{1500, "1.5 KB"},
		{2048, "2 KB"},
		{550000000, "550 MB"},
		{550002048, "550 MB"},
		{1200000000, "1.2 GB"},
		{4000000000000, "4 TB"},
		{1000000000000000, "1 PB"},
		{1000000000000000000, "1 EB"},
		{math.MaxInt64, "9.2 EB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}
