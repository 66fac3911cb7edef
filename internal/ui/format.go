// Package ui holds the shared presentation layer: size formatting, lipgloss
// style tokens, the report printer, and the scan spinner.
package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// int64 tops out at ~9.2 EB, so the table covers the full range; sparse files
// can legitimately stat in the exabyte region.
var sizeUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatSize renders a byte count with decimal units ("550 MB", "4 KB").
// One decimal place, trimmed when whole.
func FormatSize(bytes int64) string {
	const unit = 1000
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	v := strconv.FormatFloat(float64(bytes)/float64(div), 'f', 1, 64)
	v = strings.TrimSuffix(v, ".0")
	return v + " " + sizeUnits[exp]
}
