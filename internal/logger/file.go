package logger

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// debugLogName is the rotating debug log file, kept under ~/.gitcleaner.
const debugLogName = "debug.log"

// OpenDebugLog returns a size-rotated writer for the debug log. Rotation keeps
// the log bounded even for very large trees; three 5 MB generations is plenty
// for a tool whose runs are seconds long.
func OpenDebugLog() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".gitcleaner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, debugLogName),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}, nil
}
