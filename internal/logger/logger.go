// Package logger provides the leveled console logger used by all gitcleaner
// commands. Warnings and errors go to stderr so piped scan output stays clean;
// debug output is opt-in and may additionally be teed to a rotating file.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Log levels, lowest to highest severity.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// Logger writes leveled, optionally colored messages. Safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	fileOut  io.Writer
	minLevel int

	warnCount int
}

// New creates a Logger writing info to out and warnings/errors to errOut.
// With debug true, debug messages are emitted as well.
func New(out, errOut io.Writer, debug bool) *Logger {
	min := levelInfo
	if debug {
		min = levelDebug
	}
	return &Logger{out: out, errOut: errOut, minLevel: min}
}

// Default returns a Logger on stdout/stderr.
func Default(debug bool) *Logger {
	return New(os.Stdout, os.Stderr, debug)
}

// AttachFile tees every message (regardless of level) to w. Used with the
// rotating debug log.
func (l *Logger) AttachFile(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileOut = w
}

// WarnCount returns the number of warnings emitted so far.
func (l *Logger) WarnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warnCount
}

var (
	debugColor = color.New(color.FgHiBlack)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
)

func (l *Logger) log(level int, prefix string, c *color.Color, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.fileOut != nil {
		fmt.Fprintf(l.fileOut, "%s %s\n", prefix, msg)
	}
	if level < l.minLevel {
		return
	}

	w := l.out
	if level >= levelWarn {
		w = l.errOut
	}
	if w == nil {
		return
	}

	if c != nil && !color.NoColor {
		fmt.Fprintf(w, "%s %s\n", c.Sprint(prefix), msg)
	} else if prefix != "" {
		fmt.Fprintf(w, "%s %s\n", prefix, msg)
	} else {
		fmt.Fprintln(w, msg)
	}
}

// Debugf logs a debug-level message, visible only with --debug.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(levelDebug, "[debug]", debugColor, format, args...)
}

// Infof logs an informational message to stdout.
func (l *Logger) Infof(format string, args ...any) {
	l.log(levelInfo, "", nil, format, args...)
}

// Warnf logs a warning to stderr and increments the warning counter.
func (l *Logger) Warnf(format string, args ...any) {
	l.mu.Lock()
	l.warnCount++
	l.mu.Unlock()
	l.log(levelWarn, "warning:", warnColor, format, args...)
}

// Errorf logs an error to stderr.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(levelError, "error:", errColor, format, args...)
}
