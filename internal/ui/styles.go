package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.Color("39")  // blue
	ColorSuccess = lipgloss.Color("42")  // green
	ColorWarning = lipgloss.Color("214") // amber
	ColorMuted   = lipgloss.Color("241") // gray
)

// ─── Styles ──────────────────────────────────────────────────────────────────

var (
	DirStyle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	SizeStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	TotalStyle = lipgloss.NewStyle().Bold(true)
	CleanStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
)

// IsTTY reports whether stdout is an interactive terminal. Controls the scan
// spinner; lipgloss handles its own color downgrade for pipes.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
