package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type spinDoneMsg struct{}

// ─── Model ───────────────────────────────────────────────────────────────────

// spinModel renders "<spinner> <label>… N entries" while work runs in the
// background. The entry counter is re-read on every spinner tick.
type spinModel struct {
	sp       spinner.Model
	label    string
	count    func() int64
	quitting bool
}

func newSpinModel(label string, count func() int64) spinModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
	)
	return spinModel{sp: sp, label: label, count: count}
}

func (m spinModel) Init() tea.Cmd {
	return m.sp.Tick
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf(" %s %s… %d entries", m.sp.View(), m.label, m.count())
}

// ─── Runner ──────────────────────────────────────────────────────────────────

// RunWithSpinner executes fn, showing a spinner with a live entry counter on
// stderr while it runs. Without a TTY fn runs silently, so piped output stays
// machine-readable.
func RunWithSpinner(label string, count func() int64, fn func()) {
	if !IsTTY() {
		fn()
		return
	}

	p := tea.NewProgram(newSpinModel(label, count), tea.WithOutput(os.Stderr))
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
		p.Send(spinDoneMsg{})
	}()
	_, _ = p.Run()
	// The program can exit before fn finishes (ctrl+c, render error); the
	// work itself always runs to completion.
	<-done
}
