package tui

import (
	"Countdown/i18n"
	"Countdown/timer"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.countdown.Snapshot()

	var status string
	switch s.Status {
	case timer.StatusRunning:
		status = m.styles.Running.Render(i18n.T("Running"))
	case timer.StatusPaused:
		status = m.styles.Paused.Render(i18n.T("Paused"))
	case timer.StatusExpired:
		status = m.styles.Expired.Render(i18n.T("Time's up!"))
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render("Countdown"),
		m.styles.Time.Render(s.String()),
		status,
		"",
		m.progress.ViewAs(s.Fraction()),
		"",
		m.styles.Help.Render(m.help.View(m.keys)),
	))
}
