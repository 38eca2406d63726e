package tui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	alert     = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"}
)

// Style is the set of styles used by the view.
type Style struct {
	App     lipgloss.Style
	Title   lipgloss.Style
	Time    lipgloss.Style
	Running lipgloss.Style
	Paused  lipgloss.Style
	Expired lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyle returns the default style configuration.
func DefaultStyle() Style {
	base := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)

	return Style{
		App:     lipgloss.NewStyle().Padding(1, 2),
		Title:   base.Bold(true).Foreground(highlight),
		Time:    base.Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(highlight).Padding(0, 3),
		Running: base.Foreground(special),
		Paused:  base.Foreground(subtle),
		Expired: base.Bold(true).Foreground(alert),
		Help:    base.Foreground(subtle),
	}
}
