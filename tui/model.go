// Package tui runs the countdown in a terminal with bubbletea. The model
// feeds bubbletea messages through control.Step, so the terminal and the
// desktop window share the same event semantics.
package tui

import (
	"Countdown/clock"
	"Countdown/control"
	"Countdown/timer"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxProgressWidth = 40

// connectMsg is sent once the program has started.
type connectMsg struct{}

// tickMsg carries the token of the tick that produced it.
type tickMsg struct {
	token control.Token
}

// Model is the bubbletea model wrapping a Countdown.
type Model struct {
	countdown *timer.Countdown
	interval  time.Duration
	token     control.Token
	onExpire  func()

	keys     KeyMap
	help     help.Model
	progress progress.Model
	styles   Style
	quitting bool
}

// NewModel creates a model driving c. onExpire may be nil.
func NewModel(c *timer.Countdown, interval time.Duration, onExpire func()) Model {
	if interval <= 0 {
		interval = control.DefaultTickInterval
	}
	p := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	p.Width = maxProgressWidth

	return Model{
		countdown: c,
		interval:  interval,
		onExpire:  onExpire,
		keys:      DefaultKeys(),
		help:      help.New(),
		progress:  p,
		styles:    DefaultStyle(),
	}
}

// Run starts a full-screen terminal countdown built from cfg.
func Run(cfg *timer.Config, clk clock.Clock, onExpire func()) error {
	c := timer.New(clk, cfg.CountdownDuration(), cfg.InitialStatus())
	_, err := tea.NewProgram(NewModel(c, cfg.TickInterval(), onExpire), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return connectMsg{} }
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectMsg:
		return m.step(control.EventConnect)

	case tickMsg:
		if !control.Live(msg.token, m.token) {
			return m, nil
		}
		return m.step(control.EventTick)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = max(min(msg.Width-8, maxProgressWidth), 10)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m.step(control.EventToggle)
		case key.Matches(msg, m.keys.Reset):
			return m.step(control.EventReset)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// step applies ev and arms the next tick while the countdown runs. Any other
// event that does not reschedule invalidates the pending tick.
func (m Model) step(ev control.EventType) (Model, tea.Cmd) {
	out := control.Step(ev, m.countdown)

	var cmd tea.Cmd
	var arm bool
	m.token, arm = control.NextToken(ev, out, m.token)
	if arm {
		cmd = tick(m.interval, m.token)
	}

	if out.Expired && m.onExpire != nil {
		m.onExpire()
	}
	return m, cmd
}

func tick(d time.Duration, token control.Token) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{token: token}
	})
}
