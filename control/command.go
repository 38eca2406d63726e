// Package control turns toolkit events into countdown mutations. Step is the
// pure event handler; Controller adds tick scheduling on top of it so that at
// most one tick chain is alive at a time.
package control

import "Countdown/timer"

// EventType enumerates the events the countdown reacts to.
type EventType int

const (
	// EventConnect is sent once the window (or terminal program) is up.
	EventConnect EventType = iota
	EventTick
	EventToggle
	EventReset
)

func (e EventType) String() string {
	switch e {
	case EventConnect:
		return "connect"
	case EventTick:
		return "tick"
	case EventToggle:
		return "toggle"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event is the message sent to the application command loop. Token is only
// meaningful for ticks. The optional Reply channel receives the outcome once
// the event has been handled.
type Event struct {
	Type  EventType
	Token Token
	Reply chan Outcome
}

// Outcome tells the caller what to do after an event was handled.
type Outcome struct {
	// Reschedule asks for another tick after the tick interval.
	Reschedule bool
	// Refresh asks for the display to be redrawn.
	Refresh bool
	// Expired is set when this event moved the countdown to Expired.
	Expired bool

	// Status is the countdown status after the event.
	Status timer.Status
}

// Step applies a single event to the countdown. Ticks are only rescheduled
// while the countdown is running.
func Step(ev EventType, c *timer.Countdown) Outcome {
	var out Outcome
	switch ev {
	case EventConnect:
		out.Refresh = true
		out.Reschedule = c.Status() == timer.StatusRunning
	case EventTick:
		out.Expired = c.CheckExpired()
		out.Refresh = true
		out.Reschedule = c.Status() == timer.StatusRunning
	case EventToggle:
		switch c.Status() {
		case timer.StatusRunning:
			c.Pause()
			out.Refresh = true
		case timer.StatusPaused:
			c.Resume()
			out.Refresh = true
			out.Reschedule = true
		}
	case EventReset:
		c.Reset()
		out.Refresh = true
	}
	out.Status = c.Status()
	return out
}
