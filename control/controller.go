package control

import (
	"Countdown/clock"
	"Countdown/timer"
	"time"
)

// DefaultTickInterval is how often a running countdown is refreshed.
const DefaultTickInterval = 200 * time.Millisecond

// Token identifies an armed tick. Zero never matches an armed tick.
type Token uint64

// Live reports whether a tick carrying tok belongs to the current chain.
func Live(tok, current Token) bool {
	return tok != 0 && tok == current
}

// NextToken returns the token to hold after ev produced out, and whether a
// new tick must be armed with it. Every event except a tick that does not
// reschedule retires the current token.
func NextToken(ev EventType, out Outcome, current Token) (Token, bool) {
	switch {
	case out.Reschedule:
		return current + 1, true
	case ev != EventTick:
		return current + 1, false
	}
	return current, false
}

// Controller bridges events to a Countdown and owns tick scheduling.
// Handle must always be called from the same goroutine.
type Controller struct {
	countdown *timer.Countdown
	clock     clock.Clock
	interval  time.Duration
	post      func(Event)

	token   Token
	pending clock.Timer
}

// NewController creates a controller. post is called from timer goroutines
// to hand tick events back to the event loop.
func NewController(c *timer.Countdown, clk clock.Clock, interval time.Duration, post func(Event)) *Controller {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Controller{
		countdown: c,
		clock:     clk,
		interval:  interval,
		post:      post,
	}
}

// Countdown returns the controlled countdown.
func (c *Controller) Countdown() *timer.Countdown {
	return c.countdown
}

// Handle applies ev and arms or cancels the next tick. Ticks carrying a
// token other than the current one are stale and ignored.
func (c *Controller) Handle(ev Event) Outcome {
	if ev.Type == EventTick {
		if !Live(ev.Token, c.token) {
			return Outcome{Status: c.countdown.Status()}
		}
		c.pending = nil
	}

	out := Step(ev.Type, c.countdown)
	next, arm := NextToken(ev.Type, out, c.token)
	if next != c.token {
		c.cancel()
		c.token = next
	}
	if arm {
		c.arm()
	}
	return out
}

// Stop cancels the pending tick, if any, and retires its token.
func (c *Controller) Stop() {
	c.cancel()
	c.token++
}

func (c *Controller) cancel() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// Armed reports whether a tick is pending.
func (c *Controller) Armed() bool {
	return c.pending != nil
}

func (c *Controller) arm() {
	tok := c.token
	c.pending = c.clock.AfterFunc(c.interval, func() {
		c.post(Event{Type: EventTick, Token: tok})
	})
}
