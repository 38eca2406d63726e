// Package timer contains the countdown domain logic: the Countdown state
// machine, its formatting helpers and the configuration it is built from.
//
// Maintenance notes:
//   - All mutations are expected to come from a single goroutine (the
//     application command loop or the bubbletea update loop). The mutex only
//     makes Snapshot safe to call from render code on other goroutines.
//   - Time is read exclusively through the injected clock.Clock so tests can
//     drive the countdown with clock.Fake.
package timer

import (
	"Countdown/clock"
	"sync"
	"time"
)

// Status is the run state of a Countdown.
type Status int

const (
	StatusPaused Status = iota
	StatusRunning
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusRunning:
		return "running"
	case StatusExpired:
		return "expired"
	}
	return "unknown"
}

// Countdown tracks the time left before expiration.
//
// While paused or expired, remaining is authoritative. While running, the
// time left is remaining minus the time elapsed since startedAt, clamped to
// zero.
type Countdown struct {
	clock clock.Clock

	mu        sync.RWMutex
	initial   time.Duration
	startedAt time.Time
	remaining time.Duration
	status    Status
}

// Snapshot is a consistent view of a Countdown taken at a single instant.
type Snapshot struct {
	Status    Status
	Remaining time.Duration
	Initial   time.Duration
}

// Seconds returns the remaining time truncated to whole seconds.
func (s Snapshot) Seconds() int64 {
	return int64(s.Remaining / time.Second)
}

// Fraction returns the share of the initial duration still left, in [0, 1].
func (s Snapshot) Fraction() float64 {
	if s.Initial <= 0 {
		return 0
	}
	f := float64(s.Remaining) / float64(s.Initial)
	if f > 1 {
		return 1
	}
	return f
}

// String renders the remaining time as MM:SS.
func (s Snapshot) String() string {
	return FormatTime(s.Seconds())
}

// New creates a countdown of duration d in the given status. Negative
// durations are treated as zero and an Expired status starts with nothing
// left.
func New(clk clock.Clock, d time.Duration, status Status) *Countdown {
	if d < 0 {
		d = 0
	}
	c := &Countdown{
		clock:     clk,
		initial:   d,
		startedAt: clk.Now(),
		remaining: d,
		status:    status,
	}
	if status == StatusExpired {
		c.remaining = 0
	}
	return c
}

// elapsedLocked is the time since startedAt, never negative even if the
// clock stepped backwards.
func (c *Countdown) elapsedLocked(now time.Time) time.Duration {
	d := now.Sub(c.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

func (c *Countdown) remainingLocked(now time.Time) time.Duration {
	if c.status != StatusRunning {
		return c.remaining
	}
	r := c.remaining - c.elapsedLocked(now)
	if r < 0 {
		return 0
	}
	return r
}

func (c *Countdown) isExpiredLocked(now time.Time) bool {
	return !c.startedAt.Add(c.remaining).After(now)
}

// Remaining returns the time left.
func (c *Countdown) Remaining() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.remainingLocked(c.clock.Now())
}

// RemainingSeconds returns the time left truncated to whole seconds.
func (c *Countdown) RemainingSeconds() int64 {
	return int64(c.Remaining() / time.Second)
}

// IsExpired reports whether startedAt + remaining <= now. It is a pure time
// comparison and does not look at the status.
func (c *Countdown) IsExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isExpiredLocked(c.clock.Now())
}

// CheckExpired moves a running countdown whose time has run out to Expired.
// It reports whether the transition happened; repeated calls return false.
func (c *Countdown) CheckExpired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != StatusRunning || !c.isExpiredLocked(c.clock.Now()) {
		return false
	}
	c.status = StatusExpired
	c.remaining = 0
	return true
}

// Resume starts a paused countdown. It does nothing when running or expired.
func (c *Countdown) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != StatusPaused {
		return
	}
	c.startedAt = c.clock.Now()
	c.status = StatusRunning
}

// Pause freezes a running countdown. It does nothing otherwise.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != StatusRunning {
		return
	}
	c.remaining = c.remainingLocked(c.clock.Now())
	c.status = StatusPaused
}

// Reset restores the initial duration and pauses the countdown. It is the
// only way out of Expired.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.initial
	c.startedAt = c.clock.Now()
	c.status = StatusPaused
}

// Status returns the current status.
func (c *Countdown) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Snapshot returns a consistent view of the countdown for rendering.
func (c *Countdown) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Status:    c.status,
		Remaining: c.remainingLocked(c.clock.Now()),
		Initial:   c.initial,
	}
}

// String renders the remaining time as MM:SS.
func (c *Countdown) String() string {
	return FormatTime(c.RemainingSeconds())
}
