// Package clock abstracts the wall clock and one-shot timers so the countdown
// and its tick scheduling can be driven by a fake in tests.
package clock

import "time"

// Timer is a pending one-shot callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock provides the time operations the countdown needs.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// System is the Clock backed by the time package.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
