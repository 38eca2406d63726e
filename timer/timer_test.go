package timer

import (
	"Countdown/clock"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestPausedRemainingIgnoresTime(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 60*time.Second, StatusPaused)

	for _, step := range []time.Duration{0, time.Second, 59 * time.Second, time.Hour} {
		clk.Advance(step)
		assert.Equal(t, int64(60), c.RemainingSeconds())
	}
	assert.Equal(t, StatusPaused, c.Status())
}

func TestRunningRemainingIsNonIncreasingAndFloored(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 3*time.Second, StatusRunning)

	prev := c.RemainingSeconds()
	assert.Equal(t, int64(3), prev)
	for i := 0; i < 30; i++ {
		clk.Advance(250 * time.Millisecond)
		cur := c.RemainingSeconds()
		assert.LessOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, int64(0))
		prev = cur
	}
	assert.Equal(t, int64(0), prev)
}

func TestRunningRemainingTruncates(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 60*time.Second, StatusRunning)

	clk.Advance(200 * time.Millisecond)
	assert.Equal(t, int64(59), c.RemainingSeconds())
	assert.Equal(t, "00:59", c.String())
}

func TestPauseThenResumeKeepsRemaining(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 60*time.Second, StatusRunning)
	clk.Advance(12 * time.Second)

	before := c.RemainingSeconds()
	c.Pause()
	c.Resume()
	assert.Equal(t, before, c.RemainingSeconds())
	assert.Equal(t, StatusRunning, c.Status())
}

func TestPauseAfterTenSeconds(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 60*time.Second, StatusRunning)

	clk.Advance(10 * time.Second)
	c.Pause()

	assert.Equal(t, StatusPaused, c.Status())
	assert.Equal(t, 50*time.Second, c.Remaining())
	assert.Equal(t, int64(50), c.RemainingSeconds())

	clk.Advance(30 * time.Second)
	assert.Equal(t, int64(50), c.RemainingSeconds())
}

func TestPauseClampsOverrun(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 5*time.Second, StatusRunning)

	clk.Advance(8 * time.Second)
	c.Pause()
	assert.Equal(t, time.Duration(0), c.Remaining())
	assert.Equal(t, "00:00", c.String())
}

func TestPauseSurvivesClockSteppingBack(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 60*time.Second, StatusRunning)

	clk.Rewind(5 * time.Second)
	assert.Equal(t, int64(60), c.RemainingSeconds())
	c.Pause()
	assert.Equal(t, 60*time.Second, c.Remaining())
}

func TestIsExpiredIsPureTimeComparison(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 10*time.Second, StatusRunning)

	clk.Advance(9999 * time.Millisecond)
	assert.False(t, c.IsExpired())
	clk.Advance(time.Millisecond)
	assert.True(t, c.IsExpired())
	assert.Equal(t, StatusRunning, c.Status(), "IsExpired must not change status")

	p := New(clk, 10*time.Second, StatusPaused)
	clk.Advance(10 * time.Second)
	assert.True(t, p.IsExpired())
}

func TestCheckExpiredIsIdempotent(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 10*time.Second, StatusRunning)

	clk.Advance(5 * time.Second)
	assert.False(t, c.CheckExpired())
	assert.Equal(t, StatusRunning, c.Status())

	clk.Advance(5 * time.Second)
	assert.True(t, c.CheckExpired())
	assert.Equal(t, StatusExpired, c.Status())
	assert.False(t, c.CheckExpired())
	assert.Equal(t, StatusExpired, c.Status())
	assert.Equal(t, int64(0), c.RemainingSeconds())
}

func TestCheckExpiredLeavesPausedAlone(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 10*time.Second, StatusPaused)
	clk.Advance(time.Minute)

	assert.False(t, c.CheckExpired())
	assert.Equal(t, StatusPaused, c.Status())
	assert.Equal(t, int64(10), c.RemainingSeconds())
}

func TestExpiryScenario(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 60*time.Second, StatusPaused)

	c.Resume()
	clk.Advance(60200 * time.Millisecond)

	require.True(t, c.CheckExpired())
	assert.Equal(t, StatusExpired, c.Status())
	assert.Equal(t, int64(0), c.RemainingSeconds())
	assert.Equal(t, "00:00", c.String())
}

func TestResumeFromExpiredIsNoop(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, time.Second, StatusRunning)
	clk.Advance(time.Second)
	require.True(t, c.CheckExpired())

	c.Resume()
	assert.Equal(t, StatusExpired, c.Status())
	c.Pause()
	assert.Equal(t, StatusExpired, c.Status())
}

func TestResumeWhileRunningKeepsStart(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 60*time.Second, StatusRunning)
	clk.Advance(20 * time.Second)

	c.Resume()
	assert.Equal(t, int64(40), c.RemainingSeconds())
}

func TestResetRearmsExpired(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 30*time.Second, StatusRunning)
	clk.Advance(31 * time.Second)
	require.True(t, c.CheckExpired())

	c.Reset()
	assert.Equal(t, StatusPaused, c.Status())
	assert.Equal(t, int64(30), c.RemainingSeconds())

	c.Resume()
	clk.Advance(10 * time.Second)
	assert.Equal(t, int64(20), c.RemainingSeconds())
}

func TestNewNormalizesArguments(t *testing.T) {
	clk := clock.NewFake(epoch)

	neg := New(clk, -time.Second, StatusPaused)
	assert.Equal(t, time.Duration(0), neg.Remaining())

	exp := New(clk, time.Minute, StatusExpired)
	assert.Equal(t, time.Duration(0), exp.Remaining())
	assert.Equal(t, StatusExpired, exp.Status())
}

func TestSnapshot(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk, 40*time.Second, StatusRunning)
	clk.Advance(10 * time.Second)

	s := c.Snapshot()
	assert.Equal(t, StatusRunning, s.Status)
	assert.Equal(t, 30*time.Second, s.Remaining)
	assert.Equal(t, 40*time.Second, s.Initial)
	assert.Equal(t, int64(30), s.Seconds())
	assert.InDelta(t, 0.75, s.Fraction(), 1e-9)
	assert.Equal(t, "00:30", s.String())

	assert.Equal(t, 0.0, Snapshot{}.Fraction())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "paused", StatusPaused.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "expired", StatusExpired.String())
	assert.Equal(t, "unknown", Status(42).String())
}
