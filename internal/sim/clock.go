package sim

import "time"

// Clock turns host-supplied timestamps into per-tick deltas.
// Timestamps are offsets from any host-chosen epoch; only differences matter.
type Clock struct {
	nominalRate float64
	maxDelta    time.Duration

	start time.Duration
	now   time.Duration
	dt    time.Duration
	ticks uint64
}

// NewClock creates a clock that scales deltas to nominalRate updates per second.
// A zero maxDelta disables frame-gap clamping.
func NewClock(nominalRate float64, maxDelta time.Duration) Clock {
	return Clock{nominalRate: nominalRate, maxDelta: maxDelta}
}

// Reset restarts the clock at now.
func (c *Clock) Reset(now time.Duration) {
	c.start = now
	c.now = now
	c.dt = 0
	c.ticks = 0
}

// Advance moves the clock to now and returns the elapsed delta.
// Time never runs backwards: an earlier timestamp yields a zero delta.
func (c *Clock) Advance(now time.Duration) time.Duration {
	c.ticks++

	dt := now - c.now
	if dt < 0 {
		c.dt = 0
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}

	c.now = now
	c.dt = dt
	return dt
}

// Now returns the timestamp of the current tick.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Elapsed returns time since Reset.
func (c *Clock) Elapsed() time.Duration {
	return c.now - c.start
}

// Step returns the current delta in nominal ticks (1.0 at exactly the nominal rate).
func (c *Clock) Step() float64 {
	return c.dt.Seconds() * c.nominalRate
}

// Ticks returns the number of ticks since Reset.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}
