package core

import "time"

// Cadence fires at a fixed interval. Callers pass the current time so the
// trigger can be driven from a game loop, a ticker, or a test clock.
type Cadence struct {
	every time.Duration
	next  time.Time
}

// NewCadence constructs a Cadence that fires every interval. Non-positive
// intervals fall back to one second.
func NewCadence(every time.Duration) *Cadence {
	c := &Cadence{}
	c.SetInterval(every)
	return c
}

// SetInterval changes the interval and restarts the countdown.
func (c *Cadence) SetInterval(every time.Duration) {
	if every <= 0 {
		every = time.Second
	}
	c.every = every
	c.next = time.Time{}
}

// Interval reports the configured interval.
func (c *Cadence) Interval() time.Duration { return c.every }

// Due reports whether an interval has elapsed since the last time it fired.
// The first call only arms the cadence.
func (c *Cadence) Due(now time.Time) bool {
	if c.next.IsZero() {
		c.next = now.Add(c.every)
		return false
	}
	if now.Before(c.next) {
		return false
	}
	c.next = c.next.Add(c.every)
	if !now.Before(c.next) {
		// Skip missed intervals instead of firing repeatedly to catch up.
		c.next = now.Add(c.every)
	}
	return true
}
