package game

import "time"

// Clock reports the time elapsed since it was last polled.
type Clock interface {
	Tick() time.Duration
}

// InputSource yields the events that arrived since the last poll.
type InputSource interface {
	Poll() []Event
}

// WallClock measures real time. The first tick returns zero.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

// NewWallClock returns a clock whose first Tick is zero.
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// Tick returns the wall time since the previous Tick.
func (c *WallClock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}

// FixedClock advances by Step on every tick.
type FixedClock struct {
	Step time.Duration
}

// Tick returns Step.
func (c FixedClock) Tick() time.Duration {
	return c.Step
}
