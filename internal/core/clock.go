package core

import "time"

// FrameClock turns wall-clock tick times into the scalar delta the
// simulation expects: 1.0 when a tick arrives exactly one target frame after
// the previous one, larger when frames were dropped.
type FrameClock struct {
	frame    time.Duration
	maxDelta float64
	last     time.Time
}

// NewFrameClock creates a clock for the given target FPS.
// maxDelta caps the delta after long stalls; values <= 0 disable the cap.
func NewFrameClock(targetFPS int, maxDelta float64) *FrameClock {
	if targetFPS <= 0 {
		targetFPS = 60
	}
	return &FrameClock{
		frame:    time.Second / time.Duration(targetFPS),
		maxDelta: maxDelta,
	}
}

// Interval returns the nominal duration of one frame.
func (c *FrameClock) Interval() time.Duration {
	return c.frame
}

// Advance records a tick at now and returns the elapsed delta.
// The first tick after creation or Reset reports exactly 1.0.
func (c *FrameClock) Advance(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 1.0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed <= 0 {
		return 0
	}
	delta := float64(elapsed) / float64(c.frame)
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta
}

// Reset forgets the previous tick so the next Advance reports 1.0.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
