package core

import "time"

// DefaultFrameStep is the fixed amount the clock advances per frame.
const DefaultFrameStep = 33 * time.Millisecond

// Clock is the synthetic animation clock. It counts whole milliseconds
// advanced by a fixed step and is never read from wall time, so a given
// frame number always yields the same scene.
type Clock struct {
	millis int64
	step   time.Duration
}

// NewClock creates a clock at start advancing by step per frame.
// A non-positive step falls back to DefaultFrameStep.
func NewClock(start, step time.Duration) *Clock {
	if step <= 0 {
		step = DefaultFrameStep
	}
	return &Clock{
		millis: start.Milliseconds(),
		step:   step,
	}
}

// Advance moves the clock forward by one step.
func (c *Clock) Advance() {
	c.millis += c.step.Milliseconds()
}

// Seconds returns elapsed animation time in seconds.
func (c *Clock) Seconds() float32 {
	return float32(c.millis) / 1000
}

// Millis returns elapsed animation time in milliseconds.
func (c *Clock) Millis() int64 {
	return c.millis
}

// Step returns the per-frame increment.
func (c *Clock) Step() time.Duration {
	return c.step
}
