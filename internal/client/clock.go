package client

import (
	"time"
)

// StepClock tracks fixed simulation steps against wall time and yields the
// render interpolation fraction between the last step and the next.
type StepClock struct {
	period time.Duration
	last   time.Time
}

// NewStepClock creates a clock for steps of the given period, starting at now.
func NewStepClock(period time.Duration, now time.Time) *StepClock {
	return &StepClock{period: period, last: now}
}

// Period returns the step period.
func (c *StepClock) Period() time.Duration {
	return c.period
}

// Step records a step at now.
func (c *StepClock) Step(now time.Time) {
	c.last = now
}

// Fraction returns the progress from the last step towards the next, in [0, 1].
func (c *StepClock) Fraction(now time.Time) float32 {
	if c.period <= 0 {
		return 1
	}
	f := float32(now.Sub(c.last)) / float32(c.period)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
