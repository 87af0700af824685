// Package clock abstracts time so the game timer and auto-play pacing can
// be driven deterministically in tests.
package clock

import "time"

// Clock provides the current time and a pacing primitive.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After delivers the time on the returned channel once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// After waits on a real timer.
func (c *RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// FakeClock implements Clock with a manually controlled time.
type FakeClock struct {
	current time.Time
	waited  time.Duration
}

// NewFakeClock creates a new FakeClock with the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fixed time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// After advances the fake time by d and fires immediately.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.Advance(d)
	c.waited += d
	ch := make(chan time.Time, 1)
	ch <- c.current
	return ch
}

// Waited returns the total duration requested through After.
func (c *FakeClock) Waited() time.Duration {
	return c.waited
}

// Set updates the fixed time.
func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the fixed time forward by the given duration.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
