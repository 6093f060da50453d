// Package clock abstracts wall time so booking windows, idempotency
// expiry and review timestamps can be pinned in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock. Production wiring injects this one.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant and only moves when told to, which
// keeps slot-in-the-future checks and key expiry deterministic.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

func (c *MockClock) Set(t time.Time) {
	c.current = t
}

func (c *MockClock) Add(d time.Duration) {
	c.current = c.current.Add(d)
}
