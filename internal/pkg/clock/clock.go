package clock

import (
	"fmt"
	"sync"
	"time"
)

// Clock is an interface for time operations to enable testability.
// Implementations report time in the factory's local location so that "today"
// matches the calendar date on the shop floor.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time and converts it to a fixed location.
type RealClock struct {
	loc *time.Location
}

// NewRealClock creates a RealClock for loc. A nil loc means time.Local.
func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

// Now returns the current system time in the clock's location.
func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the location the clock reports in.
func (c *RealClock) Location() *time.Location {
	return c.loc
}

// LoadLocation resolves an IANA zone name. An empty name selects time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}

// MockClock is a test implementation that allows setting the current time.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewMockClock creates a new MockClock starting at the given time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// Now returns the mock current time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set sets the mock current time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance advances the mock clock by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
