package testutil

import (
	"time"

	"github.com/light-bringer/smt-console/internal/pkg/clock"
)

// KST is the shop floor zone used by fixtures.
var KST = time.FixedZone("KST", 9*60*60)

// NewFixedClock creates a mock clock fixed at the given time.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a mock clock at 2024-05-01 08:30 KST that can be
// controlled in tests.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2024, 5, 1, 8, 30, 0, 0, KST))
}
