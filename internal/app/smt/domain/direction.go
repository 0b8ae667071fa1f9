package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Direction is the movement kind of a ledger entry. The stored values are the
// Korean labels the line staff and the dashboards read.
type Direction string

const (
	// Inbound stock (입고), positive delta.
	Inbound Direction = "입고"
	// Outbound stock (출고), zero or negative delta.
	Outbound Direction = "출고"
)

// DirectionOf derives the direction from a signed delta.
func DirectionOf(delta int64) Direction {
	if delta > 0 {
		return Inbound
	}
	return Outbound
}

// ParseDirection accepts the stored labels as well as English aliases.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(norm.NFC.String(strings.TrimSpace(s))) {
	case string(Inbound), "inbound", "in":
		return Inbound, true
	case string(Outbound), "outbound", "out":
		return Outbound, true
	}
	return "", false
}

// String returns the stored label.
func (d Direction) String() string {
	return string(d)
}

// English returns "inbound" or "outbound".
func (d Direction) English() string {
	switch d {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	}
	return ""
}
