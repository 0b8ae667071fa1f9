package domain

import (
	"strings"

	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

// CheckType is how a check item is judged.
type CheckType string

const (
	CheckNumeric  CheckType = "numeric"
	CheckPassFail CheckType = "pass-fail"
)

// ParseCheckType maps master sheet text to a CheckType. Anything that is not
// recognizably numeric is treated as pass-fail.
func ParseCheckType(s string) CheckType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric", "number", "수치", "숫자":
		return CheckNumeric
	}
	return CheckPassFail
}

// Verdict is the OK/NG outcome of a check.
type Verdict string

const (
	VerdictOK Verdict = "OK"
	VerdictNG Verdict = "NG"
)

// ParseVerdict normalizes stored OK/NG text.
func ParseVerdict(s string) (Verdict, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OK", "O":
		return VerdictOK, true
	case "NG", "X":
		return VerdictNG, true
	}
	return "", false
}

// CheckItem is one entry of a line's master checklist.
type CheckItem struct {
	Line      string
	EquipID   string
	EquipName string
	ItemName  string
	Content   string
	Standard  string
	Type      CheckType
	Min       *float64
	Max       *float64
	Unit      string
}

// Validate checks that numeric bounds are ordered.
func (c CheckItem) Validate() error {
	if c.Type == CheckNumeric && c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		return ErrInvalidBounds
	}
	return nil
}

// Key identifies the item within a line.
func (c CheckItem) Key() string {
	return c.EquipID + "\x1f" + c.ItemName
}

var passValues = map[string]bool{
	"OK":   true,
	"O":    true,
	"PASS": true,
	"양호":   true,
	"정상":   true,
}

// Judge derives OK/NG for a recorded value. Numeric items pass when the value
// parses and lies inside the bounds that are set; pass-fail items pass on an
// affirmative answer.
func Judge(item CheckItem, value string) Verdict {
	if item.Type == CheckNumeric {
		v := coerce.SafeFloat(value, nil)
		if v == nil {
			return VerdictNG
		}
		if item.Min != nil && *v < *item.Min {
			return VerdictNG
		}
		if item.Max != nil && *v > *item.Max {
			return VerdictNG
		}
		return VerdictOK
	}
	if passValues[strings.ToUpper(strings.TrimSpace(value))] {
		return VerdictOK
	}
	return VerdictNG
}

// CheckResult is one recorded observation.
type CheckResult struct {
	Date      string
	Line      string
	EquipID   string
	ItemName  string
	Value     string
	OX        Verdict
	Checker   string
	Timestamp string
}

// Key identifies the checked item within a line.
func (r CheckResult) Key() string {
	return r.EquipID + "\x1f" + r.ItemName
}

// LatestResults keeps the newest result of each item, keyed by CheckResult.Key.
func LatestResults(results []CheckResult) map[string]CheckResult {
	latest := make(map[string]CheckResult, len(results))
	for _, r := range results {
		if prev, ok := latest[r.Key()]; ok && !newer(r.Timestamp, prev.Timestamp) {
			continue
		}
		latest[r.Key()] = r
	}
	return latest
}
