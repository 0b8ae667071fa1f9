// Package coerce converts untyped spreadsheet cells to typed values and back.
//
// Every conversion has an explicit default-on-failure rule so that a malformed
// cell never aborts a read: callers pick the default, the helper never errors.
package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// TimestampLayout is used for every entered_at, last_edited_at and timestamp column.
	TimestampLayout = "2006-01-02 15:04:05.000000"
	// DateLayout is used for every date column.
	DateLayout = "2006-01-02"
)

// Timestamp formats t in TimestampLayout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Date formats t in DateLayout using t's own location.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD cell.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseTimestamp parses a cell written with TimestampLayout.
// Values without the fractional part are accepted as well.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimestampLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsBlank reports whether v is nil, a nil pointer, or a whitespace-only string.
func IsBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case *string:
		return x == nil || strings.TrimSpace(*x) == ""
	case *float64:
		return x == nil
	}
	return false
}

// String renders v as a cell. nil, nil pointers, NaN and infinities become "".
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case *float64:
		if x == nil {
			return ""
		}
		return formatFloat(*x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return Timestamp(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// SafeFloat returns the parsed value of v, or def when v is nil, blank or not
// numeric. def may be nil, meaning "unknown".
func SafeFloat(v any, def *float64) *float64 {
	f, ok := parseFloat(v)
	if !ok {
		return def
	}
	return &f
}

// Float is SafeFloat with a non-nil default.
func Float(v any, def float64) float64 {
	f, ok := parseFloat(v)
	if !ok {
		return def
	}
	return f
}

// Int coerces v to an integer. Anything that does not parse becomes 0.
// Decimal values are truncated toward zero.
func Int(v any) int64 {
	if s, ok := v.(string); ok {
		if n, err := strconv.ParseInt(cleanNumber(s), 10, 64); err == nil {
			return n
		}
	}
	f, ok := parseFloat(v)
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	if !ok || math.IsNaN(f) || f >= 1<<63 || f < math.MinInt64 {
		return 0
	}
	return int64(math.Trunc(f))
}

// Ptr returns a pointer to f.
func Ptr(f float64) *float64 {
	return &f
}

func parseFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case string:
		s := cleanNumber(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	case *string:
		if x == nil {
			return 0, false
		}
		return parseFloat(*x)
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case *float64:
		if x == nil {
			return 0, false
		}
		return finite(*x)
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case bool:
		return 0, false
	}
	return parseFloat(fmt.Sprint(v))
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// cleanNumber trims whitespace and drops thousands separators the sheet
// renders for formatted number cells.
func cleanNumber(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}
