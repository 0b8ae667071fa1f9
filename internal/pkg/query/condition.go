package query

import "github.com/light-bringer/smt-console/internal/pkg/table"

// Condition represents a row filter.
type Condition interface {
	// Match reports whether the row passes the filter.
	Match(row table.Row) bool
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value string
}

// Eq creates a condition for exact cell equality.
// Example: Eq("line", "L1") keeps rows whose line cell is "L1".
func Eq(field, value string) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

// Match compares the cell text.
func (c *eqCondition) Match(row table.Row) bool {
	return row[c.field] == c.value
}

// betweenCondition implements an inclusive text range.
type betweenCondition struct {
	field string
	from  string
	to    string
}

// Between creates an inclusive range condition on the cell text. An empty
// bound is open. Dates in YYYY-MM-DD order correctly as text.
// Example: Between("date", "2024-05-01", "") keeps May 1st and later.
func Between(field, from, to string) Condition {
	return &betweenCondition{field: field, from: from, to: to}
}

// Match compares the cell text against both bounds.
func (c *betweenCondition) Match(row table.Row) bool {
	v := row[c.field]
	if c.from != "" && v < c.from {
		return false
	}
	if c.to != "" && v > c.to {
		return false
	}
	return true
}

// NotEmpty creates a condition for non-empty cells.
// Example: NotEmpty("item_code") skips rows without an item code.
func NotEmpty(field string) Condition {
	return &notEmptyCondition{field: field}
}

// notEmptyCondition implements the non-empty check.
type notEmptyCondition struct {
	field string
}

// Match reports whether the cell has text.
func (c *notEmptyCondition) Match(row table.Row) bool {
	return row[c.field] != ""
}
