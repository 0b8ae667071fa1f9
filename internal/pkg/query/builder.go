// Package query filters and orders the rows of a loaded worksheet.
package query

import (
	"sort"

	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Builder selects rows of a table. It provides a fluent API with WHERE
// conditions, ORDER BY, LIMIT and OFFSET. Every method returns a new
// builder; the source table is never modified.
type Builder struct {
	table        *table.Table
	whereClauses []Condition
	orderByCol   string
	orderByDir   Direction
	limitVal     int
	offsetVal    int
}

// From creates a new Builder over t.
func From(t *table.Table) *Builder {
	return &Builder{
		table:        t,
		whereClauses: []Condition{},
	}
}

// Where adds conditions.
// Multiple conditions are combined with AND logic.
func (b *Builder) Where(conditions ...Condition) *Builder {
	newBuilder := b.clone()
	newBuilder.whereClauses = append(newBuilder.whereClauses, conditions...)
	return newBuilder
}

// OrderBy specifies the column and direction for sorting. Cells compare as
// text and ties keep worksheet order.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	newBuilder := b.clone()
	newBuilder.orderByCol = column
	newBuilder.orderByDir = direction
	return newBuilder
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int) *Builder {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int) *Builder {
	newBuilder := b.clone()
	newBuilder.offsetVal = offset
	return newBuilder
}

// Count returns the number of matching rows, ignoring pagination.
func (b *Builder) Count() int {
	return len(b.matching())
}

// Rows returns the selected rows. The rows are shared with the source table.
func (b *Builder) Rows() []table.Row {
	rows := b.matching()

	// ORDER BY
	if b.orderByCol != "" {
		col, desc := b.orderByCol, b.orderByDir == Desc
		sort.SliceStable(rows, func(i, j int) bool {
			if desc {
				return rows[i][col] > rows[j][col]
			}
			return rows[i][col] < rows[j][col]
		})
	}

	// OFFSET
	if b.offsetVal > 0 {
		if b.offsetVal >= len(rows) {
			return []table.Row{}
		}
		rows = rows[b.offsetVal:]
	}

	// LIMIT
	if b.limitVal > 0 && b.limitVal < len(rows) {
		rows = rows[:b.limitVal]
	}
	return rows
}

// Table returns the selected rows as a new table with the source columns.
func (b *Builder) Table() *table.Table {
	var cols []string
	if b.table != nil {
		cols = b.table.Columns
	}
	out := table.New(cols...)
	for _, r := range b.Rows() {
		out.AppendRow(r)
	}
	return out
}

func (b *Builder) matching() []table.Row {
	if b.table == nil {
		return []table.Row{}
	}
	rows := make([]table.Row, 0, len(b.table.Rows))
	for _, r := range b.table.Rows {
		if b.match(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

func (b *Builder) match(r table.Row) bool {
	for _, c := range b.whereClauses {
		if !c.Match(r) {
			return false
		}
	}
	return true
}

// clone creates a shallow copy of the builder for immutability.
func (b *Builder) clone() *Builder {
	newBuilder := &Builder{
		table:        b.table,
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderByCol:   b.orderByCol,
		orderByDir:   b.orderByDir,
		limitVal:     b.limitVal,
		offsetVal:    b.offsetVal,
	}
	copy(newBuilder.whereClauses, b.whereClauses)
	return newBuilder
}
