// Package table holds the in-memory tabular value exchanged between the
// worksheet store and the domain layer.
//
// A Table is a list of string rows keyed by column name, with an explicit
// column order. Cells are always strings; typed access goes through the
// coerce helpers so that malformed cells fall back to documented defaults.
package table

import (
	"sort"
	"strings"

	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

// Kind is the coercion rule declared for a column.
type Kind int

const (
	// Text columns are kept verbatim.
	Text Kind = iota
	// Integer columns coerce with coerce.Int (unparseable -> 0).
	Integer
	// Number columns coerce with coerce.SafeFloat (unparseable -> caller default).
	Number
	// Date columns hold YYYY-MM-DD.
	Date
	// Timestamp columns hold coerce.TimestampLayout.
	Timestamp
)

// Column declares one worksheet column.
type Column struct {
	Name string
	Kind Kind
}

// Schema is the ordered column declaration of a worksheet.
type Schema []Column

// Names returns the column names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Kind returns the declared kind of a column, Text for undeclared columns.
func (s Schema) Kind(name string) Kind {
	for _, c := range s {
		if c.Name == name {
			return c.Kind
		}
	}
	return Text
}

// Key is a stable identity of the schema, used for cache keys.
func (s Schema) Key() string {
	return strings.Join(s.Names(), "\x1f")
}

// Row maps column name to cell text.
type Row map[string]string

// Table is an ordered set of columns plus rows.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols, Rows: []Row{}}
}

// Empty creates a zero-row table carrying the schema's columns.
func Empty(schema Schema) *Table {
	return New(schema.Names()...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumns appends every missing column and materializes it as "" in
// each row. Existing columns keep their position.
func (t *Table) EnsureColumns(names ...string) {
	for _, name := range names {
		if t.HasColumn(name) {
			continue
		}
		t.Columns = append(t.Columns, name)
		for _, r := range t.Rows {
			r[name] = ""
		}
	}
}

// AppendRow adds a row. Keys the table does not know yet become new columns;
// declared columns missing from r are stored as "".
func (t *Table) AppendRow(r Row) {
	row := make(Row, len(t.Columns))
	for _, c := range t.Columns {
		row[c] = ""
	}
	var unknown []string
	for k := range r {
		if !t.HasColumn(k) {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	t.EnsureColumns(unknown...)
	for _, k := range unknown {
		row[k] = ""
	}
	for k, v := range r {
		row[k] = v
	}
	t.Rows = append(t.Rows, row)
}

// Get returns the cell at row i, or "" when the row or column is absent.
func (t *Table) Get(i int, col string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][col]
}

// Set writes the cell at row i, adding the column if needed.
func (t *Table) Set(i int, col, value string) {
	if i < 0 || i >= len(t.Rows) {
		return
	}
	t.EnsureColumns(col)
	t.Rows[i][col] = value
}

// Int reads the cell at row i with integer coercion.
func (t *Table) Int(i int, col string) int64 {
	return coerce.Int(t.Get(i, col))
}

// Float reads the cell at row i with float coercion and the given default.
func (t *Table) Float(i int, col string, def *float64) *float64 {
	return coerce.SafeFloat(t.Get(i, col), def)
}

// Column returns every cell of a column in row order.
func (t *Table) Column(col string) []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[col]
	}
	return out
}

// Find returns the index of the first row whose col equals value, or -1.
func (t *Table) Find(col, value string) int {
	for i, r := range t.Rows {
		if r[col] == value {
			return i
		}
	}
	return -1
}

// Values renders the rows as header-ordered cell slices.
func (t *Table) Values() [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			cells[j] = r[c]
		}
		out[i] = cells
	}
	return out
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	c := New(t.Columns...)
	c.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		row := make(Row, len(r))
		for k, v := range r {
			row[k] = v
		}
		c.Rows[i] = row
	}
	return c
}
