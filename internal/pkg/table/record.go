package table

import "github.com/light-bringer/smt-console/internal/pkg/coerce"

// Field is one named value of a record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered list of fields destined for a single worksheet row.
// The order only matters when the target worksheet has no header yet.
type Record []Field

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Ordered renders the record as cells in header order. Missing fields become
// "" and values are stringified with coerce.String.
func (r Record) Ordered(header []string) []string {
	cells := make([]string, len(header))
	for i, h := range header {
		if v, ok := r.Get(h); ok {
			cells[i] = coerce.String(v)
		}
	}
	return cells
}

// Row converts the record to a Row.
func (r Record) Row() Row {
	row := make(Row, len(r))
	for _, f := range r {
		row[f.Name] = coerce.String(f.Value)
	}
	return row
}

// RecordFromRow builds a record following the given column order.
func RecordFromRow(row Row, columns []string) Record {
	rec := make(Record, 0, len(columns))
	for _, c := range columns {
		rec = append(rec, Field{Name: c, Value: row[c]})
	}
	return rec
}
