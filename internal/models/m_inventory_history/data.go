package m_inventory_history

import (
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Data represents one ledger entry.
type Data struct {
	Date      string
	ItemCode  string
	Direction string
	Delta     int64
	Note      string
	Author    string
	EnteredAt string
}

// Record renders the row in schema order.
func (d *Data) Record() table.Record {
	return table.Record{
		{Name: Date, Value: d.Date},
		{Name: ItemCode, Value: d.ItemCode},
		{Name: Direction, Value: d.Direction},
		{Name: Quantity, Value: d.Delta},
		{Name: Note, Value: d.Note},
		{Name: Author, Value: d.Author},
		{Name: EnteredAt, Value: d.EnteredAt},
	}
}

// FromRow reads a worksheet row.
func FromRow(r table.Row) Data {
	return Data{
		Date:      r[Date],
		ItemCode:  r[ItemCode],
		Direction: r[Direction],
		Delta:     coerce.Int(r[Quantity]),
		Note:      r[Note],
		Author:    r[Author],
		EnteredAt: r[EnteredAt],
	}
}
