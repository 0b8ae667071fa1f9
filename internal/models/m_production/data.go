package m_production

import (
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Data represents one production event row.
type Data struct {
	Date         string
	Kind         string
	ItemCode     string
	ItemName     string
	Quantity     int64
	EnteredAt    string
	Author       string
	LastEditor   string
	LastEditedAt string
}

// Record renders the row in schema order.
func (d *Data) Record() table.Record {
	return table.Record{
		{Name: Date, Value: d.Date},
		{Name: Kind, Value: d.Kind},
		{Name: ItemCode, Value: d.ItemCode},
		{Name: ItemName, Value: d.ItemName},
		{Name: Quantity, Value: d.Quantity},
		{Name: EnteredAt, Value: d.EnteredAt},
		{Name: Author, Value: d.Author},
		{Name: LastEditor, Value: d.LastEditor},
		{Name: LastEditedAt, Value: d.LastEditedAt},
	}
}

// FromRow reads a worksheet row. An unparseable quantity reads as 0.
func FromRow(r table.Row) Data {
	return Data{
		Date:         r[Date],
		Kind:         r[Kind],
		ItemCode:     r[ItemCode],
		ItemName:     r[ItemName],
		Quantity:     coerce.Int(r[Quantity]),
		EnteredAt:    r[EnteredAt],
		Author:       r[Author],
		LastEditor:   r[LastEditor],
		LastEditedAt: r[LastEditedAt],
	}
}
