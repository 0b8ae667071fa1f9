package m_inventory

import (
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Data represents the stock level of one item.
type Data struct {
	ItemCode     string
	ItemName     string
	CurrentStock int64
}

// Record renders the row in schema order.
func (d *Data) Record() table.Record {
	return table.Record{
		{Name: ItemCode, Value: d.ItemCode},
		{Name: ItemName, Value: d.ItemName},
		{Name: CurrentStock, Value: d.CurrentStock},
	}
}

// FromRow reads a worksheet row. Unparseable stock reads as 0; the history
// ledger stays authoritative.
func FromRow(r table.Row) Data {
	return Data{
		ItemCode:     r[ItemCode],
		ItemName:     r[ItemName],
		CurrentStock: coerce.Int(r[CurrentStock]),
	}
}
