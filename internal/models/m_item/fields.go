package m_item

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the item catalog worksheet.
const SheetName = "item_codes"

const (
	ItemCode = "item_code"
	ItemName = "item_name"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: ItemCode},
		{Name: ItemName},
	}
}

// Data is one catalog entry.
type Data struct {
	ItemCode string
	ItemName string
}

// FromRow reads a worksheet row.
func FromRow(r table.Row) Data {
	return Data{ItemCode: r[ItemCode], ItemName: r[ItemName]}
}
