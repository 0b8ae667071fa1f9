package m_inventory

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the current-stock worksheet.
const SheetName = "inventory_data"

// Field name constants for the inventory_data worksheet.
const (
	ItemCode     = "item_code"
	ItemName     = "item_name"
	CurrentStock = "current_stock"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: ItemCode, Kind: table.Text},
		{Name: ItemName, Kind: table.Text},
		{Name: CurrentStock, Kind: table.Integer},
	}
}
