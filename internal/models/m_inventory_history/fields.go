package m_inventory_history

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the append-only stock ledger worksheet.
const SheetName = "inventory_history"

// Field name constants for the inventory_history worksheet.
// Quantity holds the signed delta: positive inbound, negative outbound.
const (
	Date      = "date"
	ItemCode  = "item_code"
	Direction = "direction"
	Quantity  = "quantity"
	Note      = "note"
	Author    = "author"
	EnteredAt = "entered_at"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: Date, Kind: table.Date},
		{Name: ItemCode, Kind: table.Text},
		{Name: Direction, Kind: table.Text},
		{Name: Quantity, Kind: table.Integer},
		{Name: Note, Kind: table.Text},
		{Name: Author, Kind: table.Text},
		{Name: EnteredAt, Kind: table.Timestamp},
	}
}
