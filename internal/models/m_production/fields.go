package m_production

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the worksheet holding production records.
const SheetName = "production_data"

// Field name constants for the production_data worksheet.
const (
	Date         = "date"
	Kind         = "kind"
	ItemCode     = "item_code"
	ItemName     = "item_name"
	Quantity     = "quantity"
	EnteredAt    = "entered_at"
	Author       = "author"
	LastEditor   = "last_editor"
	LastEditedAt = "last_edited_at"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: Date, Kind: table.Date},
		{Name: Kind, Kind: table.Text},
		{Name: ItemCode, Kind: table.Text},
		{Name: ItemName, Kind: table.Text},
		{Name: Quantity, Kind: table.Integer},
		{Name: EnteredAt, Kind: table.Timestamp},
		{Name: Author, Kind: table.Text},
		{Name: LastEditor, Kind: table.Text},
		{Name: LastEditedAt, Kind: table.Timestamp},
	}
}
