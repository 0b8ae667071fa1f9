package m_maintenance

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the maintenance log worksheet.
const SheetName = "maintenance_data"

// Field name constants for the maintenance_data worksheet.
const (
	Date          = "date"
	EquipID       = "equip_id"
	EquipName     = "equip_name"
	WorkKind      = "work_kind"
	Description   = "description"
	ReplacedParts = "replaced_parts"
	Cost          = "cost"
	Worker        = "worker"
	Downtime      = "downtime"
	EnteredAt     = "entered_at"
	Author        = "author"
	LastEditor    = "last_editor"
	LastEditedAt  = "last_edited_at"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: Date, Kind: table.Date},
		{Name: EquipID, Kind: table.Text},
		{Name: EquipName, Kind: table.Text},
		{Name: WorkKind, Kind: table.Text},
		{Name: Description, Kind: table.Text},
		{Name: ReplacedParts, Kind: table.Text},
		{Name: Cost, Kind: table.Number},
		{Name: Worker, Kind: table.Text},
		{Name: Downtime, Kind: table.Number},
		{Name: EnteredAt, Kind: table.Timestamp},
		{Name: Author, Kind: table.Text},
		{Name: LastEditor, Kind: table.Text},
		{Name: LastEditedAt, Kind: table.Timestamp},
	}
}
