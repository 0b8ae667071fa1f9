package m_check_master

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the master checklist worksheet.
const SheetName = "daily_check_master"

// Field name constants for the daily_check_master worksheet.
const (
	Line         = "line"
	EquipID      = "equip_id"
	EquipName    = "equip_name"
	ItemName     = "item_name"
	CheckContent = "check_content"
	Standard     = "standard"
	CheckType    = "check_type"
	MinVal       = "min_val"
	MaxVal       = "max_val"
	Unit         = "unit"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: Line},
		{Name: EquipID},
		{Name: EquipName},
		{Name: ItemName},
		{Name: CheckContent},
		{Name: Standard},
		{Name: CheckType},
		{Name: MinVal, Kind: table.Number},
		{Name: MaxVal, Kind: table.Number},
		{Name: Unit},
	}
}
