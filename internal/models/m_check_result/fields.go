package m_check_result

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the daily check result worksheet.
const SheetName = "daily_check_result"

const (
	Date      = "date"
	Line      = "line"
	EquipID   = "equip_id"
	ItemName  = "item_name"
	Value     = "value"
	OX        = "ox"
	Checker   = "checker"
	Timestamp = "timestamp"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: Date, Kind: table.Date},
		{Name: Line},
		{Name: EquipID},
		{Name: ItemName},
		{Name: Value},
		{Name: OX},
		{Name: Checker},
		{Name: Timestamp, Kind: table.Timestamp},
	}
}

// Data is one observation of a check item.
type Data struct {
	Date      string
	Line      string
	EquipID   string
	ItemName  string
	Value     string
	OX        string
	Checker   string
	Timestamp string
}

// Record renders the row in schema order.
func (d *Data) Record() table.Record {
	return table.Record{
		{Name: Date, Value: d.Date},
		{Name: Line, Value: d.Line},
		{Name: EquipID, Value: d.EquipID},
		{Name: ItemName, Value: d.ItemName},
		{Name: Value, Value: d.Value},
		{Name: OX, Value: d.OX},
		{Name: Checker, Value: d.Checker},
		{Name: Timestamp, Value: d.Timestamp},
	}
}

// FromRow reads a worksheet row.
func FromRow(r table.Row) Data {
	return Data{
		Date:      r[Date],
		Line:      r[Line],
		EquipID:   r[EquipID],
		ItemName:  r[ItemName],
		Value:     r[Value],
		OX:        r[OX],
		Checker:   r[Checker],
		Timestamp: r[Timestamp],
	}
}
