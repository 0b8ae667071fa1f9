package m_check_master

import (
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Data is one master checklist row. Missing or malformed bounds are nil.
type Data struct {
	Line         string
	EquipID      string
	EquipName    string
	ItemName     string
	CheckContent string
	Standard     string
	CheckType    string
	MinVal       *float64
	MaxVal       *float64
	Unit         string
}

// Record renders the row in schema order.
func (d *Data) Record() table.Record {
	return table.Record{
		{Name: Line, Value: d.Line},
		{Name: EquipID, Value: d.EquipID},
		{Name: EquipName, Value: d.EquipName},
		{Name: ItemName, Value: d.ItemName},
		{Name: CheckContent, Value: d.CheckContent},
		{Name: Standard, Value: d.Standard},
		{Name: CheckType, Value: d.CheckType},
		{Name: MinVal, Value: d.MinVal},
		{Name: MaxVal, Value: d.MaxVal},
		{Name: Unit, Value: d.Unit},
	}
}

// FromRow reads a worksheet row.
func FromRow(r table.Row) Data {
	return Data{
		Line:         r[Line],
		EquipID:      r[EquipID],
		EquipName:    r[EquipName],
		ItemName:     r[ItemName],
		CheckContent: r[CheckContent],
		Standard:     r[Standard],
		CheckType:    r[CheckType],
		MinVal:       coerce.SafeFloat(r[MinVal], nil),
		MaxVal:       coerce.SafeFloat(r[MaxVal], nil),
		Unit:         r[Unit],
	}
}
