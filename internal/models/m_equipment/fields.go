package m_equipment

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the equipment catalog worksheet.
const SheetName = "equipment_list"

const (
	ID       = "id"
	Name     = "name"
	Function = "function"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: ID},
		{Name: Name},
		{Name: Function},
	}
}

// Data is one piece of equipment.
type Data struct {
	ID       string
	Name     string
	Function string
}

// FromRow reads a worksheet row.
func FromRow(r table.Row) Data {
	return Data{ID: r[ID], Name: r[Name], Function: r[Function]}
}
