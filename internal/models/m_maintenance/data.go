package m_maintenance

import (
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Data represents one maintenance event. Cost and Downtime are kept as the
// text that was entered; use CostValue and DowntimeMinutes to read them.
type Data struct {
	Date          string
	EquipID       string
	EquipName     string
	WorkKind      string
	Description   string
	ReplacedParts string
	Cost          string
	Worker        string
	Downtime      string
	EnteredAt     string
	Author        string
	LastEditor    string
	LastEditedAt  string
}

// Record renders the row in schema order.
func (d *Data) Record() table.Record {
	return table.Record{
		{Name: Date, Value: d.Date},
		{Name: EquipID, Value: d.EquipID},
		{Name: EquipName, Value: d.EquipName},
		{Name: WorkKind, Value: d.WorkKind},
		{Name: Description, Value: d.Description},
		{Name: ReplacedParts, Value: d.ReplacedParts},
		{Name: Cost, Value: d.Cost},
		{Name: Worker, Value: d.Worker},
		{Name: Downtime, Value: d.Downtime},
		{Name: EnteredAt, Value: d.EnteredAt},
		{Name: Author, Value: d.Author},
		{Name: LastEditor, Value: d.LastEditor},
		{Name: LastEditedAt, Value: d.LastEditedAt},
	}
}

// CostValue parses the cost cell, nil when missing or not numeric.
func (d *Data) CostValue() *float64 {
	return coerce.SafeFloat(d.Cost, nil)
}

// DowntimeMinutes parses the downtime cell, nil when missing or not numeric.
func (d *Data) DowntimeMinutes() *float64 {
	return coerce.SafeFloat(d.Downtime, nil)
}

// FromRow reads a worksheet row.
func FromRow(r table.Row) Data {
	return Data{
		Date:          r[Date],
		EquipID:       r[EquipID],
		EquipName:     r[EquipName],
		WorkKind:      r[WorkKind],
		Description:   r[Description],
		ReplacedParts: r[ReplacedParts],
		Cost:          r[Cost],
		Worker:        r[Worker],
		Downtime:      r[Downtime],
		EnteredAt:     r[EnteredAt],
		Author:        r[Author],
		LastEditor:    r[LastEditor],
		LastEditedAt:  r[LastEditedAt],
	}
}
