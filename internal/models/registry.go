// Package models lists every worksheet the console owns.
package models

import (
	"github.com/light-bringer/smt-console/internal/models/m_check_master"
	"github.com/light-bringer/smt-console/internal/models/m_check_result"
	"github.com/light-bringer/smt-console/internal/models/m_check_signature"
	"github.com/light-bringer/smt-console/internal/models/m_equipment"
	"github.com/light-bringer/smt-console/internal/models/m_inventory"
	"github.com/light-bringer/smt-console/internal/models/m_inventory_history"
	"github.com/light-bringer/smt-console/internal/models/m_item"
	"github.com/light-bringer/smt-console/internal/models/m_maintenance"
	"github.com/light-bringer/smt-console/internal/models/m_production"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Sheet pairs a worksheet name with its declared schema.
type Sheet struct {
	Name   string
	Schema table.Schema
}

// Sheets returns every declared worksheet in a stable order.
func Sheets() []Sheet {
	return []Sheet{
		{Name: m_production.SheetName, Schema: m_production.Schema()},
		{Name: m_item.SheetName, Schema: m_item.Schema()},
		{Name: m_inventory.SheetName, Schema: m_inventory.Schema()},
		{Name: m_inventory_history.SheetName, Schema: m_inventory_history.Schema()},
		{Name: m_maintenance.SheetName, Schema: m_maintenance.Schema()},
		{Name: m_equipment.SheetName, Schema: m_equipment.Schema()},
		{Name: m_check_master.SheetName, Schema: m_check_master.Schema()},
		{Name: m_check_result.SheetName, Schema: m_check_result.Schema()},
		{Name: m_check_signature.SheetName, Schema: m_check_signature.Schema()},
	}
}

// Lookup returns the schema declared for a worksheet name.
func Lookup(name string) (table.Schema, bool) {
	for _, s := range Sheets() {
		if s.Name == name {
			return s.Schema, true
		}
	}
	return nil, false
}
