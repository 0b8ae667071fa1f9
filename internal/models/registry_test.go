package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Column order is part of the worksheet contract.
func TestSheets_ColumnContract(t *testing.T) {
	want := map[string][]string{
		"production_data":       {"date", "kind", "item_code", "item_name", "quantity", "entered_at", "author", "last_editor", "last_edited_at"},
		"item_codes":            {"item_code", "item_name"},
		"inventory_data":        {"item_code", "item_name", "current_stock"},
		"inventory_history":     {"date", "item_code", "direction", "quantity", "note", "author", "entered_at"},
		"maintenance_data":      {"date", "equip_id", "equip_name", "work_kind", "description", "replaced_parts", "cost", "worker", "downtime", "entered_at", "author", "last_editor", "last_edited_at"},
		"equipment_list":        {"id", "name", "function"},
		"daily_check_master":    {"line", "equip_id", "equip_name", "item_name", "check_content", "standard", "check_type", "min_val", "max_val", "unit"},
		"daily_check_result":    {"date", "line", "equip_id", "item_name", "value", "ox", "checker", "timestamp"},
		"daily_check_signature": {"date", "line", "signer", "signature_data", "timestamp"},
	}

	sheets := Sheets()
	require.Len(t, sheets, len(want))
	for _, s := range sheets {
		assert.Equal(t, want[s.Name], s.Schema.Names(), s.Name)
	}
}

func TestLookup(t *testing.T) {
	schema, ok := Lookup("inventory_data")
	require.True(t, ok)
	assert.Len(t, schema, 3)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
