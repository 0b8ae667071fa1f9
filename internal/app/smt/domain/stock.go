package domain

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/light-bringer/smt-console/internal/models/m_inventory"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// StockLevel is the materialized stock of one item.
type StockLevel struct {
	ItemCode string
	ItemName string
	Current  int64
}

// LedgerEntry is the part of a history row that drives stock.
type LedgerEntry struct {
	// Row is the 1-based position among the history rows.
	Row      int
	ItemCode string
	// Label is the stored direction cell, as typed.
	Label string
	Delta int64
}

// NormalizeCode is the form item codes are compared in: trimmed and NFC
// folded. A code typed with decomposed Hangul or a stray space still names
// the same item.
func NormalizeCode(code string) string {
	return norm.NFC.String(strings.TrimSpace(code))
}

// Levels reads the stock level of every inventory_data row with an item code.
func Levels(state *table.Table) []StockLevel {
	levels := make([]StockLevel, 0, state.Len())
	for _, row := range state.Rows {
		d := m_inventory.FromRow(row)
		if NormalizeCode(d.ItemCode) == "" {
			continue
		}
		levels = append(levels, StockLevel{ItemCode: d.ItemCode, ItemName: d.ItemName, Current: d.CurrentStock})
	}
	return levels
}

// findCode returns the first row whose item code normalizes to code, or -1.
func findCode(state *table.Table, code string) int {
	code = NormalizeCode(code)
	for i := range state.Rows {
		if NormalizeCode(state.Get(i, m_inventory.ItemCode)) == code {
			return i
		}
	}
	return -1
}

// ApplyStockDelta upserts an item in an inventory_data table. Every
// current_stock cell is first normalized with integer coercion, so a
// malformed cell counts as 0. An existing row gets delta added; otherwise a
// row with current_stock = delta is appended. Codes match in NormalizeCode
// form. Other columns are preserved.
// It returns the item's new stock.
func ApplyStockDelta(state *table.Table, itemCode, itemName string, delta int64) int64 {
	state.EnsureColumns(m_inventory.Schema().Names()...)
	for i := range state.Rows {
		state.Set(i, m_inventory.CurrentStock, strconv.FormatInt(state.Int(i, m_inventory.CurrentStock), 10))
	}

	if i := findCode(state, itemCode); i >= 0 {
		next := state.Int(i, m_inventory.CurrentStock) + delta
		state.Set(i, m_inventory.CurrentStock, strconv.FormatInt(next, 10))
		if state.Get(i, m_inventory.ItemName) == "" && itemName != "" {
			state.Set(i, m_inventory.ItemName, itemName)
		}
		return next
	}

	state.AppendRow(table.Row{
		m_inventory.ItemCode:     NormalizeCode(itemCode),
		m_inventory.ItemName:     itemName,
		m_inventory.CurrentStock: strconv.FormatInt(delta, 10),
	})
	return delta
}
