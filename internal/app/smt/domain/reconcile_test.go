package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/light-bringer/smt-console/internal/models/m_inventory"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

func TestReconcile(t *testing.T) {
	t.Run("consistent ledger", func(t *testing.T) {
		levels := []StockLevel{{ItemCode: "A1", ItemName: "Widget", Current: 7}}
		entries := []LedgerEntry{{ItemCode: "A1", Delta: 10}, {ItemCode: "A1", Delta: -3}}

		r := Reconcile(levels, entries)

		assert.True(t, r.Consistent())
		assert.Equal(t, 1, r.ItemsChecked)
	})

	t.Run("reports every kind of divergence", func(t *testing.T) {
		levels := []StockLevel{
			{ItemCode: "B", Current: 4},
			{ItemCode: "A", Current: 9},
			{ItemCode: "Z", Current: 0},
		}
		entries := []LedgerEntry{
			{ItemCode: "A", Delta: 10},
			{ItemCode: "C", Delta: 2},
		}

		r := Reconcile(levels, entries)

		require.Len(t, r.Divergences, 3)
		assert.Equal(t, 4, r.ItemsChecked)

		a := r.Divergences[0]
		assert.Equal(t, "A", a.ItemCode)
		assert.Equal(t, int64(-1), a.Delta())
		assert.True(t, a.HasState)
		assert.True(t, a.HasHistory)

		b := r.Divergences[1]
		assert.Equal(t, "B", b.ItemCode)
		assert.False(t, b.HasHistory)

		c := r.Divergences[2]
		assert.Equal(t, "C", c.ItemCode)
		assert.False(t, c.HasState)
		assert.Equal(t, int64(2), c.HistorySum)
	})

	t.Run("first state row wins for duplicate codes", func(t *testing.T) {
		levels := []StockLevel{{ItemCode: "A", Current: 1}, {ItemCode: "A", Current: 50}}
		r := Reconcile(levels, []LedgerEntry{{ItemCode: "A", Delta: 1}})
		assert.True(t, r.Consistent())
	})

	t.Run("codes compare trimmed and NFC folded", func(t *testing.T) {
		levels := []StockLevel{{ItemCode: "부품-1 ", Current: 5}}
		entries := []LedgerEntry{{ItemCode: norm.NFD.String("부품-1"), Delta: 5}}

		r := Reconcile(levels, entries)

		assert.True(t, r.Consistent(), "divergences: %+v", r.Divergences)
		assert.Equal(t, 1, r.ItemsChecked)
	})

	t.Run("mislabeled rows are reported but not counted", func(t *testing.T) {
		levels := []StockLevel{{ItemCode: "A", Current: 6}}
		entries := []LedgerEntry{
			{Row: 1, ItemCode: "A", Label: "입고", Delta: 10},
			{Row: 2, ItemCode: "A", Label: "입고", Delta: -3},
			{Row: 3, ItemCode: "A", Label: "out", Delta: -1},
			{Row: 4, ItemCode: "A", Label: "반품", Delta: 0},
			{Row: 5, ItemCode: "A", Label: "", Delta: 0},
		}

		r := Reconcile(levels, entries)

		assert.True(t, r.Consistent())
		assert.Equal(t, []Mislabel{
			{Row: 2, ItemCode: "A", Label: "입고", Delta: -3, Known: true, Expected: Outbound},
			{Row: 4, ItemCode: "A", Label: "반품", Delta: 0, Known: false, Expected: Outbound},
		}, r.Mislabeled)
	})
}

func TestCheckLabels_AcceptsEnglishAliases(t *testing.T) {
	entries := []LedgerEntry{
		{ItemCode: "A", Label: "Inbound", Delta: 2},
		{ItemCode: "A", Label: " outbound ", Delta: -2},
		{ItemCode: "A", Label: "in", Delta: -2},
	}

	got := CheckLabels(entries)

	require.Len(t, got, 1)
	assert.Equal(t, "in", got[0].Label)
	assert.Equal(t, "outbound", got[0].Expected.English())
}

func TestRebuildState(t *testing.T) {
	state := table.New(m_inventory.ItemCode, m_inventory.ItemName, m_inventory.CurrentStock, "location")
	state.AppendRow(table.Row{m_inventory.ItemCode: "A", m_inventory.ItemName: "Widget", m_inventory.CurrentStock: "99", "location": "rack 1"})
	state.AppendRow(table.Row{m_inventory.ItemCode: "Q", m_inventory.ItemName: "Orphan", m_inventory.CurrentStock: "3"})
	state.AppendRow(table.Row{m_inventory.ItemCode: "A", m_inventory.CurrentStock: "1"})
	entries := []LedgerEntry{
		{ItemCode: "B", Delta: 5},
		{ItemCode: "A", Delta: 10},
		{ItemCode: "A", Delta: -4},
	}

	got := RebuildState(state, entries)

	require.Equal(t, 3, got.Len())
	assert.Equal(t, []string{"A", "Q", "B"}, got.Column(m_inventory.ItemCode))
	assert.Equal(t, []string{"6", "0", "5"}, got.Column(m_inventory.CurrentStock))
	assert.Equal(t, "rack 1", got.Get(0, "location"))
	assert.Equal(t, "Orphan", got.Get(1, m_inventory.ItemName))
	assert.Equal(t, 3, state.Len(), "input is not modified")

	var levels []StockLevel
	for i := range got.Rows {
		levels = append(levels, StockLevel{ItemCode: got.Get(i, m_inventory.ItemCode), Current: got.Int(i, m_inventory.CurrentStock)})
	}
	assert.True(t, Reconcile(levels, entries).Consistent())
}

func TestRebuildState_MergesCodeSpellings(t *testing.T) {
	state := table.Empty(m_inventory.Schema())
	state.AppendRow(table.Row{m_inventory.ItemCode: " A1", m_inventory.CurrentStock: "0"})
	state.AppendRow(table.Row{m_inventory.ItemCode: "A1", m_inventory.CurrentStock: "0"})

	got := RebuildState(state, []LedgerEntry{{ItemCode: "A1 ", Delta: 4}})

	require.Equal(t, 1, got.Len())
	assert.Equal(t, " A1", got.Get(0, m_inventory.ItemCode))
	assert.Equal(t, "4", got.Get(0, m_inventory.CurrentStock))
}
