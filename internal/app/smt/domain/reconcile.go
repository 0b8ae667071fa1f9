package domain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/light-bringer/smt-console/internal/models/m_inventory"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Divergence is an item whose materialized stock disagrees with its ledger.
type Divergence struct {
	ItemCode   string
	ItemName   string
	StateStock int64
	HistorySum int64
	HasState   bool
	HasHistory bool
}

// Delta is how far the state is off from the ledger.
func (d Divergence) Delta() int64 {
	return d.StateStock - d.HistorySum
}

// Mislabel is a ledger row whose direction label disagrees with its delta.
// Known is false when the label is not a direction at all.
type Mislabel struct {
	Row      int
	ItemCode string
	Label    string
	Delta    int64
	Known    bool
	Expected Direction
}

// Reconciliation compares InventoryState against the sum of InventoryHistory.
type Reconciliation struct {
	ItemsChecked int
	Divergences  []Divergence
	// Mislabeled rows do not affect stock; only the delta is summed.
	Mislabeled []Mislabel
}

// Consistent reports whether every item matches its ledger.
func (r *Reconciliation) Consistent() bool {
	return len(r.Divergences) == 0
}

// CheckLabels returns the entries whose non-empty label contradicts the sign
// of their delta or names no direction, in ledger order.
func CheckLabels(entries []LedgerEntry) []Mislabel {
	var out []Mislabel
	for _, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			continue
		}
		want := DirectionOf(e.Delta)
		got, ok := ParseDirection(e.Label)
		if ok && got == want {
			continue
		}
		out = append(out, Mislabel{
			Row:      e.Row,
			ItemCode: NormalizeCode(e.ItemCode),
			Label:    e.Label,
			Delta:    e.Delta,
			Known:    ok,
			Expected: want,
		})
	}
	return out
}

// Reconcile sums ledger deltas per item and compares them to the stock levels.
// Codes are compared in NormalizeCode form. An item with a zero ledger sum
// and no state row is consistent. Divergences are sorted by item code.
func Reconcile(levels []StockLevel, entries []LedgerEntry) *Reconciliation {
	sums := ledgerSums(entries)
	seen := make(map[string]bool, len(sums))
	for code := range sums {
		seen[code] = true
	}

	state := make(map[string]StockLevel, len(levels))
	for _, l := range levels {
		code := NormalizeCode(l.ItemCode)
		// Stock updates act on the first row of a code, so that row is the state.
		if _, dup := state[code]; !dup {
			state[code] = l
		}
	}

	codes := make(map[string]struct{})
	for c := range sums {
		codes[c] = struct{}{}
	}
	for c := range state {
		codes[c] = struct{}{}
	}

	r := &Reconciliation{ItemsChecked: len(codes), Mislabeled: CheckLabels(entries)}
	for code := range codes {
		l, hasState := state[code]
		sum := sums[code]
		if l.Current == sum {
			continue
		}
		r.Divergences = append(r.Divergences, Divergence{
			ItemCode:   code,
			ItemName:   l.ItemName,
			StateStock: l.Current,
			HistorySum: sum,
			HasState:   hasState,
			HasHistory: seen[code],
		})
	}
	sort.Slice(r.Divergences, func(i, j int) bool {
		return r.Divergences[i].ItemCode < r.Divergences[j].ItemCode
	})
	return r
}

// RebuildState rewrites an inventory_data table so that every item's
// current_stock equals its ledger sum. Row order and extra columns of the
// state are kept; duplicate rows of a code are dropped; items known only to
// the ledger are appended in code order.
func RebuildState(state *table.Table, entries []LedgerEntry) *table.Table {
	sums := ledgerSums(entries)

	out := state.Clone()
	out.EnsureColumns(m_inventory.Schema().Names()...)
	out.Rows = out.Rows[:0]

	placed := make(map[string]bool)
	for _, r := range state.Rows {
		code := NormalizeCode(r[m_inventory.ItemCode])
		if code != "" && placed[code] {
			continue
		}
		row := make(table.Row, len(r))
		for k, v := range r {
			row[k] = v
		}
		if code != "" {
			row[m_inventory.CurrentStock] = strconv.FormatInt(sums[code], 10)
			placed[code] = true
		}
		out.AppendRow(row)
	}

	var missing []string
	for code := range sums {
		if !placed[code] {
			missing = append(missing, code)
		}
	}
	sort.Strings(missing)
	for _, code := range missing {
		out.AppendRow(table.Row{
			m_inventory.ItemCode:     code,
			m_inventory.CurrentStock: strconv.FormatInt(sums[code], 10),
		})
	}
	return out
}

func ledgerSums(entries []LedgerEntry) map[string]int64 {
	sums := make(map[string]int64)
	for _, e := range entries {
		code := NormalizeCode(e.ItemCode)
		if code == "" {
			continue
		}
		sums[code] += e.Delta
	}
	return sums
}
