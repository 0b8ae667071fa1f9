package maintenance_summary

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models/m_maintenance"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/query"
)

// Request bounds the summary by date, inclusive. Empty bounds are open.
type Request struct {
	From string
	To   string
}

// Equipment is the maintenance total of one piece of equipment.
type Equipment struct {
	EquipID         string
	EquipName       string
	Events          int
	TotalCost       decimal.Decimal
	DowntimeMinutes float64
}

// Summary is the per-equipment maintenance total.
type Summary struct {
	Equipment []Equipment
	TotalCost decimal.Decimal
	Events    int
}

// Query handles the maintenance summary query.
type Query struct {
	repo contracts.RecordRepository
}

// NewQuery creates a new maintenance summary query over maintenance_data.
func NewQuery(repo contracts.RecordRepository) *Query {
	return &Query{repo: repo}
}

// Execute sums cost and downtime per equipment id. Costs and downtimes that
// do not parse count as zero.
func (q *Query) Execute(ctx context.Context, req *Request) (*Summary, error) {
	for _, d := range []string{req.From, req.To} {
		if d == "" {
			continue
		}
		if _, ok := coerce.ParseDate(d); !ok {
			return nil, domain.ErrInvalidDate
		}
	}

	t, err := q.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance: %w", err)
	}

	byID := make(map[string]*Equipment)
	sum := &Summary{TotalCost: decimal.Zero}
	for _, row := range query.From(t).Where(query.Between(m_maintenance.Date, req.From, req.To)).Rows() {
		d := m_maintenance.FromRow(row)

		e, ok := byID[d.EquipID]
		if !ok {
			e = &Equipment{EquipID: d.EquipID, TotalCost: decimal.Zero}
			byID[d.EquipID] = e
		}
		if e.EquipName == "" {
			e.EquipName = d.EquipName
		}
		cost := parseCost(d.Cost)
		e.Events++
		e.TotalCost = e.TotalCost.Add(cost)
		e.DowntimeMinutes += coerce.Float(d.Downtime, 0)

		sum.Events++
		sum.TotalCost = sum.TotalCost.Add(cost)
	}

	sum.Equipment = make([]Equipment, 0, len(byID))
	for _, e := range byID {
		sum.Equipment = append(sum.Equipment, *e)
	}
	sort.Slice(sum.Equipment, func(i, j int) bool {
		return sum.Equipment[i].EquipID < sum.Equipment[j].EquipID
	})
	return sum, nil
}

// parseCost reads a cost cell exactly. Thousands separators are ignored and
// anything else that does not parse is zero.
func parseCost(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
