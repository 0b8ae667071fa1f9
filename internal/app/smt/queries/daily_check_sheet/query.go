package daily_check_sheet

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/pkg/clock"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

// Request selects a line and date. An empty date means today.
type Request struct {
	Date string
	Line string
}

// Row is one checklist item with its current result, if any.
type Row struct {
	Item   domain.CheckItem
	Result *domain.CheckResult
}

// Sheet is the daily check of one line on one date.
type Sheet struct {
	Date       string
	Line       string
	Rows       []Row
	Unlisted   []domain.CheckResult // results for items missing from the master
	Signatures []domain.Signature
	Checked    int
	NG         int
}

// Complete reports whether every master item has a result.
func (s *Sheet) Complete() bool {
	return s.Checked == len(s.Rows)
}

// Query handles the daily check sheet query.
type Query struct {
	repo  contracts.CheckRepository
	clock clock.Clock
}

// NewQuery creates a new daily check sheet query.
func NewQuery(repo contracts.CheckRepository, clock clock.Clock) *Query {
	return &Query{repo: repo, clock: clock}
}

// Execute joins the master checklist with the latest result of each item and
// the latest signature of each signer.
func (q *Query) Execute(ctx context.Context, req *Request) (*Sheet, error) {
	line := strings.TrimSpace(req.Line)
	if line == "" {
		return nil, domain.ErrEmptyLine
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = coerce.Date(q.clock.Now())
	} else if _, ok := coerce.ParseDate(date); !ok {
		return nil, domain.ErrInvalidDate
	}

	items, err := q.repo.Master(ctx, line)
	if err != nil {
		return nil, fmt.Errorf("failed to load check master: %w", err)
	}
	results, err := q.repo.Results(ctx, date, line)
	if err != nil {
		return nil, fmt.Errorf("failed to load check results: %w", err)
	}
	sigs, err := q.repo.Signatures(ctx, date, line)
	if err != nil {
		return nil, fmt.Errorf("failed to load signatures: %w", err)
	}

	latest := domain.LatestResults(results)
	sheet := &Sheet{
		Date:       date,
		Line:       line,
		Rows:       make([]Row, 0, len(items)),
		Signatures: domain.LatestSignatures(sigs, date, line),
	}

	listed := make(map[string]bool, len(items))
	for _, item := range items {
		listed[item.Key()] = true
		row := Row{Item: item}
		if res, ok := latest[item.Key()]; ok {
			row.Result = &res
			sheet.Checked++
			if res.OX == domain.VerdictNG {
				sheet.NG++
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	for key, res := range latest {
		if !listed[key] {
			sheet.Unlisted = append(sheet.Unlisted, res)
		}
	}
	sort.Slice(sheet.Unlisted, func(i, j int) bool {
		return sheet.Unlisted[i].Key() < sheet.Unlisted[j].Key()
	})
	return sheet, nil
}
