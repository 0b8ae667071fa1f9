package record_daily_check

import (
	"context"
	"fmt"
	"strings"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/pkg/clock"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

// Result is one observed check item.
type Result struct {
	EquipID  string
	ItemName string
	Value    string
	OX       string // derived from the master checklist when empty
	Checker  string // defaults to Request.Checker
}

// Request contains the results of one line's daily check.
type Request struct {
	Date    string
	Line    string
	Checker string
	Results []Result
}

// Response reports how many rows were appended.
type Response struct {
	Appended  int
	Timestamp string
}

// Interactor handles the record daily check use case.
type Interactor struct {
	repo  contracts.CheckRepository
	clock clock.Clock
}

// NewInteractor creates a new record daily check interactor.
func NewInteractor(repo contracts.CheckRepository, clock clock.Clock) *Interactor {
	return &Interactor{repo: repo, clock: clock}
}

// Execute appends every result in one call. All rows share one timestamp and
// previous results of the same date are kept. A verdict is never derived from
// a master item whose bounds are inverted; nothing is appended then.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate request
	if err := i.validate(req); err != nil {
		return nil, err
	}

	now := i.clock.Now()
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = coerce.Date(now)
	}
	line := strings.TrimSpace(req.Line)
	ts := coerce.Timestamp(now)

	// 2. Load master checklist when a verdict has to be derived
	var master map[string]domain.CheckItem
	for _, r := range req.Results {
		if _, ok := domain.ParseVerdict(r.OX); ok {
			continue
		}
		items, err := i.repo.Master(ctx, line)
		if err != nil {
			return nil, fmt.Errorf("failed to load check master: %w", err)
		}
		master = make(map[string]domain.CheckItem, len(items))
		for _, item := range items {
			master[item.Key()] = item
		}
		break
	}

	// 3. Build rows
	results := make([]domain.CheckResult, len(req.Results))
	for n, r := range req.Results {
		res := domain.CheckResult{
			Date:      date,
			Line:      line,
			EquipID:   strings.TrimSpace(r.EquipID),
			ItemName:  strings.TrimSpace(r.ItemName),
			Value:     strings.TrimSpace(r.Value),
			Checker:   r.Checker,
			Timestamp: ts,
		}
		if res.Checker == "" {
			res.Checker = req.Checker
		}
		if v, ok := domain.ParseVerdict(r.OX); ok {
			res.OX = v
		} else if item, ok := master[res.Key()]; ok {
			if err := item.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %s / %s", err, item.EquipID, item.ItemName)
			}
			res.OX = domain.Judge(item, res.Value)
		}
		results[n] = res
	}

	// 4. Append
	if err := i.repo.AppendResults(ctx, results); err != nil {
		return nil, err
	}
	return &Response{Appended: len(results), Timestamp: ts}, nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.Date != "" {
		if _, ok := coerce.ParseDate(req.Date); !ok {
			return domain.ErrInvalidDate
		}
	}
	if strings.TrimSpace(req.Line) == "" {
		return domain.ErrEmptyLine
	}
	if len(req.Results) == 0 {
		return domain.ErrNoResults
	}
	for _, r := range req.Results {
		if strings.TrimSpace(r.EquipID) == "" || strings.TrimSpace(r.ItemName) == "" {
			return domain.ErrEmptyCheckItem
		}
	}
	return nil
}
