package update_inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models/m_inventory_history"
	"github.com/light-bringer/smt-console/internal/pkg/clock"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/committer"
)

// Request describes one stock movement. Delta is signed: positive for
// inbound, zero or negative for outbound.
type Request struct {
	ItemCode string
	ItemName string
	Delta    int64
	Reason   string
	Author   string
}

// Response carries the item's stock after the movement.
type Response struct {
	ItemCode  string
	NewStock  int64
	Direction domain.Direction
}

// Interactor handles the update inventory use case.
type Interactor struct {
	repo    contracts.InventoryRepository
	catalog contracts.CatalogRepository
	clock   clock.Clock
}

// NewInteractor creates a new update inventory interactor.
func NewInteractor(repo contracts.InventoryRepository, catalog contracts.CatalogRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
	}
}

// Execute upserts the item's stock and appends the ledger row.
//
// The state is written before the ledger. If the state write fails no
// ledger row is appended. If the ledger append fails after the state was
// written, the returned error wraps domain.ErrPartialWrite and the
// divergence shows up in reconciliation. Movements on one repository run
// one at a time.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate request
	if err := i.validate(req); err != nil {
		return nil, err
	}
	code := domain.NormalizeCode(req.ItemCode)

	name := strings.TrimSpace(req.ItemName)
	if name == "" && i.catalog != nil {
		if found, err := i.catalog.ItemName(ctx, code); err == nil {
			name = found
		}
	}

	// 2. Hold the inventory lock for the read-modify-write cycle
	var res *Response
	err := i.repo.Exclusive(ctx, func(ctx context.Context) error {
		var err error
		res, err = i.apply(ctx, req, code, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (i *Interactor) apply(ctx context.Context, req *Request, code, name string) (*Response, error) {
	// 1. Load state
	state, err := i.repo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}

	// 2. Coerce stock and apply the delta
	newStock := domain.ApplyStockDelta(state, code, name, req.Delta)

	// 3. Build the ledger row
	now := i.clock.Now()
	direction := domain.DirectionOf(req.Delta)
	entry := &m_inventory_history.Data{
		Date:      coerce.Date(now),
		ItemCode:  code,
		Direction: direction.String(),
		Delta:     req.Delta,
		Note:      req.Reason,
		Author:    req.Author,
		EnteredAt: coerce.Timestamp(now),
	}

	// 4. Replace-write state, then append the ledger row
	plan := committer.NewPlan()
	plan.Add("replace stock", func(ctx context.Context) error {
		return i.repo.ReplaceState(ctx, state)
	})
	plan.Add("append history", func(ctx context.Context) error {
		return i.repo.AppendHistory(ctx, entry)
	})
	if err := committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, committer.ErrPartial) {
			return nil, fmt.Errorf("%w: %w", domain.ErrPartialWrite, err)
		}
		return nil, err
	}

	return &Response{ItemCode: code, NewStock: newStock, Direction: direction}, nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if strings.TrimSpace(req.ItemCode) == "" {
		return domain.ErrEmptyItemCode
	}
	if strings.TrimSpace(req.Author) == "" {
		return domain.ErrEmptyAuthor
	}
	return nil
}
