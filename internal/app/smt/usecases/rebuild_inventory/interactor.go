package rebuild_inventory

import (
	"context"
	"fmt"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
)

// Response reports what the rebuild corrected.
type Response struct {
	Before *domain.Reconciliation
	Items  int
}

// Interactor rewrites inventory_data from inventory_history.
type Interactor struct {
	repo contracts.InventoryRepository
}

// NewInteractor creates a new rebuild inventory interactor.
func NewInteractor(repo contracts.InventoryRepository) *Interactor {
	return &Interactor{repo: repo}
}

// Execute replaces the stock table so that it matches the ledger. The
// ledger is authoritative. When state and ledger already agree nothing is
// written.
func (i *Interactor) Execute(ctx context.Context) (*Response, error) {
	var res *Response
	err := i.repo.Exclusive(ctx, func(ctx context.Context) error {
		var err error
		res, err = i.rebuild(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (i *Interactor) rebuild(ctx context.Context) (*Response, error) {
	// 1. Load both sides
	state, err := i.repo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}
	ledger, err := i.repo.Ledger(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	// 2. Compare
	before := domain.Reconcile(domain.Levels(state), ledger)
	if before.Consistent() {
		return &Response{Before: before, Items: before.ItemsChecked}, nil
	}

	// 3. Rewrite state
	rebuilt := domain.RebuildState(state, ledger)
	if err := i.repo.ReplaceState(ctx, rebuilt); err != nil {
		return nil, err
	}
	return &Response{Before: before, Items: rebuilt.Len()}, nil
}
