package reconcile_inventory

import (
	"context"
	"fmt"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
)

// Query compares inventory_data with the sum of inventory_history.
type Query struct {
	repo contracts.InventoryRepository
}

// NewQuery creates a new reconcile inventory query.
func NewQuery(repo contracts.InventoryRepository) *Query {
	return &Query{repo: repo}
}

// Execute returns every item whose stock differs from its ledger sum.
func (q *Query) Execute(ctx context.Context) (*domain.Reconciliation, error) {
	levels, err := q.repo.Levels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}
	ledger, err := q.repo.Ledger(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return domain.Reconcile(levels, ledger), nil
}
