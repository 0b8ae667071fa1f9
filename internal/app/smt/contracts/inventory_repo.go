package contracts

import (
	"context"

	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models/m_inventory_history"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// InventoryRepository covers the materialized stock table and its ledger.
type InventoryRepository interface {
	// Exclusive runs fn while holding the repository's write lock. Stock
	// movements and rebuilds are read-modify-write cycles and must not
	// interleave.
	Exclusive(ctx context.Context, fn func(ctx context.Context) error) error

	// LoadState reads inventory_data from the backend, never from the cache.
	LoadState(ctx context.Context) (*table.Table, error)

	// ReplaceState rewrites inventory_data.
	ReplaceState(ctx context.Context, state *table.Table) error

	// AppendHistory appends one ledger row to inventory_history.
	AppendHistory(ctx context.Context, entry *m_inventory_history.Data) error

	// Levels returns the stock level of every state row.
	Levels(ctx context.Context) ([]domain.StockLevel, error)

	// Ledger returns every history row as a signed delta.
	Ledger(ctx context.Context) ([]domain.LedgerEntry, error)
}
