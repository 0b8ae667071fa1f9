package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models/m_inventory"
	"github.com/light-bringer/smt-console/internal/models/m_inventory_history"
	"github.com/light-bringer/smt-console/internal/pkg/query"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// InventoryRepo implements InventoryRepository over inventory_data and inventory_history.
// One instance serializes every writer of the process; share it.
type InventoryRepo struct {
	store contracts.TableStore
	lock  chan struct{}
}

// NewInventoryRepository creates a new InventoryRepository.
func NewInventoryRepository(store contracts.TableStore) contracts.InventoryRepository {
	return &InventoryRepo{store: store, lock: make(chan struct{}, 1)}
}

// Exclusive waits for the write lock or for ctx to end.
func (r *InventoryRepo) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case r.lock <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("failed to lock inventory: %w", ctx.Err())
	}
	defer func() { <-r.lock }()
	return fn(ctx)
}

func (r *InventoryRepo) LoadState(ctx context.Context) (*table.Table, error) {
	return r.store.LoadFresh(ctx, m_inventory.SheetName, m_inventory.Schema())
}

func (r *InventoryRepo) ReplaceState(ctx context.Context, state *table.Table) error {
	if err := r.store.SaveReplace(ctx, state, m_inventory.SheetName); err != nil {
		return fmt.Errorf("failed to write stock: %w", err)
	}
	return nil
}

// AppendHistory appends the ledger row. The history worksheet is created with
// its declared header on first use.
func (r *InventoryRepo) AppendHistory(ctx context.Context, entry *m_inventory_history.Data) error {
	records := []table.Record{entry.Record()}
	if err := r.store.AppendMany(ctx, records, m_inventory_history.SheetName, m_inventory_history.Schema()); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Levels(ctx context.Context) ([]domain.StockLevel, error) {
	state, err := r.store.Load(ctx, m_inventory.SheetName, m_inventory.Schema())
	if err != nil {
		return nil, err
	}
	return domain.Levels(state), nil
}

func (r *InventoryRepo) Ledger(ctx context.Context) ([]domain.LedgerEntry, error) {
	history, err := r.store.Load(ctx, m_inventory_history.SheetName, m_inventory_history.Schema())
	if err != nil {
		return nil, err
	}
	entries := make([]domain.LedgerEntry, 0, history.Len())
	hasCode := query.NotEmpty(m_inventory_history.ItemCode)
	for i, row := range history.Rows {
		if !hasCode.Match(row) {
			continue
		}
		d := m_inventory_history.FromRow(row)
		entries = append(entries, domain.LedgerEntry{Row: i + 1, ItemCode: d.ItemCode, Label: d.Direction, Delta: d.Delta})
	}
	return entries, nil
}
