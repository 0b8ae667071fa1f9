package repo

import (
	"context"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/models/m_equipment"
	"github.com/light-bringer/smt-console/internal/models/m_item"
)

// CatalogRepo implements CatalogRepository over item_codes and equipment_list.
type CatalogRepo struct {
	store contracts.TableStore
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(store contracts.TableStore) contracts.CatalogRepository {
	return &CatalogRepo{store: store}
}

func (r *CatalogRepo) ItemName(ctx context.Context, itemCode string) (string, error) {
	t, err := r.store.Load(ctx, m_item.SheetName, m_item.Schema())
	if err != nil {
		return "", err
	}
	if i := t.Find(m_item.ItemCode, itemCode); i >= 0 {
		return m_item.FromRow(t.Rows[i]).ItemName, nil
	}
	return "", nil
}

func (r *CatalogRepo) EquipmentName(ctx context.Context, equipID string) (string, error) {
	t, err := r.store.Load(ctx, m_equipment.SheetName, m_equipment.Schema())
	if err != nil {
		return "", err
	}
	if i := t.Find(m_equipment.ID, equipID); i >= 0 {
		return m_equipment.FromRow(t.Rows[i]).Name, nil
	}
	return "", nil
}
