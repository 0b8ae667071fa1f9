package contracts

import "context"

// CatalogRepository resolves display names from item_codes and equipment_list.
type CatalogRepository interface {
	// ItemName returns the catalog name of an item code, "" when unknown.
	ItemName(ctx context.Context, itemCode string) (string, error)

	// EquipmentName returns the catalog name of an equipment id, "" when unknown.
	EquipmentName(ctx context.Context, equipID string) (string, error)
}
