package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/models/m_maintenance"
	"github.com/light-bringer/smt-console/internal/models/m_production"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// RecordRepo implements RecordRepository for one worksheet.
type RecordRepo struct {
	store  contracts.TableStore
	sheet  string
	schema table.Schema
}

// NewRecordRepository creates a repository over the named worksheet.
func NewRecordRepository(store contracts.TableStore, sheet string, schema table.Schema) contracts.RecordRepository {
	return &RecordRepo{store: store, sheet: sheet, schema: schema}
}

// NewProductionRepository returns the production_data repository.
func NewProductionRepository(store contracts.TableStore) contracts.RecordRepository {
	return NewRecordRepository(store, m_production.SheetName, m_production.Schema())
}

// NewMaintenanceRepository returns the maintenance_data repository.
func NewMaintenanceRepository(store contracts.TableStore) contracts.RecordRepository {
	return NewRecordRepository(store, m_maintenance.SheetName, m_maintenance.Schema())
}

// Sheet returns the worksheet name.
func (r *RecordRepo) Sheet() string {
	return r.sheet
}

// Schema returns the declared columns.
func (r *RecordRepo) Schema() table.Schema {
	return r.schema
}

// Append writes one record. A worksheet that does not exist yet is created
// with the record's field order as header.
func (r *RecordRepo) Append(ctx context.Context, record table.Record) error {
	if err := r.store.AppendOne(ctx, record, r.sheet); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// Load reads the worksheet.
func (r *RecordRepo) Load(ctx context.Context) (*table.Table, error) {
	return r.store.Load(ctx, r.sheet, r.schema)
}

// Replace rewrites the worksheet.
func (r *RecordRepo) Replace(ctx context.Context, t *table.Table) error {
	if err := r.store.SaveReplace(ctx, t, r.sheet); err != nil {
		return fmt.Errorf("failed to replace records: %w", err)
	}
	return nil
}
