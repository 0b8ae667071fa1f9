package contracts

import (
	"context"

	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// RecordRepository persists an append-mostly event log such as
// production_data or maintenance_data.
type RecordRepository interface {
	// Sheet returns the worksheet name.
	Sheet() string

	// Schema returns the declared columns.
	Schema() table.Schema

	// Append writes one record at the end of the worksheet.
	Append(ctx context.Context, record table.Record) error

	// Load reads the whole worksheet.
	Load(ctx context.Context) (*table.Table, error)

	// Replace rewrites the whole worksheet (last writer wins).
	Replace(ctx context.Context, t *table.Table) error
}
