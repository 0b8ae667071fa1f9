package contracts

import (
	"context"

	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// TableStore is the typed table store the repositories read and write through.
type TableStore interface {
	// Load reads a worksheet conformed to schema. A missing worksheet reads as
	// an empty table.
	Load(ctx context.Context, name string, schema table.Schema) (*table.Table, error)

	// LoadFresh is Load bypassing the read cache.
	LoadFresh(ctx context.Context, name string, schema table.Schema) (*table.Table, error)

	// SaveReplace clears a worksheet and rewrites it with t.
	SaveReplace(ctx context.Context, t *table.Table, name string) error

	// AppendOne appends a record ordered by the worksheet's current header.
	AppendOne(ctx context.Context, record table.Record, name string) error

	// AppendMany appends records ordered by schema, creating the worksheet if needed.
	AppendMany(ctx context.Context, records []table.Record, name string, schema table.Schema) error

	// Ensure creates a worksheet with the schema header when absent.
	Ensure(ctx context.Context, name string, schema table.Schema) error

	// Worksheets lists the workbook's worksheet titles.
	Worksheets(ctx context.Context) ([]string, error)

	// Invalidate drops every cached read.
	Invalidate()
}
