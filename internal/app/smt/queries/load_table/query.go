package load_table

import (
	"context"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models"
	"github.com/light-bringer/smt-console/internal/pkg/query"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Request names the worksheet. A nil Schema selects the declared schema of
// the worksheet, if any. Offset and Limit page through the rows; zero means
// from the start and no limit.
type Request struct {
	Name   string
	Schema table.Schema
	Offset int
	Limit  int
}

// Query handles the load table query.
type Query struct {
	store contracts.TableStore
}

// NewQuery creates a new load table query.
func NewQuery(store contracts.TableStore) *Query {
	return &Query{store: store}
}

// Execute reads the worksheet. The returned table always carries every
// schema column, also on error.
func (q *Query) Execute(ctx context.Context, req *Request) (*table.Table, error) {
	schema := req.Schema
	if schema == nil {
		schema, _ = models.Lookup(req.Name)
	}
	if req.Offset < 0 || req.Limit < 0 {
		return table.Empty(schema), domain.ErrInvalidPage
	}

	t, err := q.store.Load(ctx, req.Name, schema)
	if err != nil || (req.Offset == 0 && req.Limit == 0) {
		return t, err
	}
	return query.From(t).Offset(req.Offset).Limit(req.Limit).Table(), nil
}
