package export_workbook

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/models"
)

// Request names the store the snapshot is written to.
type Request struct {
	Target contracts.TableStore
}

// Response counts what was copied.
type Response struct {
	Sheets int
	Rows   int
}

// Interactor snapshots every declared worksheet into another store.
type Interactor struct {
	source contracts.TableStore
	sheets []models.Sheet
}

// NewInteractor creates a new export workbook interactor reading from source.
func NewInteractor(source contracts.TableStore) *Interactor {
	return &Interactor{source: source, sheets: models.Sheets()}
}

// Execute copies each worksheet, columns beyond the schema included. A
// worksheet missing from the source is exported as its header row.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Target == nil {
		return nil, errors.New("export target is required")
	}

	resp := &Response{}
	for _, s := range i.sheets {
		t, err := i.source.Load(ctx, s.Name, s.Schema)
		if err != nil {
			return resp, fmt.Errorf("failed to read %s: %w", s.Name, err)
		}
		if err := req.Target.SaveReplace(ctx, t, s.Name); err != nil {
			return resp, fmt.Errorf("failed to write %s: %w", s.Name, err)
		}
		resp.Sheets++
		resp.Rows += t.Len()
	}
	return resp, nil
}
