package init_sheets

import (
	"context"
	"fmt"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/models"
)

// Response lists which worksheets were created and which already existed.
type Response struct {
	Created  []string
	Existing []string
}

// Interactor creates every declared worksheet with its header row.
type Interactor struct {
	store  contracts.TableStore
	sheets []models.Sheet
}

// NewInteractor creates a new init sheets interactor over the declared
// worksheets.
func NewInteractor(store contracts.TableStore) *Interactor {
	return &Interactor{store: store, sheets: models.Sheets()}
}

// Execute creates the missing worksheets. Existing worksheets are left
// untouched, header included.
func (i *Interactor) Execute(ctx context.Context) (*Response, error) {
	// 1. List what is already there
	titles, err := i.store.Worksheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}
	present := make(map[string]bool, len(titles))
	for _, t := range titles {
		present[t] = true
	}

	// 2. Create the rest
	resp := &Response{}
	for _, s := range i.sheets {
		if present[s.Name] {
			resp.Existing = append(resp.Existing, s.Name)
			continue
		}
		if err := i.store.Ensure(ctx, s.Name, s.Schema); err != nil {
			return resp, err
		}
		resp.Created = append(resp.Created, s.Name)
	}
	return resp, nil
}
