package record_production

import (
	"context"
	"fmt"
	"strings"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models/m_production"
	"github.com/light-bringer/smt-console/internal/pkg/clock"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

// Request contains the data of one production event.
type Request struct {
	Date     string // YYYY-MM-DD, today when empty
	Kind     string
	ItemCode string
	ItemName string // looked up in item_codes when empty
	Quantity int64
	Author   string
}

// Interactor handles the record production use case.
type Interactor struct {
	repo    contracts.RecordRepository
	catalog contracts.CatalogRepository
	clock   clock.Clock
}

// NewInteractor creates a new record production interactor.
func NewInteractor(repo contracts.RecordRepository, catalog contracts.CatalogRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
	}
}

// Execute appends one production_data row. Inventory is not touched:
// production output is not consumed from stock automatically.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Validate request
	if err := i.validate(req); err != nil {
		return err
	}

	now := i.clock.Now()
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = coerce.Date(now)
	}

	// 2. Resolve missing name from the catalog
	name := strings.TrimSpace(req.ItemName)
	if name == "" && i.catalog != nil {
		if found, err := i.catalog.ItemName(ctx, req.ItemCode); err == nil {
			name = found
		}
	}

	// 3. Append the row
	data := &m_production.Data{
		Date:      date,
		Kind:      req.Kind,
		ItemCode:  strings.TrimSpace(req.ItemCode),
		ItemName:  name,
		Quantity:  req.Quantity,
		EnteredAt: coerce.Timestamp(now),
		Author:    req.Author,
	}
	if err := i.repo.Append(ctx, data.Record()); err != nil {
		return fmt.Errorf("failed to record production: %w", err)
	}
	return nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.Date != "" {
		if _, ok := coerce.ParseDate(req.Date); !ok {
			return domain.ErrInvalidDate
		}
	}
	if strings.TrimSpace(req.ItemCode) == "" {
		return domain.ErrEmptyItemCode
	}
	if strings.TrimSpace(req.Author) == "" {
		return domain.ErrEmptyAuthor
	}
	return nil
}
