package record_maintenance

import (
	"context"
	"fmt"
	"strings"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models/m_maintenance"
	"github.com/light-bringer/smt-console/internal/pkg/clock"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

// Request contains the data of one maintenance event. Cost and Downtime are
// stored as entered and parsed on read.
type Request struct {
	Date          string
	EquipID       string
	EquipName     string
	WorkKind      string
	Description   string
	ReplacedParts string
	Cost          string
	Worker        string
	Downtime      string // minutes
	Author        string
}

// Interactor handles the record maintenance use case.
type Interactor struct {
	repo    contracts.RecordRepository
	catalog contracts.CatalogRepository
	clock   clock.Clock
}

// NewInteractor creates a new record maintenance interactor.
func NewInteractor(repo contracts.RecordRepository, catalog contracts.CatalogRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
	}
}

// Execute appends one maintenance_data row.
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

	// 2. Resolve missing equipment name
	name := strings.TrimSpace(req.EquipName)
	if name == "" && i.catalog != nil {
		if found, err := i.catalog.EquipmentName(ctx, req.EquipID); err == nil {
			name = found
		}
	}

	// 3. Append the row
	data := &m_maintenance.Data{
		Date:          date,
		EquipID:       strings.TrimSpace(req.EquipID),
		EquipName:     name,
		WorkKind:      req.WorkKind,
		Description:   req.Description,
		ReplacedParts: req.ReplacedParts,
		Cost:          strings.TrimSpace(req.Cost),
		Worker:        req.Worker,
		Downtime:      strings.TrimSpace(req.Downtime),
		EnteredAt:     coerce.Timestamp(now),
		Author:        req.Author,
	}
	if err := i.repo.Append(ctx, data.Record()); err != nil {
		return fmt.Errorf("failed to record maintenance: %w", err)
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
	if strings.TrimSpace(req.EquipID) == "" {
		return domain.ErrEmptyEquipID
	}
	if strings.TrimSpace(req.Author) == "" {
		return domain.ErrEmptyAuthor
	}
	return nil
}
