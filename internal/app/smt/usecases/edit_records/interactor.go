package edit_records

import (
	"context"
	"fmt"
	"strings"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models/m_production"
	"github.com/light-bringer/smt-console/internal/pkg/clock"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Both editable worksheets carry the same audit columns.
const (
	lastEditor   = m_production.LastEditor
	lastEditedAt = m_production.LastEditedAt
)

// Request carries the edited copy of a whole worksheet.
type Request struct {
	Sheet  string
	Table  *table.Table
	Editor string
}

// Response reports how many rows were stamped as edited.
type Response struct {
	Changed int
}

// Interactor handles the edit records use case.
type Interactor struct {
	repos map[string]contracts.RecordRepository
	clock clock.Clock
}

// NewInteractor creates a new edit records interactor over the given
// editable worksheets.
func NewInteractor(clock clock.Clock, repos ...contracts.RecordRepository) *Interactor {
	m := make(map[string]contracts.RecordRepository, len(repos))
	for _, r := range repos {
		m[r.Sheet()] = r
	}
	return &Interactor{repos: m, clock: clock}
}

// Execute compares the edited table with the stored one, stamps
// last_editor and last_edited_at on every row whose other cells changed,
// and replace-writes the worksheet. Stored columns missing from the edited
// table keep their stored cells. Nothing is written when no row changed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate request
	repo, err := i.validate(req)
	if err != nil {
		return nil, err
	}

	// 2. Load stored table
	stored, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", req.Sheet, err)
	}
	if stored.Len() != req.Table.Len() {
		return nil, domain.ErrRowCountChanged
	}

	// 3. Carry over stored columns the editor did not send, then stamp
	// changed rows
	edited := req.Table.Clone()
	carryColumns(stored, edited)
	edited.EnsureColumns(repo.Schema().Names()...)
	now := coerce.Timestamp(i.clock.Now())

	changed := 0
	for row := range edited.Rows {
		if !rowChanged(stored, edited, row) {
			continue
		}
		edited.Set(row, lastEditor, req.Editor)
		edited.Set(row, lastEditedAt, now)
		changed++
	}
	if changed == 0 {
		return &Response{}, nil
	}

	// 4. Replace worksheet
	if err := repo.Replace(ctx, edited); err != nil {
		return nil, err
	}
	return &Response{Changed: changed}, nil
}

// validate validates the request and resolves the target repository.
func (i *Interactor) validate(req *Request) (contracts.RecordRepository, error) {
	repo, ok := i.repos[req.Sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSheet, req.Sheet)
	}
	if req.Table == nil {
		return nil, fmt.Errorf("edited table is required")
	}
	if strings.TrimSpace(req.Editor) == "" {
		return nil, domain.ErrEmptyAuthor
	}
	return repo, nil
}

// carryColumns copies every stored column edited lacks, row by row.
func carryColumns(stored, edited *table.Table) {
	for _, col := range stored.Columns {
		if edited.HasColumn(col) {
			continue
		}
		edited.EnsureColumns(col)
		for row := range edited.Rows {
			edited.Set(row, col, stored.Get(row, col))
		}
	}
}

func rowChanged(stored, edited *table.Table, row int) bool {
	for _, col := range edited.Columns {
		if col == lastEditor || col == lastEditedAt {
			continue
		}
		if stored.Get(row, col) != edited.Get(row, col) {
			return true
		}
	}
	return false
}
