package contracts

import (
	"context"

	"github.com/light-bringer/smt-console/internal/app/smt/domain"
)

// CheckRepository persists daily checks: the master checklist, the results
// and the line leader signatures.
type CheckRepository interface {
	// Master returns the checklist of a line in worksheet order.
	Master(ctx context.Context, line string) ([]domain.CheckItem, error)

	// AppendResults appends every result in one call.
	AppendResults(ctx context.Context, results []domain.CheckResult) error

	// Results returns the results recorded for a date and line.
	Results(ctx context.Context, date, line string) ([]domain.CheckResult, error)

	// AppendSignature appends one signature row.
	AppendSignature(ctx context.Context, sig domain.Signature) error

	// Signatures returns every signature row of a date and line.
	Signatures(ctx context.Context, date, line string) ([]domain.Signature, error)
}
