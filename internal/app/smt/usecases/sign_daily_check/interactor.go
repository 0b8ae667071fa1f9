package sign_daily_check

import (
	"context"
	"strings"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/pkg/clock"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

// Request contains one line leader signature. Data is an opaque encoded
// image and is stored as given.
type Request struct {
	Date   string
	Line   string
	Signer string
	Data   string
}

// Interactor handles the sign daily check use case.
type Interactor struct {
	repo  contracts.CheckRepository
	clock clock.Clock
}

// NewInteractor creates a new sign daily check interactor.
func NewInteractor(repo contracts.CheckRepository, clock clock.Clock) *Interactor {
	return &Interactor{repo: repo, clock: clock}
}

// Execute appends a signature row. Earlier signatures of the same signer are
// kept; readers take the latest timestamp as current.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if err := i.validate(req); err != nil {
		return err
	}

	now := i.clock.Now()
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = coerce.Date(now)
	}

	return i.repo.AppendSignature(ctx, domain.Signature{
		Date:      date,
		Line:      strings.TrimSpace(req.Line),
		Signer:    strings.TrimSpace(req.Signer),
		Data:      req.Data,
		Timestamp: coerce.Timestamp(now),
	})
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.Date != "" {
		if _, ok := coerce.ParseDate(req.Date); !ok {
			return domain.ErrInvalidDate
		}
	}
	if strings.TrimSpace(req.Line) == "" {
		return domain.ErrEmptyLine
	}
	if strings.TrimSpace(req.Signer) == "" {
		return domain.ErrEmptySigner
	}
	if req.Data == "" {
		return domain.ErrEmptySignature
	}
	return nil
}
