package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/smt-console/internal/app/smt/contracts"
	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/models/m_check_master"
	"github.com/light-bringer/smt-console/internal/models/m_check_result"
	"github.com/light-bringer/smt-console/internal/models/m_check_signature"
	"github.com/light-bringer/smt-console/internal/pkg/query"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// CheckRepo implements CheckRepository.
type CheckRepo struct {
	store contracts.TableStore
}

// NewCheckRepository creates a new CheckRepository.
func NewCheckRepository(store contracts.TableStore) contracts.CheckRepository {
	return &CheckRepo{store: store}
}

func (r *CheckRepo) Master(ctx context.Context, line string) ([]domain.CheckItem, error) {
	t, err := r.store.Load(ctx, m_check_master.SheetName, m_check_master.Schema())
	if err != nil {
		return nil, err
	}
	var items []domain.CheckItem
	for _, row := range query.From(t).Where(query.Eq(m_check_master.Line, line)).Rows() {
		d := m_check_master.FromRow(row)
		items = append(items, domain.CheckItem{
			Line:      d.Line,
			EquipID:   d.EquipID,
			EquipName: d.EquipName,
			ItemName:  d.ItemName,
			Content:   d.CheckContent,
			Standard:  d.Standard,
			Type:      domain.ParseCheckType(d.CheckType),
			Min:       d.MinVal,
			Max:       d.MaxVal,
			Unit:      d.Unit,
		})
	}
	return items, nil
}

func (r *CheckRepo) AppendResults(ctx context.Context, results []domain.CheckResult) error {
	records := make([]table.Record, len(results))
	for i, res := range results {
		d := m_check_result.Data{
			Date:      res.Date,
			Line:      res.Line,
			EquipID:   res.EquipID,
			ItemName:  res.ItemName,
			Value:     res.Value,
			OX:        string(res.OX),
			Checker:   res.Checker,
			Timestamp: res.Timestamp,
		}
		records[i] = d.Record()
	}
	if err := r.store.AppendMany(ctx, records, m_check_result.SheetName, m_check_result.Schema()); err != nil {
		return fmt.Errorf("failed to append check results: %w", err)
	}
	return nil
}

func (r *CheckRepo) Results(ctx context.Context, date, line string) ([]domain.CheckResult, error) {
	t, err := r.store.Load(ctx, m_check_result.SheetName, m_check_result.Schema())
	if err != nil {
		return nil, err
	}
	rows := query.From(t).
		Where(query.Eq(m_check_result.Date, date), query.Eq(m_check_result.Line, line)).
		Rows()
	var out []domain.CheckResult
	for _, row := range rows {
		d := m_check_result.FromRow(row)
		out = append(out, domain.CheckResult{
			Date:      d.Date,
			Line:      d.Line,
			EquipID:   d.EquipID,
			ItemName:  d.ItemName,
			Value:     d.Value,
			OX:        domain.Verdict(d.OX),
			Checker:   d.Checker,
			Timestamp: d.Timestamp,
		})
	}
	return out, nil
}

func (r *CheckRepo) AppendSignature(ctx context.Context, sig domain.Signature) error {
	d := m_check_signature.Data{
		Date:          sig.Date,
		Line:          sig.Line,
		Signer:        sig.Signer,
		SignatureData: sig.Data,
		Timestamp:     sig.Timestamp,
	}
	records := []table.Record{d.Record()}
	if err := r.store.AppendMany(ctx, records, m_check_signature.SheetName, m_check_signature.Schema()); err != nil {
		return fmt.Errorf("failed to append signature: %w", err)
	}
	return nil
}

func (r *CheckRepo) Signatures(ctx context.Context, date, line string) ([]domain.Signature, error) {
	t, err := r.store.Load(ctx, m_check_signature.SheetName, m_check_signature.Schema())
	if err != nil {
		return nil, err
	}
	rows := query.From(t).
		Where(query.Eq(m_check_signature.Date, date), query.Eq(m_check_signature.Line, line)).
		Rows()
	var out []domain.Signature
	for _, row := range rows {
		d := m_check_signature.FromRow(row)
		out = append(out, domain.Signature{
			Date:      d.Date,
			Line:      d.Line,
			Signer:    d.Signer,
			Data:      d.SignatureData,
			Timestamp: d.Timestamp,
		})
	}
	return out, nil
}
