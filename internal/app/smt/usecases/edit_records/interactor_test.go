package edit_records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/app/smt/repo"
	"github.com/light-bringer/smt-console/internal/models/m_maintenance"
	"github.com/light-bringer/smt-console/internal/models/m_production"
	"github.com/light-bringer/smt-console/internal/pkg/table"
	"github.com/light-bringer/smt-console/internal/testutil"
)

func setup(t *testing.T) (*testutil.Env, *Interactor) {
	t.Helper()
	env := testutil.NewEnv(t)
	env.Seed(m_production.SheetName, m_production.Schema(),
		[]string{"2024-04-30", "output", "A1", "Widget", "100", "2024-04-30 17:00:00.000000", "alice", "", ""},
		[]string{"2024-04-30", "output", "B2", "Gadget", "50", "2024-04-30 17:05:00.000000", "alice", "", ""},
	)
	uc := NewInteractor(testutil.NewMockClock(),
		repo.NewProductionRepository(env.Store),
		repo.NewMaintenanceRepository(env.Store),
	)
	return env, uc
}

func TestExecute_StampsChangedRows(t *testing.T) {
	env, uc := setup(t)
	ctx := context.Background()

	stored, err := repo.NewProductionRepository(env.Store).Load(ctx)
	require.NoError(t, err)
	edited := stored.Clone()
	edited.Set(1, m_production.Quantity, "55")

	res, err := uc.Execute(ctx, &Request{Sheet: m_production.SheetName, Table: edited, Editor: "bob"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Changed)

	data := env.Data(m_production.SheetName)
	require.Len(t, data, 2)
	assert.Equal(t, []string{"2024-04-30", "output", "A1", "Widget", "100", "2024-04-30 17:00:00.000000", "alice", "", ""}, data[0])
	assert.Equal(t, []string{"2024-04-30", "output", "B2", "Gadget", "55", "2024-04-30 17:05:00.000000", "alice", "bob", "2024-05-01 08:30:00.000000"}, data[1])
}

func TestExecute_KeepsStoredColumnsMissingFromEdit(t *testing.T) {
	env, uc := setup(t)
	ctx := context.Background()
	header := append(m_production.Schema().Names(), "shift")
	env.Memory.Seed(m_production.SheetName, [][]string{
		header,
		{"2024-04-30", "output", "A1", "Widget", "100", "2024-04-30 17:00:00.000000", "alice", "", "", "day"},
		{"2024-04-30", "output", "B2", "Gadget", "50", "2024-04-30 17:05:00.000000", "alice", "", "", "night"},
	})
	env.Store.Invalidate()

	// The editor only knows the declared columns.
	stored, err := repo.NewProductionRepository(env.Store).Load(ctx)
	require.NoError(t, err)
	edited := table.New(m_production.Schema().Names()...)
	for i := range stored.Rows {
		row := table.Row{}
		for _, col := range edited.Columns {
			row[col] = stored.Get(i, col)
		}
		edited.AppendRow(row)
	}
	edited.Set(0, m_production.Quantity, "90")

	res, err := uc.Execute(ctx, &Request{Sheet: m_production.SheetName, Table: edited, Editor: "bob"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Changed)

	rows := env.Memory.Rows(m_production.SheetName)
	require.Len(t, rows, 3)
	assert.Contains(t, rows[0], "shift")
	after, err := repo.NewProductionRepository(env.Store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"day", "night"}, after.Column("shift"))
	assert.Equal(t, []string{"bob", ""}, after.Column(m_production.LastEditor))
}

func TestExecute_NoChangeWritesNothing(t *testing.T) {
	env, uc := setup(t)
	ctx := context.Background()

	stored, err := repo.NewProductionRepository(env.Store).Load(ctx)
	require.NoError(t, err)
	clears := env.Backend.Calls(testutil.OpClear)

	// Touching only audit columns is not an edit.
	stored.Set(0, m_production.LastEditor, "mallory")
	res, err := uc.Execute(ctx, &Request{Sheet: m_production.SheetName, Table: stored, Editor: "bob"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Changed)
	assert.Equal(t, clears, env.Backend.Calls(testutil.OpClear))
}

func TestExecute_RowCountMustMatch(t *testing.T) {
	env, uc := setup(t)
	ctx := context.Background()

	stored, err := repo.NewProductionRepository(env.Store).Load(ctx)
	require.NoError(t, err)
	stored.Rows = stored.Rows[:1]

	_, err = uc.Execute(ctx, &Request{Sheet: m_production.SheetName, Table: stored, Editor: "bob"})
	assert.ErrorIs(t, err, domain.ErrRowCountChanged)
}

func TestExecute_Validation(t *testing.T) {
	env, uc := setup(t)
	ctx := context.Background()
	stored, err := repo.NewMaintenanceRepository(env.Store).Load(ctx)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{Sheet: "inventory_data", Table: stored, Editor: "bob"})
	assert.ErrorIs(t, err, domain.ErrUnknownSheet)

	_, err = uc.Execute(ctx, &Request{Sheet: m_maintenance.SheetName, Table: stored})
	assert.ErrorIs(t, err, domain.ErrEmptyAuthor)

	_, err = uc.Execute(ctx, &Request{Sheet: m_maintenance.SheetName, Editor: "bob"})
	assert.Error(t, err)
}
