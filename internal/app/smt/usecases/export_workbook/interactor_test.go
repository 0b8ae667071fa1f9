package export_workbook

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smt-console/internal/gateway"
	"github.com/light-bringer/smt-console/internal/models"
	"github.com/light-bringer/smt-console/internal/models/m_inventory"
	"github.com/light-bringer/smt-console/internal/models/m_production"
	"github.com/light-bringer/smt-console/internal/store"
	"github.com/light-bringer/smt-console/internal/testutil"
)

func TestExecute_WritesEverySheetToXLSX(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Seed(m_inventory.SheetName, m_inventory.Schema(),
		[]string{"A1", "Widget", "7"},
		[]string{"B2", "Gadget", "4"},
	)

	path := filepath.Join(t.TempDir(), "snapshot.xlsx")
	x, err := gateway.OpenXLSX(path)
	require.NoError(t, err)
	target := store.New(gateway.New(gateway.Static(x), nil), nil, nil)

	res, err := NewInteractor(env.Store).Execute(context.Background(), &Request{Target: target})
	require.NoError(t, err)
	assert.Equal(t, len(models.Sheets()), res.Sheets)
	assert.Equal(t, 2, res.Rows)
	require.NoError(t, x.Close())

	reopened, err := gateway.OpenXLSX(path)
	require.NoError(t, err)
	defer reopened.Close()

	titles, err := reopened.Worksheets(context.Background())
	require.NoError(t, err)
	assert.Len(t, titles, len(models.Sheets()))

	rows, err := reopened.Values(context.Background(), m_inventory.SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{m_inventory.Schema().Names(), {"A1", "Widget", "7"}, {"B2", "Gadget", "4"}}, rows)

	header, err := reopened.Header(context.Background(), m_production.SheetName)
	require.NoError(t, err)
	assert.Equal(t, m_production.Schema().Names(), header)
}

func TestExecute_SourceUnavailable(t *testing.T) {
	target := testutil.NewEnv(t)
	uc := NewInteractor(testutil.NewUnavailableStore(t))

	res, err := uc.Execute(context.Background(), &Request{Target: target.Store})
	assert.ErrorIs(t, err, gateway.ErrBackendUnavailable)
	assert.Zero(t, res.Sheets)
	assert.Empty(t, target.Memory.Rows(m_production.SheetName))
}

func TestExecute_RequiresTarget(t *testing.T) {
	env := testutil.NewEnv(t)
	_, err := NewInteractor(env.Store).Execute(context.Background(), &Request{})
	assert.Error(t, err)
}

