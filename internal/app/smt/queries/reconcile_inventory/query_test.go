package reconcile_inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smt-console/internal/app/smt/repo"
	"github.com/light-bringer/smt-console/internal/gateway"
	"github.com/light-bringer/smt-console/internal/models/m_inventory"
	"github.com/light-bringer/smt-console/internal/models/m_inventory_history"
	"github.com/light-bringer/smt-console/internal/testutil"
)

func TestExecute(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Seed(m_inventory.SheetName, m_inventory.Schema(),
		[]string{"A1", "Widget", "7"},
		[]string{"B2", "Gadget", "oops"},
	)
	env.Seed(m_inventory_history.SheetName, m_inventory_history.Schema(),
		[]string{"2024-05-01", "A1", "입고", "10", "", "alice", ""},
		[]string{"2024-05-01", "A1", "출고", "-3", "", "bob", ""},
		[]string{"2024-05-01", "B2", "입고", "1", "", "bob", ""},
	)

	got, err := NewQuery(repo.NewInventoryRepository(env.Store)).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got.ItemsChecked)
	require.Len(t, got.Divergences, 1)
	assert.Equal(t, "B2", got.Divergences[0].ItemCode)
	assert.Equal(t, int64(0), got.Divergences[0].StateStock)
	assert.Equal(t, int64(1), got.Divergences[0].HistorySum)
}

func TestExecute_Unavailable(t *testing.T) {
	_, err := NewQuery(repo.NewInventoryRepository(testutil.NewUnavailableStore(t))).Execute(context.Background())
	assert.ErrorIs(t, err, gateway.ErrBackendUnavailable)
}
