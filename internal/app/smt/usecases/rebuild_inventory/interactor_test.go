package rebuild_inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smt-console/internal/app/smt/repo"
	"github.com/light-bringer/smt-console/internal/models/m_inventory"
	"github.com/light-bringer/smt-console/internal/models/m_inventory_history"
	"github.com/light-bringer/smt-console/internal/testutil"
)

func TestExecute_RewritesStateFromLedger(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Seed(m_inventory.SheetName, m_inventory.Schema(),
		[]string{"A1", "Widget", "9"},
		[]string{"B2", "Gadget", "4"},
	)
	env.Seed(m_inventory_history.SheetName, m_inventory_history.Schema(),
		[]string{"2024-05-01", "A1", "입고", "10", "", "alice", "2024-05-01 08:00:00.000000"},
		[]string{"2024-05-01", "A1", "출고", "-3", "", "bob", "2024-05-01 09:00:00.000000"},
		[]string{"2024-05-01", "B2", "입고", "4", "", "bob", "2024-05-01 09:00:00.000000"},
		[]string{"2024-05-01", "C3", "입고", "2", "", "bob", "2024-05-01 09:00:00.000000"},
	)
	uc := NewInteractor(repo.NewInventoryRepository(env.Store))

	res, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Before.Divergences, 2)
	assert.Equal(t, 3, res.Items)

	assert.Equal(t, [][]string{
		{"A1", "Widget", "7"},
		{"B2", "Gadget", "4"},
		{"C3", "", "2"},
	}, env.Data(m_inventory.SheetName))

	again, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, again.Before.Consistent())
}

func TestExecute_ConsistentWritesNothing(t *testing.T) {
	env := testutil.NewEnv(t)
	uc := NewInteractor(repo.NewInventoryRepository(env.Store))

	res, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Before.Consistent())
	assert.Zero(t, env.Backend.Calls(testutil.OpClear))
}

func TestExecute_ReadsStateBehindTheCache(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	env.Seed(m_inventory_history.SheetName, m_inventory_history.Schema(),
		[]string{"2024-05-01", "A1", "입고", "3", "", "alice", ""},
	)
	env.Seed(m_inventory.SheetName, m_inventory.Schema(), []string{"A1", "Widget", "3"})
	_, err := env.Store.Load(ctx, m_inventory.SheetName, m_inventory.Schema())
	require.NoError(t, err)

	// The cached read says consistent; the worksheet no longer is.
	env.Memory.Seed(m_inventory.SheetName, [][]string{m_inventory.Schema().Names(), {"A1", "Widget", "8"}})

	res, err := NewInteractor(repo.NewInventoryRepository(env.Store)).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, res.Before.Divergences, 1)
	assert.Equal(t, [][]string{{"A1", "Widget", "3"}}, env.Data(m_inventory.SheetName))
}
