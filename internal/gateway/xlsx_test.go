package gateway

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXLSXBackend_Lifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "smt.xlsx")

	x, err := OpenXLSX(path)
	require.NoError(t, err)

	sheets, err := x.Worksheets(ctx)
	require.NoError(t, err)
	assert.Empty(t, sheets, "placeholder sheet of a new file is hidden")

	require.NoError(t, x.AddWorksheet(ctx, "inventory_data", DefaultRows, MinColumns))
	assert.Error(t, x.AddWorksheet(ctx, "inventory_data", DefaultRows, MinColumns))

	require.NoError(t, x.Append(ctx, "inventory_data", [][]string{
		{"item_code", "item_name", "current_stock"},
		{"0012", "Nozzle", "7"},
	}))

	header, err := x.Header(ctx, "inventory_data")
	require.NoError(t, err)
	assert.Equal(t, []string{"item_code", "item_name", "current_stock"}, header)
	require.NoError(t, x.Close())

	reopened, err := OpenXLSX(path)
	require.NoError(t, err)
	defer reopened.Close()

	sheets, err = reopened.Worksheets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory_data"}, sheets)

	values, err := reopened.Values(ctx, "inventory_data")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"item_code", "item_name", "current_stock"},
		{"0012", "Nozzle", "7"},
	}, values)

	require.NoError(t, reopened.Clear(ctx, "inventory_data"))
	values, err = reopened.Values(ctx, "inventory_data")
	require.NoError(t, err)
	assert.Empty(t, values)

	header, err = reopened.Header(ctx, "inventory_data")
	require.NoError(t, err)
	assert.Nil(t, header)
}

func TestXLSXBackend_MissingWorksheet(t *testing.T) {
	x, err := OpenXLSX(filepath.Join(t.TempDir(), "empty.xlsx"))
	require.NoError(t, err)
	defer x.Close()

	_, err = x.Values(context.Background(), "nope")
	assert.Error(t, err)
}

func TestXLSXBackend_ThroughGateway(t *testing.T) {
	ctx := context.Background()
	gw := New(NewXLSXConnector(filepath.Join(t.TempDir(), "gw.xlsx")), nil)

	ws, err := gw.Worksheet(ctx, "equipment_list", []string{"id", "name", "function"})
	require.NoError(t, err)
	require.NoError(t, ws.Append(ctx, [][]string{{"E1", "Mounter", "placement"}}))

	values, err := ws.Values(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "name", "function"}, {"E1", "Mounter", "placement"}}, values)
}
