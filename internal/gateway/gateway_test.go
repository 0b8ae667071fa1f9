package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_SessionMemoizesSuccess(t *testing.T) {
	calls := 0
	mem := NewMemoryBackend()
	gw := New(func(context.Context) (Backend, error) {
		calls++
		return mem, nil
	}, nil)

	for i := 0; i < 3; i++ {
		b, err := gw.Session(context.Background())
		require.NoError(t, err)
		assert.Same(t, mem, b)
	}
	assert.Equal(t, 1, calls)
}

func TestGateway_SessionFailsClosedAndRetries(t *testing.T) {
	calls := 0
	mem := NewMemoryBackend()
	gw := New(func(context.Context) (Backend, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("invalid_grant")
		}
		return mem, nil
	}, nil)

	_, err := gw.Session(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	b, err := gw.Session(context.Background())
	require.NoError(t, err)
	assert.Same(t, mem, b)
	assert.Equal(t, 2, calls)
}

func TestGateway_NoConnector(t *testing.T) {
	_, err := New(nil, nil).Session(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestGateway_Worksheet(t *testing.T) {
	ctx := context.Background()

	t.Run("absent without columns is not found", func(t *testing.T) {
		gw := New(Static(NewMemoryBackend()), nil)
		_, err := gw.Worksheet(ctx, "item_codes", nil)
		assert.ErrorIs(t, err, ErrWorksheetNotFound)
	})

	t.Run("absent with columns is created with header", func(t *testing.T) {
		mem := NewMemoryBackend()
		gw := New(Static(mem), nil)

		ws, err := gw.Worksheet(ctx, "item_codes", []string{"item_code", "item_name"})
		require.NoError(t, err)
		assert.Equal(t, "item_codes", ws.Name())

		header, err := ws.Header(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"item_code", "item_name"}, header)
		assert.Equal(t, [][]string{{"item_code", "item_name"}}, mem.Rows("item_codes"))
	})

	t.Run("existing worksheet is returned untouched", func(t *testing.T) {
		mem := NewMemoryBackend()
		mem.Seed("item_codes", [][]string{{"item_code"}, {"A1"}})
		gw := New(Static(mem), nil)

		ws, err := gw.Worksheet(ctx, "item_codes", []string{"other"})
		require.NoError(t, err)
		values, err := ws.Values(ctx)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"item_code"}, {"A1"}}, values)
	})
}

func TestWorksheet_ClearAndAppend(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryBackend()
	mem.Seed("s", [][]string{{"a"}, {"1"}})
	gw := New(Static(mem), nil)

	ws, err := gw.Worksheet(ctx, "s", nil)
	require.NoError(t, err)

	require.NoError(t, ws.Clear(ctx))
	require.NoError(t, ws.Append(ctx, nil))
	require.NoError(t, ws.Append(ctx, [][]string{{"b"}, {"2"}}))

	assert.Equal(t, [][]string{{"b"}, {"2"}}, mem.Rows("s"))
}

type brokenBackend struct{ *MemoryBackend }

func (brokenBackend) Worksheets(context.Context) ([]string, error) {
	return nil, errors.New("503 backend error")
}

func TestGateway_BackendErrorsAreUnavailable(t *testing.T) {
	gw := New(Static(brokenBackend{NewMemoryBackend()}), nil)

	_, err := gw.Worksheet(context.Background(), "s", []string{"a"})
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	_, err = gw.Worksheets(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestA1(t *testing.T) {
	assert.Equal(t, "'production_data'", a1("production_data"))
	assert.Equal(t, "'it''s'", a1("it's"))
}

func TestToStrings(t *testing.T) {
	got := toStrings([][]interface{}{{"a", 1.5, nil}, {}})
	assert.Equal(t, [][]string{{"a", "1.5", ""}, {}}, got)
}
