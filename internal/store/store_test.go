package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/light-bringer/smt-console/internal/gateway"
	"github.com/light-bringer/smt-console/internal/pkg/cache"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

var inventorySchema = table.Schema{
	{Name: "item_code"},
	{Name: "item_name"},
	{Name: "current_stock", Kind: table.Integer},
}

func newStore(t *testing.T) (*Store, *gateway.MemoryBackend) {
	t.Helper()
	mem := gateway.NewMemoryBackend()
	return New(gateway.New(gateway.Static(mem), nil), cache.New(time.Minute), nil), mem
}

func TestLoad_EmptyBackend(t *testing.T) {
	s, _ := newStore(t)

	tbl, err := s.Load(context.Background(), "inventory_data", inventorySchema)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, []string{"item_code", "item_name", "current_stock"}, tbl.Columns)
}

func TestLoad_SchemaDriftIsHealed(t *testing.T) {
	s, mem := newStore(t)
	mem.Seed("inventory_data", [][]string{
		{"item_code", "legacy"},
		{"A1", "x"},
	})

	tbl, err := s.Load(context.Background(), "inventory_data", inventorySchema)
	require.NoError(t, err)

	assert.Equal(t, []string{"item_code", "legacy", "item_name", "current_stock"}, tbl.Columns)
	assert.Equal(t, table.Row{"item_code": "A1", "legacy": "x", "item_name": "", "current_stock": ""}, tbl.Rows[0])
}

func TestLoad_BackendUnavailable(t *testing.T) {
	gw := gateway.New(func(context.Context) (gateway.Backend, error) {
		return nil, errors.New("no credentials")
	}, nil)
	s := New(gw, cache.New(time.Minute), nil)

	tbl, err := s.Load(context.Background(), "inventory_data", inventorySchema)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrBackendUnavailable)
	assert.Equal(t, table.Empty(inventorySchema), tbl)
}

func TestFromValues(t *testing.T) {
	t.Run("drops empty rows and unnamed empty columns", func(t *testing.T) {
		tbl := FromValues([][]string{
			{"", "", ""},
			{"a", "", "b"},
			{"1", "", "2"},
			{"", " ", ""},
			{"3"},
		})
		assert.Equal(t, []string{"a", "b"}, tbl.Columns)
		assert.Equal(t, []table.Row{
			{"a": "1", "b": "2"},
			{"a": "3", "b": ""},
		}, tbl.Rows)
	})

	t.Run("names data beyond the header", func(t *testing.T) {
		tbl := FromValues([][]string{{"a"}, {"1", "overflow"}})
		assert.Equal(t, []string{"a", "column_2"}, tbl.Columns)
		assert.Equal(t, "overflow", tbl.Get(0, "column_2"))
	})

	t.Run("duplicate headers get suffixes", func(t *testing.T) {
		tbl := FromValues([][]string{{"a", "a"}, {"1", "2"}})
		assert.Equal(t, []string{"a", "a.1"}, tbl.Columns)
	})

	t.Run("suffix skips names taken later in the header", func(t *testing.T) {
		tbl := FromValues([][]string{{"a", "a", "a.1"}, {"1", "2", "3"}})
		assert.Equal(t, []string{"a", "a.2", "a.1"}, tbl.Columns)
		assert.Equal(t, table.Row{"a": "1", "a.2": "2", "a.1": "3"}, tbl.Rows[0])
	})

	t.Run("generated name skips a real header", func(t *testing.T) {
		tbl := FromValues([][]string{{"column_2", ""}, {"1", "2"}})
		assert.Equal(t, []string{"column_2", "column_2.1"}, tbl.Columns)
		assert.Equal(t, table.Row{"column_2": "1", "column_2.1": "2"}, tbl.Rows[0])
	})

	t.Run("header is trimmed and NFC folded", func(t *testing.T) {
		decomposed := norm.NFD.String("방향")
		tbl := FromValues([][]string{{" " + decomposed + " "}, {"입고"}})
		assert.Equal(t, []string{"방향"}, tbl.Columns)
	})

	t.Run("nothing at all", func(t *testing.T) {
		tbl := FromValues(nil)
		assert.Empty(t, tbl.Columns)
		assert.Equal(t, 0, tbl.Len())
	})
}

func TestSaveReplace_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t)

	tbl := table.Empty(inventorySchema)
	tbl.AppendRow(table.Row{"item_code": "A1", "item_name": "Widget", "current_stock": "7"})
	tbl.AppendRow(table.Row{"item_code": "B2", "item_name": "", "current_stock": "-5"})

	require.NoError(t, s.SaveReplace(ctx, tbl, "inventory_data"))
	assert.Equal(t, [][]string{
		{"item_code", "item_name", "current_stock"},
		{"A1", "Widget", "7"},
		{"B2", "", "-5"},
	}, mem.Rows("inventory_data"))

	loaded, err := s.Load(ctx, "inventory_data", inventorySchema)
	require.NoError(t, err)
	assert.Equal(t, tbl, loaded)
}

func TestSaveReplace_OverwritesPreviousContent(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t)
	mem.Seed("inventory_data", [][]string{{"item_code"}, {"OLD1"}, {"OLD2"}})

	tbl := table.New("item_code")
	tbl.AppendRow(table.Row{"item_code": "NEW"})
	require.NoError(t, s.SaveReplace(ctx, tbl, "inventory_data"))

	assert.Equal(t, [][]string{{"item_code"}, {"NEW"}}, mem.Rows("inventory_data"))
}

func TestSaveReplace_NilTable(t *testing.T) {
	s, _ := newStore(t)
	assert.Error(t, s.SaveReplace(context.Background(), nil, "x"))
}

func TestAppendOne_FollowsWorksheetHeader(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t)
	mem.Seed("item_codes", [][]string{{"item_name", "item_code"}})

	rec := table.Record{
		{Name: "item_code", Value: "A1"},
		{Name: "ignored", Value: "x"},
		{Name: "item_name", Value: "Widget"},
	}
	require.NoError(t, s.AppendOne(ctx, rec, "item_codes"))

	assert.Equal(t, [][]string{{"item_name", "item_code"}, {"Widget", "A1"}}, mem.Rows("item_codes"))
}

func TestAppendOne_HeaderlessWorksheetUsesRecordOrder(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t)
	mem.Seed("notes", nil)

	rec := table.Record{{Name: "b", Value: 2}, {Name: "a", Value: nil}}
	require.NoError(t, s.AppendOne(ctx, rec, "notes"))

	assert.Equal(t, [][]string{{"b", "a"}, {"2", ""}}, mem.Rows("notes"))
}

func TestAppendOne_CreatesMissingWorksheet(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t)

	require.NoError(t, s.AppendOne(ctx, table.Record{{Name: "x", Value: "1"}}, "fresh"))
	assert.Equal(t, [][]string{{"x"}, {"1"}}, mem.Rows("fresh"))
}

func TestAppendMany(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t)
	schema := table.Schema{{Name: "date"}, {Name: "value"}}

	require.NoError(t, s.AppendMany(ctx, nil, "results", schema))
	assert.Empty(t, mem.Rows("results"), "no rows means no worksheet")

	recs := []table.Record{
		{{Name: "value", Value: "1"}, {Name: "date", Value: "2024-01-01"}},
		{{Name: "date", Value: "2024-01-02"}},
	}
	require.NoError(t, s.AppendMany(ctx, recs, "results", schema))
	assert.Equal(t, [][]string{
		{"date", "value"},
		{"2024-01-01", "1"},
		{"2024-01-02", ""},
	}, mem.Rows("results"))
}

func TestCacheIsInvalidatedByMutations(t *testing.T) {
	ctx := context.Background()
	schema := table.Schema{{Name: "item_code"}, {Name: "item_name"}}

	mutations := map[string]func(s *Store) error{
		"append one": func(s *Store) error {
			return s.AppendOne(ctx, table.Record{{Name: "item_code", Value: "B2"}}, "items")
		},
		"append many": func(s *Store) error {
			return s.AppendMany(ctx, []table.Record{{{Name: "item_code", Value: "B2"}}}, "items", schema)
		},
		"save replace": func(s *Store) error {
			t := table.Empty(schema)
			t.AppendRow(table.Row{"item_code": "A1"})
			t.AppendRow(table.Row{"item_code": "B2"})
			return s.SaveReplace(ctx, t, "items")
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s, mem := newStore(t)
			mem.Seed("items", [][]string{{"item_code", "item_name"}, {"A1", "Widget"}})

			first, err := s.Load(ctx, "items", schema)
			require.NoError(t, err)
			require.Equal(t, 1, first.Len())

			require.NoError(t, mutate(s))

			second, err := s.Load(ctx, "items", schema)
			require.NoError(t, err)
			assert.Equal(t, 2, second.Len())
			assert.Equal(t, "B2", second.Get(1, "item_code"))
		})
	}
}

func TestLoad_ServesFromCacheWithinTTL(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t)
	mem.Seed("items", [][]string{{"item_code"}, {"A1"}})

	_, err := s.Load(ctx, "items", nil)
	require.NoError(t, err)

	// A write that bypasses the store is not seen until the entry expires.
	mem.Seed("items", [][]string{{"item_code"}, {"A1"}, {"B2"}})
	cached, err := s.Load(ctx, "items", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Len())

	s.Invalidate()
	fresh, err := s.Load(ctx, "items", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Len())
}

func TestEnsureAndWorksheets(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	require.NoError(t, s.Ensure(ctx, "inventory_data", inventorySchema))
	require.NoError(t, s.Ensure(ctx, "inventory_data", inventorySchema))

	names, err := s.Worksheets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory_data"}, names)
}

// gatedBackend parks the first armed Values call until release is closed.
type gatedBackend struct {
	*gateway.MemoryBackend

	once    sync.Once
	armed   bool
	entered chan struct{}
	release chan struct{}
}

func (g *gatedBackend) Values(ctx context.Context, name string) ([][]string, error) {
	values, err := g.MemoryBackend.Values(ctx, name)
	if g.armed {
		g.once.Do(func() {
			close(g.entered)
			<-g.release
		})
	}
	return values, err
}

func TestLoad_ReadOverlappingMutationIsNotCached(t *testing.T) {
	ctx := context.Background()
	schema := table.Schema{{Name: "item_code"}}

	gated := &gatedBackend{
		MemoryBackend: gateway.NewMemoryBackend(),
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
	gated.Seed("items", [][]string{{"item_code"}, {"A"}})
	gated.armed = true
	s := New(gateway.New(gateway.Static(gated), nil), cache.New(time.Minute), nil)

	type result struct {
		tbl *table.Table
		err error
	}
	done := make(chan result, 1)
	go func() {
		tbl, err := s.Load(ctx, "items", schema)
		done <- result{tbl, err}
	}()

	<-gated.entered
	require.NoError(t, s.AppendOne(ctx, table.Record{{Name: "item_code", Value: "B"}}, "items"))
	close(gated.release)

	stale := <-done
	require.NoError(t, stale.err)
	assert.Equal(t, 1, stale.tbl.Len(), "the parked read saw the sheet before the append")

	next, err := s.Load(ctx, "items", schema)
	require.NoError(t, err)
	require.Equal(t, 2, next.Len())
	assert.Equal(t, "B", next.Get(1, "item_code"))
}

func TestLoadFresh_SkipsCache(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t)
	mem.Seed("items", [][]string{{"item_code"}, {"A1"}})

	_, err := s.Load(ctx, "items", nil)
	require.NoError(t, err)

	mem.Seed("items", [][]string{{"item_code"}, {"A1"}, {"B2"}})
	fresh, err := s.LoadFresh(ctx, "items", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Len())

	cached, err := s.Load(ctx, "items", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len(), "a fresh read refreshes the cache")
}
