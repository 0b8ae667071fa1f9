package testutil

import (
	"testing"

	"github.com/light-bringer/smt-console/internal/gateway"
	"github.com/light-bringer/smt-console/internal/pkg/cache"
	"github.com/light-bringer/smt-console/internal/pkg/table"
	"github.com/light-bringer/smt-console/internal/store"
)

// Env is an in-memory workbook with a store in front of it.
type Env struct {
	Memory  *gateway.MemoryBackend
	Backend *FlakyBackend
	Gateway *gateway.Gateway
	Cache   *cache.Cache
	Store   *store.Store
}

// NewEnv creates a fresh workbook, a fresh cache with the default TTL and a store.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	mem := gateway.NewMemoryBackend()
	flaky := NewFlakyBackend(mem)
	gw := gateway.New(gateway.Static(flaky), nil)
	c := cache.New(cache.DefaultTTL)
	return &Env{
		Memory:  mem,
		Backend: flaky,
		Gateway: gw,
		Cache:   c,
		Store:   store.New(gw, c, nil),
	}
}

// NewUnavailableStore creates a store whose backend never connects.
func NewUnavailableStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(gateway.New(FailingConnector(), nil), cache.New(cache.DefaultTTL), nil)
}

// Seed writes a worksheet with the schema header followed by rows.
func (e *Env) Seed(name string, schema table.Schema, rows ...[]string) {
	values := append([][]string{schema.Names()}, rows...)
	e.Memory.Seed(name, values)
	e.Store.Invalidate()
}

// Data returns a worksheet's rows without the header.
func (e *Env) Data(name string) [][]string {
	rows := e.Memory.Rows(name)
	if len(rows) == 0 {
		return rows
	}
	return rows[1:]
}
