package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/light-bringer/smt-console/internal/gateway"
)

// ErrInjected is returned by FlakyBackend for every injected failure.
var ErrInjected = errors.New("injected backend failure")

// Op names a Backend call that FlakyBackend can fail.
type Op string

const (
	OpWorksheets   Op = "worksheets"
	OpAddWorksheet Op = "add_worksheet"
	OpValues       Op = "values"
	OpHeader       Op = "header"
	OpClear        Op = "clear"
	OpAppend       Op = "append"
)

// FlakyBackend wraps a MemoryBackend and fails selected calls.
// A failure registered for sheet "" applies to every worksheet.
type FlakyBackend struct {
	*gateway.MemoryBackend

	mu    sync.Mutex
	fails map[Op]map[string]bool
	calls map[Op]int
}

// NewFlakyBackend wraps mem.
func NewFlakyBackend(mem *gateway.MemoryBackend) *FlakyBackend {
	return &FlakyBackend{
		MemoryBackend: mem,
		fails:         make(map[Op]map[string]bool),
		calls:         make(map[Op]int),
	}
}

// Fail makes op fail on sheet until Heal is called.
func (f *FlakyBackend) Fail(op Op, sheet string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fails[op] == nil {
		f.fails[op] = make(map[string]bool)
	}
	f.fails[op][sheet] = true
}

// Heal removes every injected failure.
func (f *FlakyBackend) Heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fails = make(map[Op]map[string]bool)
}

// Calls returns how often op was invoked.
func (f *FlakyBackend) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FlakyBackend) check(op Op, sheet string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if f.fails[op][""] || f.fails[op][sheet] {
		return ErrInjected
	}
	return nil
}

func (f *FlakyBackend) Worksheets(ctx context.Context) ([]string, error) {
	if err := f.check(OpWorksheets, ""); err != nil {
		return nil, err
	}
	return f.MemoryBackend.Worksheets(ctx)
}

func (f *FlakyBackend) AddWorksheet(ctx context.Context, name string, rows, cols int) error {
	if err := f.check(OpAddWorksheet, name); err != nil {
		return err
	}
	return f.MemoryBackend.AddWorksheet(ctx, name, rows, cols)
}

func (f *FlakyBackend) Values(ctx context.Context, name string) ([][]string, error) {
	if err := f.check(OpValues, name); err != nil {
		return nil, err
	}
	return f.MemoryBackend.Values(ctx, name)
}

func (f *FlakyBackend) Header(ctx context.Context, name string) ([]string, error) {
	if err := f.check(OpHeader, name); err != nil {
		return nil, err
	}
	return f.MemoryBackend.Header(ctx, name)
}

func (f *FlakyBackend) Clear(ctx context.Context, name string) error {
	if err := f.check(OpClear, name); err != nil {
		return err
	}
	return f.MemoryBackend.Clear(ctx, name)
}

func (f *FlakyBackend) Append(ctx context.Context, name string, rows [][]string) error {
	if err := f.check(OpAppend, name); err != nil {
		return err
	}
	return f.MemoryBackend.Append(ctx, name, rows)
}

// FailingConnector never yields a session.
func FailingConnector() gateway.Connector {
	return func(context.Context) (gateway.Backend, error) {
		return nil, ErrInjected
	}
}
