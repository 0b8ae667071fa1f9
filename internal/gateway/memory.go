package gateway

import (
	"context"
	"fmt"
	"sync"
)

// MemoryBackend keeps worksheets in process memory. It backs tests and the
// "memory" backend mode.
type MemoryBackend struct {
	mu     sync.RWMutex
	order  []string
	sheets map[string][][]string
}

// NewMemoryBackend creates an empty workbook.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{sheets: make(map[string][][]string)}
}

// Seed replaces a worksheet's content, creating it if needed.
func (m *MemoryBackend) Seed(name string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[name]; !ok {
		m.order = append(m.order, name)
	}
	m.sheets[name] = copyRows(rows)
}

// Rows returns a copy of a worksheet's content, header included.
func (m *MemoryBackend) Rows(name string) [][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyRows(m.sheets[name])
}

func (m *MemoryBackend) Worksheets(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out, nil
}

func (m *MemoryBackend) AddWorksheet(_ context.Context, name string, _, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[name]; ok {
		return fmt.Errorf("worksheet %q already exists", name)
	}
	m.order = append(m.order, name)
	m.sheets[name] = [][]string{}
	return nil
}

func (m *MemoryBackend) Values(_ context.Context, name string) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows, ok := m.sheets[name]
	if !ok {
		return nil, fmt.Errorf("worksheet %q does not exist", name)
	}
	return copyRows(rows), nil
}

func (m *MemoryBackend) Header(_ context.Context, name string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows, ok := m.sheets[name]
	if !ok {
		return nil, fmt.Errorf("worksheet %q does not exist", name)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return append([]string(nil), rows[0]...), nil
}

func (m *MemoryBackend) Clear(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[name]; !ok {
		return fmt.Errorf("worksheet %q does not exist", name)
	}
	m.sheets[name] = [][]string{}
	return nil
}

func (m *MemoryBackend) Append(_ context.Context, name string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.sheets[name]
	if !ok {
		return fmt.Errorf("worksheet %q does not exist", name)
	}
	m.sheets[name] = append(existing, copyRows(rows)...)
	return nil
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}
