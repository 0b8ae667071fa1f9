package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// XLSXBackend stores the workbook in a local .xlsx file. Every mutation is
// saved to disk before returning.
type XLSXBackend struct {
	mu   sync.Mutex
	path string
	file *excelize.File
	// placeholder is the default sheet of a freshly created file; it is
	// removed once a real worksheet exists.
	placeholder string
}

// OpenXLSX opens path, creating a new workbook when the file does not exist.
func OpenXLSX(path string) (*XLSXBackend, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
		}
		return &XLSXBackend{path: path, file: f}, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat workbook %s: %w", path, err)
	}

	f := excelize.NewFile()
	return &XLSXBackend{path: path, file: f, placeholder: f.GetSheetName(0)}, nil
}

// NewXLSXConnector returns a Connector opening path.
func NewXLSXConnector(path string) Connector {
	return func(context.Context) (Backend, error) {
		return OpenXLSX(path)
	}
}

// Close releases the underlying file.
func (x *XLSXBackend) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.file.Close()
}

func (x *XLSXBackend) Worksheets(_ context.Context) ([]string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	var out []string
	for _, name := range x.file.GetSheetList() {
		if name != x.placeholder {
			out = append(out, name)
		}
	}
	return out, nil
}

func (x *XLSXBackend) AddWorksheet(_ context.Context, name string, _, _ int) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if idx, err := x.file.GetSheetIndex(name); err == nil && idx >= 0 {
		return fmt.Errorf("worksheet %q already exists", name)
	}
	if _, err := x.file.NewSheet(name); err != nil {
		return err
	}
	if x.placeholder != "" {
		if err := x.file.DeleteSheet(x.placeholder); err != nil {
			return err
		}
		x.placeholder = ""
	}
	return x.save()
}

func (x *XLSXBackend) Values(_ context.Context, name string) ([][]string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.file.GetRows(name)
}

func (x *XLSXBackend) Header(_ context.Context, name string) ([]string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	rows, err := x.file.GetRows(name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (x *XLSXBackend) Clear(_ context.Context, name string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	rows, err := x.file.GetRows(name)
	if err != nil {
		return err
	}
	for i := len(rows); i >= 1; i-- {
		if err := x.file.RemoveRow(name, i); err != nil {
			return err
		}
	}
	return x.save()
}

func (x *XLSXBackend) Append(_ context.Context, name string, rows [][]string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	existing, err := x.file.GetRows(name)
	if err != nil {
		return err
	}
	next := len(existing) + 1
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, next+i)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(r))
		for j, c := range r {
			values[j] = c
		}
		if err := x.file.SetSheetRow(name, cell, &values); err != nil {
			return err
		}
	}
	return x.save()
}

func (x *XLSXBackend) save() error {
	if err := x.file.SaveAs(x.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", x.path, err)
	}
	return nil
}
