// Package gateway holds the connection to the spreadsheet that is the system
// of record and hands out worksheet handles by logical name.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrBackendUnavailable covers credential, network and workbook-open failures.
	ErrBackendUnavailable = errors.New("spreadsheet backend unavailable")
	// ErrWorksheetNotFound is returned when a worksheet is absent and no header was supplied to create it.
	ErrWorksheetNotFound = errors.New("worksheet not found")
)

const (
	// DefaultRows is the row capacity of newly created worksheets.
	DefaultRows = 1000
	// MinColumns is the minimum column capacity of newly created worksheets.
	MinColumns = 20
)

// Connector opens a backend session.
type Connector func(ctx context.Context) (Backend, error)

// Static returns a connector that always yields b.
func Static(b Backend) Connector {
	return func(context.Context) (Backend, error) {
		return b, nil
	}
}

// Gateway memoizes the first successful session. A failed connect is not
// memoized, so the next call tries again.
type Gateway struct {
	connect Connector
	logger  *zap.Logger

	mu      sync.Mutex
	backend Backend
}

// New creates a Gateway. A nil logger disables logging.
func New(connect Connector, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{connect: connect, logger: logger}
}

// Session returns the memoized backend, connecting on first use.
func (g *Gateway) Session(ctx context.Context) (Backend, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.backend != nil {
		return g.backend, nil
	}
	if g.connect == nil {
		return nil, fmt.Errorf("%w: no connector configured", ErrBackendUnavailable)
	}

	b, err := g.connect(ctx)
	if err != nil {
		g.logger.Warn("spreadsheet connect failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: connector returned no session", ErrBackendUnavailable)
	}

	g.backend = b
	g.logger.Debug("spreadsheet session established")
	return b, nil
}

// Worksheet returns a handle to the named worksheet. When the worksheet is
// absent and createCols is non-empty, it is created with createCols as its
// header row; otherwise ErrWorksheetNotFound is returned.
func (g *Gateway) Worksheet(ctx context.Context, name string, createCols []string) (*Worksheet, error) {
	b, err := g.Session(ctx)
	if err != nil {
		return nil, err
	}

	titles, err := b.Worksheets(ctx)
	if err != nil {
		return nil, unavailable("list worksheets", err)
	}
	for _, title := range titles {
		if title == name {
			return &Worksheet{name: name, backend: b}, nil
		}
	}

	if len(createCols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrWorksheetNotFound, name)
	}

	cols := len(createCols)
	if cols < MinColumns {
		cols = MinColumns
	}
	if err := b.AddWorksheet(ctx, name, DefaultRows, cols); err != nil {
		return nil, unavailable("create worksheet "+name, err)
	}
	header := make([]string, len(createCols))
	copy(header, createCols)
	if err := b.Append(ctx, name, [][]string{header}); err != nil {
		return nil, unavailable("write header of "+name, err)
	}

	g.logger.Info("worksheet created", zap.String("worksheet", name), zap.Strings("columns", createCols))
	return &Worksheet{name: name, backend: b}, nil
}

// Worksheets lists the workbook's worksheet titles.
func (g *Gateway) Worksheets(ctx context.Context) ([]string, error) {
	b, err := g.Session(ctx)
	if err != nil {
		return nil, err
	}
	titles, err := b.Worksheets(ctx)
	if err != nil {
		return nil, unavailable("list worksheets", err)
	}
	return titles, nil
}

// Worksheet is a handle to one worksheet of the session's workbook.
type Worksheet struct {
	name    string
	backend Backend
}

// Name returns the worksheet title.
func (w *Worksheet) Name() string {
	return w.name
}

// Values reads every cell of the worksheet.
func (w *Worksheet) Values(ctx context.Context) ([][]string, error) {
	v, err := w.backend.Values(ctx, w.name)
	if err != nil {
		return nil, unavailable("read "+w.name, err)
	}
	return v, nil
}

// Header reads the first row.
func (w *Worksheet) Header(ctx context.Context) ([]string, error) {
	h, err := w.backend.Header(ctx, w.name)
	if err != nil {
		return nil, unavailable("read header of "+w.name, err)
	}
	return h, nil
}

// Clear empties the worksheet.
func (w *Worksheet) Clear(ctx context.Context) error {
	if err := w.backend.Clear(ctx, w.name); err != nil {
		return unavailable("clear "+w.name, err)
	}
	return nil
}

// Append writes rows after the last used row.
func (w *Worksheet) Append(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	if err := w.backend.Append(ctx, w.name, rows); err != nil {
		return unavailable("append to "+w.name, err)
	}
	return nil
}

func unavailable(op string, err error) error {
	if errors.Is(err, ErrBackendUnavailable) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return fmt.Errorf("failed to %s: %w: %w", op, ErrBackendUnavailable, err)
}
