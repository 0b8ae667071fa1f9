// Package store translates between worksheet contents and schema-conformant
// tables, with a read cache in front of the gateway.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/light-bringer/smt-console/internal/gateway"
	"github.com/light-bringer/smt-console/internal/pkg/cache"
	"github.com/light-bringer/smt-console/internal/pkg/coerce"
	"github.com/light-bringer/smt-console/internal/pkg/table"
)

// Store is the typed table store.
type Store struct {
	gw     *gateway.Gateway
	cache  *cache.Cache
	logger *zap.Logger
}

// New creates a Store. A nil cache disables caching; a nil logger disables logging.
func New(gw *gateway.Gateway, c *cache.Cache, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{gw: gw, cache: c, logger: logger}
}

// Load reads a worksheet. All-empty rows and unnamed all-empty columns are
// dropped, short rows are padded with "", and every schema column is
// materialized. A missing worksheet reads as an empty table. On any other
// failure the empty table of the schema is returned together with the error.
func (s *Store) Load(ctx context.Context, name string, schema table.Schema) (*table.Table, error) {
	if t, ok := s.cache.Get(name, schema); ok {
		return t, nil
	}
	return s.read(ctx, name, schema)
}

// LoadFresh is Load without the cache lookup, for read-modify-write paths.
// The result still refreshes the cache.
func (s *Store) LoadFresh(ctx context.Context, name string, schema table.Schema) (*table.Table, error) {
	return s.read(ctx, name, schema)
}

// read fetches the worksheet from the backend. The cache generation is taken
// first, so a mutation that lands while the read is in flight keeps the
// stale result out of the cache.
func (s *Store) read(ctx context.Context, name string, schema table.Schema) (*table.Table, error) {
	gen := s.cache.Generation()

	ws, err := s.gw.Worksheet(ctx, name, nil)
	if errors.Is(err, gateway.ErrWorksheetNotFound) {
		t := table.Empty(schema)
		s.cache.PutAt(gen, name, schema, t)
		return t, nil
	}
	if err != nil {
		return table.Empty(schema), fmt.Errorf("failed to load %s: %w", name, err)
	}

	values, err := ws.Values(ctx)
	if err != nil {
		return table.Empty(schema), fmt.Errorf("failed to load %s: %w", name, err)
	}

	t := FromValues(values)
	t.EnsureColumns(schema.Names()...)
	if !s.cache.PutAt(gen, name, schema, t) {
		s.logger.Debug("stale read not cached", zap.String("worksheet", name))
	}
	return t, nil
}

// SaveReplace clears the worksheet and rewrites header and rows. The clear and
// the write are two backend calls; a failure between them leaves the worksheet
// empty until the next successful replace.
func (s *Store) SaveReplace(ctx context.Context, t *table.Table, name string) error {
	if t == nil {
		return errors.New("table is nil")
	}

	ws, err := s.gw.Worksheet(ctx, name, t.Columns)
	if err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	defer s.Invalidate()

	if err := ws.Clear(ctx); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	rows := make([][]string, 0, t.Len()+1)
	rows = append(rows, append([]string(nil), t.Columns...))
	rows = append(rows, t.Values()...)
	if err := ws.Append(ctx, rows); err != nil {
		s.logger.Error("worksheet left cleared after failed rewrite", zap.String("worksheet", name), zap.Error(err))
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	s.logger.Debug("worksheet replaced", zap.String("worksheet", name), zap.Int("rows", t.Len()))
	return nil
}

// AppendOne appends one row ordered by the worksheet's current header. Fields
// missing from the record become "", fields absent from the header are not
// written. When the worksheet has no header yet the record's own field order
// is written as the header first.
func (s *Store) AppendOne(ctx context.Context, record table.Record, name string) error {
	ws, err := s.gw.Worksheet(ctx, name, record.Names())
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}

	header, err := ws.Header(ctx)
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	header = normalizeHeader(header)

	var rows [][]string
	if isBlankRow(header) {
		header = record.Names()
		rows = append(rows, header)
	}
	rows = append(rows, record.Ordered(header))

	defer s.Invalidate()
	if err := ws.Append(ctx, rows); err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	return nil
}

// AppendMany creates the worksheet with the schema header if needed and
// appends all records in one call, each ordered by the schema.
func (s *Store) AppendMany(ctx context.Context, records []table.Record, name string, schema table.Schema) error {
	if len(records) == 0 {
		return nil
	}

	ws, err := s.gw.Worksheet(ctx, name, schema.Names())
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}

	cols := schema.Names()
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Ordered(cols)
	}

	defer s.Invalidate()
	if err := ws.Append(ctx, rows); err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	return nil
}

// Ensure creates the worksheet with the schema header when absent.
func (s *Store) Ensure(ctx context.Context, name string, schema table.Schema) error {
	if _, err := s.gw.Worksheet(ctx, name, schema.Names()); err != nil {
		return fmt.Errorf("failed to ensure %s: %w", name, err)
	}
	s.Invalidate()
	return nil
}

// Worksheets lists the workbook's worksheets.
func (s *Store) Worksheets(ctx context.Context) ([]string, error) {
	return s.gw.Worksheets(ctx)
}

// Invalidate drops every cached table.
func (s *Store) Invalidate() {
	s.cache.Clear()
}

// FromValues builds a table from raw worksheet values, treating the first row
// as the header.
func FromValues(values [][]string) *table.Table {
	var rows [][]string
	for _, r := range values {
		if !isBlankRow(r) {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return table.New()
	}

	header := normalizeHeader(rows[0])
	data := rows[1:]

	width := len(header)
	for _, r := range data {
		if len(r) > width {
			width = len(r)
		}
	}

	// A generated name must not collide with a name already taken or with
	// a header that appears later in the row.
	raw := make(map[string]bool, len(header))
	for _, h := range header {
		if h != "" {
			raw[h] = true
		}
	}
	seen := make(map[string]bool, width)
	next := make(map[string]int)

	var keep []int
	var columns []string
	for j := 0; j < width; j++ {
		name := ""
		if j < len(header) {
			name = header[j]
		}
		generated := false
		if name == "" {
			if columnBlank(data, j) {
				continue
			}
			name = fmt.Sprintf("column_%d", j+1)
			generated = true
		}
		if seen[name] || (generated && raw[name]) {
			base := name
			for {
				next[base]++
				name = fmt.Sprintf("%s.%d", base, next[base])
				if !seen[name] && !raw[name] {
					break
				}
			}
		}
		seen[name] = true
		keep = append(keep, j)
		columns = append(columns, name)
	}

	t := table.New(columns...)
	for _, r := range data {
		row := make(table.Row, len(columns))
		for k, j := range keep {
			if j < len(r) {
				row[columns[k]] = r[j]
			} else {
				row[columns[k]] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// normalizeHeader trims header cells and folds them to NFC, so names typed
// on systems that store decomposed Hangul still match the declared schema.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = norm.NFC.String(strings.TrimSpace(h))
	}
	return out
}

func isBlankRow(r []string) bool {
	for _, c := range r {
		if !coerce.IsBlank(c) {
			return false
		}
	}
	return true
}

func columnBlank(rows [][]string, j int) bool {
	for _, r := range rows {
		if j < len(r) && !coerce.IsBlank(r[j]) {
			return false
		}
	}
	return true
}
