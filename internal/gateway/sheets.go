package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// SheetsConfig identifies the Google Sheets workbook.
type SheetsConfig struct {
	// WorkbookName is resolved to a spreadsheet ID through Drive when SpreadsheetID is empty.
	WorkbookName  string
	SpreadsheetID string
	// Credentials is a service-account JSON key.
	Credentials []byte
}

// SheetsBackend implements Backend on the Google Sheets v4 API.
type SheetsBackend struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewSheetsConnector returns a Connector opening a SheetsBackend.
func NewSheetsConnector(cfg SheetsConfig, opts ...option.ClientOption) Connector {
	return func(ctx context.Context) (Backend, error) {
		return NewSheetsBackend(ctx, cfg, opts...)
	}
}

// NewSheetsBackend authenticates and resolves the workbook. Extra client
// options are appended after the credential options.
func NewSheetsBackend(ctx context.Context, cfg SheetsConfig, opts ...option.ClientOption) (*SheetsBackend, error) {
	if len(cfg.Credentials) == 0 && len(opts) == 0 {
		return nil, errors.New("service account credentials are required")
	}

	clientOpts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsScope, drive.DriveReadonlyScope),
	}
	if len(cfg.Credentials) > 0 {
		clientOpts = append(clientOpts, option.WithCredentialsJSON(cfg.Credentials))
	}
	clientOpts = append(clientOpts, opts...)

	srv, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	id := cfg.SpreadsheetID
	if id == "" {
		if cfg.WorkbookName == "" {
			return nil, errors.New("workbook name or spreadsheet id is required")
		}
		drv, err := drive.NewService(ctx, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create drive client: %w", err)
		}
		id, err = findSpreadsheet(ctx, drv, cfg.WorkbookName)
		if err != nil {
			return nil, err
		}
	}

	// Opening the spreadsheet once validates both the credentials and the ID.
	if _, err := srv.Spreadsheets.Get(id).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", id, err)
	}

	return &SheetsBackend{srv: srv, spreadsheetID: id}, nil
}

func findSpreadsheet(ctx context.Context, drv *drive.Service, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`), spreadsheetMimeType)

	res, err := drv.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(10).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up workbook %q: %w", name, err)
	}
	if len(res.Files) == 0 {
		return "", fmt.Errorf("workbook %q not found or not shared with the service account", name)
	}
	return res.Files[0].Id, nil
}

func (b *SheetsBackend) Worksheets(ctx context.Context) ([]string, error) {
	ss, err := b.srv.Spreadsheets.Get(b.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (b *SheetsBackend) AddWorksheet(ctx context.Context, name string, rows, cols int) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: name,
					GridProperties: &sheets.GridProperties{
						RowCount:    int64(rows),
						ColumnCount: int64(cols),
					},
				},
			},
		}},
	}
	_, err := b.srv.Spreadsheets.BatchUpdate(b.spreadsheetID, req).Context(ctx).Do()
	return err
}

func (b *SheetsBackend) Values(ctx context.Context, name string) ([][]string, error) {
	vr, err := b.srv.Spreadsheets.Values.Get(b.spreadsheetID, a1(name)).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return toStrings(vr.Values), nil
}

func (b *SheetsBackend) Header(ctx context.Context, name string) ([]string, error) {
	vr, err := b.srv.Spreadsheets.Values.Get(b.spreadsheetID, a1(name)+"!1:1").Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := toStrings(vr.Values)
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (b *SheetsBackend) Clear(ctx context.Context, name string) error {
	_, err := b.srv.Spreadsheets.Values.Clear(b.spreadsheetID, a1(name), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// Append writes RAW values so codes such as "0012" are not reinterpreted as numbers.
func (b *SheetsBackend) Append(ctx context.Context, name string, rows [][]string) error {
	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		cells := make([]interface{}, len(r))
		for j, c := range r {
			cells[j] = c
		}
		values[i] = cells
	}
	_, err := b.srv.Spreadsheets.Values.Append(b.spreadsheetID, a1(name), &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// a1 quotes a worksheet title for use in an A1 range.
func a1(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func toStrings(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, r := range values {
		cells := make([]string, len(r))
		for j, c := range r {
			cells[j] = coerce.String(c)
		}
		out[i] = cells
	}
	return out
}
