package gateway

import "context"

// Backend is the capability set the console needs from a spreadsheet
// provider. Nothing beyond these calls is assumed.
type Backend interface {
	// Worksheets lists worksheet titles in workbook order.
	Worksheets(ctx context.Context) ([]string, error)

	// AddWorksheet creates an empty worksheet with the given grid capacity.
	AddWorksheet(ctx context.Context, name string, rows, cols int) error

	// Values reads the whole used range of a worksheet.
	Values(ctx context.Context, name string) ([][]string, error)

	// Header reads the first row of a worksheet.
	Header(ctx context.Context, name string) ([]string, error)

	// Clear empties every cell of a worksheet.
	Clear(ctx context.Context, name string) error

	// Append writes rows after the last non-empty row.
	Append(ctx context.Context, name string, rows [][]string) error
}
