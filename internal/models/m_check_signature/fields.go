package m_check_signature

import "github.com/light-bringer/smt-console/internal/pkg/table"

// SheetName is the line-leader signature worksheet.
const SheetName = "daily_check_signature"

const (
	Date          = "date"
	Line          = "line"
	Signer        = "signer"
	SignatureData = "signature_data"
	Timestamp     = "timestamp"
)

// Schema returns the column declaration in worksheet order.
func Schema() table.Schema {
	return table.Schema{
		{Name: Date, Kind: table.Date},
		{Name: Line},
		{Name: Signer},
		{Name: SignatureData},
		{Name: Timestamp, Kind: table.Timestamp},
	}
}

// Data is one signature row. SignatureData is an opaque encoded image.
type Data struct {
	Date          string
	Line          string
	Signer        string
	SignatureData string
	Timestamp     string
}

// Record renders the row in schema order.
func (d *Data) Record() table.Record {
	return table.Record{
		{Name: Date, Value: d.Date},
		{Name: Line, Value: d.Line},
		{Name: Signer, Value: d.Signer},
		{Name: SignatureData, Value: d.SignatureData},
		{Name: Timestamp, Value: d.Timestamp},
	}
}

// FromRow reads a worksheet row.
func FromRow(r table.Row) Data {
	return Data{
		Date:          r[Date],
		Line:          r[Line],
		Signer:        r[Signer],
		SignatureData: r[SignatureData],
		Timestamp:     r[Timestamp],
	}
}
