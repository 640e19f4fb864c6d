package sheets

import (
	"context"
)

// SheetsAPI defines the read-only subset of Google Sheets used by StatsReader.
//
// Note on interface{} usage:
// The Google Sheets API (google.golang.org/api/sheets/v4) uses [][]interface{}
// for cell values. Use the Cell type wrapper for type-safe value extraction
// and keep interface{} constrained to this API boundary layer.
type SheetsAPI interface {
	// ReadSheet reads values from a sheet range.
	// Returns [][]interface{} as required by Google Sheets API.
	// Use NewCell() to wrap values for type-safe access.
	ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error)

	// SheetExists checks if a sheet with the given name exists
	SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error)
}
