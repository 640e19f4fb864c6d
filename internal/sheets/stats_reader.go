package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"wrestler_elo/internal/app"
	"wrestler_elo/internal/config"
	"wrestler_elo/internal/retry"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
)

// Column positions in the stats sheet
const (
	colName = iota
	colBrand
	colCurrentElo
	colCurrentDate
	colMaxElo
	colMaxDate
	colMinElo
	colMinDate
)

// StatsReader reads wrestler stats from a spreadsheet range.
// It implements processing.StatsSource.
type StatsReader struct {
	api           SheetsAPI
	spreadsheetID string
	sheetRange    string
	retry         *retry.Policy
}

// NewStatsReader creates a reader for the given spreadsheet range
func NewStatsReader(api SheetsAPI, spreadsheetID, sheetRange string) *StatsReader {
	return NewStatsReaderWithRetry(api, spreadsheetID, sheetRange, config.DefaultResilienceConfig.SheetRead)
}

// NewStatsReaderWithRetry creates a reader using the given retry profile
func NewStatsReaderWithRetry(api SheetsAPI, spreadsheetID, sheetRange string, retryConfig config.RetryConfig) *StatsReader {
	return &StatsReader{
		api:           api,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
		retry:         retry.NewPolicy(retryConfig),
	}
}

// Verify checks that the tab named in the configured range exists
func (r *StatsReader) Verify(ctx context.Context) error {
	sheetName := sheetNameFromRange(r.sheetRange)
	if sheetName == "" {
		return nil
	}

	exists, err := r.api.SheetExists(ctx, r.spreadsheetID, sheetName)
	if err != nil {
		return fmt.Errorf("failed to check if sheet %s exists: %w", sheetName, err)
	}
	if !exists {
		return fmt.Errorf("sheet %s not found in spreadsheet %s", sheetName, r.spreadsheetID)
	}
	return nil
}

// GetCurrentWrestlerStats reads and parses every stat row in the range
func (r *StatsReader) GetCurrentWrestlerStats(ctx context.Context) (*app.CurrentWrestlerStatsResponse, error) {
	var rows [][]interface{}
	err := r.retry.Execute(ctx, "ReadSheet", func(ctx context.Context) error {
		var err error
		rows, err = r.api.ReadSheet(ctx, r.spreadsheetID, r.sheetRange)
		if err != nil && isPermanentAPIError(err) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read wrestler stats from %s: %w", r.sheetRange, err)
	}

	stats := ParseStatRows(rows)

	log.Debug().
		Str("range", r.sheetRange).
		Int("rows", len(rows)).
		Int("wrestlers", len(stats)).
		Msg("Read wrestler stats from sheet")

	return &app.CurrentWrestlerStatsResponse{
		CurrentWrestlerStats: &app.CurrentWrestlerStats{CurrentWrestlerStat: stats},
	}, nil
}

// ParseStatRows converts sheet rows into wrestler stats. Blank rows are
// skipped; an Elo snapshot whose value or date cell is missing or
// unparseable is left nil.
func ParseStatRows(rows [][]interface{}) []app.WrestlerStat {
	stats := make([]app.WrestlerStat, 0, len(rows))
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}

		stat := app.WrestlerStat{
			Name:       strings.TrimSpace(rowCell(row, colName).String()),
			Brand:      strings.TrimSpace(rowCell(row, colBrand).String()),
			CurrentElo: parseSnapshot(row, i, colCurrentElo, colCurrentDate),
			MaxElo:     parseSnapshot(row, i, colMaxElo, colMaxDate),
			MinElo:     parseSnapshot(row, i, colMinElo, colMinDate),
		}
		stats = append(stats, stat)
	}
	return stats
}

func parseSnapshot(row []interface{}, rowIndex, eloCol, dateCol int) *app.EloSnapshot {
	eloCell, dateCell := rowCell(row, eloCol), rowCell(row, dateCol)
	if eloCell.IsEmpty() {
		return nil
	}

	elo, ok := eloCell.Float64()
	if !ok {
		log.Warn().
			Int("row", rowIndex).
			Str("value", eloCell.String()).
			Msg("Unparseable Elo cell")
		return nil
	}

	date, dateOnly, ok := dateCell.Time()
	if !ok {
		log.Warn().
			Int("row", rowIndex).
			Str("value", dateCell.String()).
			Msg("Unparseable Elo date cell")
		return nil
	}

	return &app.EloSnapshot{Elo: elo, Date: date, DateOnly: dateOnly}
}

func isBlankRow(row []interface{}) bool {
	for _, raw := range row {
		if !NewCell(raw).IsEmpty() {
			return false
		}
	}
	return true
}

// isPermanentAPIError reports whether a Sheets API error is a client error
// that retrying cannot fix
func isPermanentAPIError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != http.StatusTooManyRequests
}
