package sheets

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Cell provides type-safe access to Google Sheets cell values.
// The Google Sheets API returns [][]interface{}, which we cannot change.
// This type wraps interface{} to provide type-safe accessors throughout our codebase.
type Cell struct {
	raw interface{}
}

// NewCell creates a Cell from a raw interface{} value from Google Sheets API
func NewCell(raw interface{}) Cell {
	return Cell{raw: raw}
}

// String returns the cell value as a string
func (c Cell) String() string {
	if c.raw == nil {
		return ""
	}
	if s, ok := c.raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", c.raw)
}

// Float64 returns the cell value as a float64. Thousands separators in
// string values are ignored. ok is false for empty or non-numeric cells.
func (c Cell) Float64() (value float64, ok bool) {
	switch v := c.raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Time returns the cell value as a time. Numbers are date serials (days
// since 1899-12-30, fractions are the time of day); strings are RFC 3339
// timestamps or 2006-01-02 dates. dateOnly is true when the value carries no
// zone, in which case the wall clock is returned as UTC. ok is false for
// empty or unparseable cells.
func (c Cell) Time() (value time.Time, dateOnly bool, ok bool) {
	switch v := c.raw.(type) {
	case float64:
		return serialTime(v)
	case int:
		return serialTime(float64(v))
	case int64:
		return serialTime(float64(v))
	}

	s := strings.TrimSpace(c.String())
	if s == "" {
		return time.Time{}, false, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, false, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}

// IsEmpty returns true if the cell contains nil or blank text
func (c Cell) IsEmpty() bool {
	if c.raw == nil {
		return true
	}
	s, ok := c.raw.(string)
	return ok && strings.TrimSpace(s) == ""
}

// Raw returns the underlying interface{} value for Google Sheets API calls.
// This should only be used at the API boundary.
func (c Cell) Raw() interface{} {
	return c.raw
}

// serialEpoch is day zero of spreadsheet date serials
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func serialTime(serial float64) (time.Time, bool, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 || serial > maxSerial {
		return time.Time{}, false, false
	}
	days := math.Floor(serial)
	seconds := math.Round((serial - days) * 24 * 60 * 60)
	t := serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(seconds) * time.Second)
	return t, true, true
}

// maxSerial is 9999-12-31, the last date a spreadsheet accepts
const maxSerial = 2958465
