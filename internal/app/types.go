package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Brand values as they appear in the upstream payload
const (
	BrandRAW       = "RAW"
	BrandSmackDown = "SmackDown"
	BrandNXT       = "NXT"
	BrandFreeAgent = "Free Agent"
)

// EloSnapshot is an Elo rating at a point in time.
// DateOnly marks a date that names a calendar day without a zone; Date then
// holds midnight UTC of that day and must not be shifted for display.
type EloSnapshot struct {
	Elo      float64   `json:"elo"`
	Date     time.Time `json:"date"`
	DateOnly bool      `json:"-"`
}

// UnmarshalJSON accepts the date as an RFC 3339 string, a plain 2006-01-02
// calendar date, or epoch milliseconds (number or numeric string). The Elo
// may be a number or a numeric string.
func (s *EloSnapshot) UnmarshalJSON(data []byte) error {
	var raw struct {
		Elo  json.RawMessage `json:"elo"`
		Date json.RawMessage `json:"date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	elo, err := parseJSONFloat(raw.Elo)
	if err != nil {
		return fmt.Errorf("invalid elo: %w", err)
	}
	date, dateOnly, err := parseJSONDate(raw.Date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	s.Elo = elo
	s.Date = date
	s.DateOnly = dateOnly
	return nil
}

func parseJSONFloat(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, fmt.Errorf("missing value")
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strconv.ParseFloat(strings.TrimSpace(text), 64)
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, err
	}
	return value, nil
}

func parseJSONDate(raw json.RawMessage) (time.Time, bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, false, fmt.Errorf("missing value")
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		var millis int64
		if err := json.Unmarshal(raw, &millis); err != nil {
			return time.Time{}, false, err
		}
		return time.UnixMilli(millis).UTC(), false, nil
	}

	text = strings.TrimSpace(text)
	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return t, false, nil
	}
	if t, err := time.Parse(time.DateOnly, text); err == nil {
		return t, true, nil
	}
	if millis, err := strconv.ParseInt(text, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), false, nil
	}
	return time.Time{}, false, fmt.Errorf("unrecognised date %q", text)
}

// WrestlerStat represents a wrestler's current, maximum and minimum Elo.
// Snapshots are pointers because the upstream may omit them; records with a
// nil snapshot are rejected at the source boundary.
type WrestlerStat struct {
	Name       string       `json:"name"`
	Brand      string       `json:"brand"`
	CurrentElo *EloSnapshot `json:"currentElo"`
	MaxElo     *EloSnapshot `json:"maxElo"`
	MinElo     *EloSnapshot `json:"minElo"`
}

// CurrentWrestlerStats wraps the stat list the way the query returns it
type CurrentWrestlerStats struct {
	CurrentWrestlerStat []WrestlerStat `json:"currentWrestlerStat"`
}

// CurrentWrestlerStatsResponse represents the data of the currentWrestlerStats query
type CurrentWrestlerStatsResponse struct {
	CurrentWrestlerStats *CurrentWrestlerStats `json:"currentWrestlerStats"`
}

// Stats returns the stat list, or nil when the wrapper is absent
func (r *CurrentWrestlerStatsResponse) Stats() []WrestlerStat {
	if r == nil || r.CurrentWrestlerStats == nil {
		return nil
	}
	return r.CurrentWrestlerStats.CurrentWrestlerStat
}

// QueryStatus is the lifecycle state of a stats fetch
type QueryStatus int

const (
	QueryPending QueryStatus = iota
	QuerySuccess
	QueryFailure
)

// String returns the status name
func (s QueryStatus) String() string {
	switch s {
	case QueryPending:
		return "pending"
	case QuerySuccess:
		return "success"
	case QueryFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// QueryResult is the outcome of fetching wrestler stats.
// Data is only meaningful when Status is QuerySuccess.
type QueryResult struct {
	Status    QueryStatus
	Data      []WrestlerStat
	Err       error
	FetchedAt time.Time
}

// PendingResult returns a result for a fetch that is still in flight
func PendingResult() QueryResult {
	return QueryResult{Status: QueryPending}
}

// SuccessResult returns a result holding fetched stats
func SuccessResult(data []WrestlerStat, fetchedAt time.Time) QueryResult {
	return QueryResult{Status: QuerySuccess, Data: data, FetchedAt: fetchedAt}
}

// FailureResult returns a result for a failed fetch
func FailureResult(err error) QueryResult {
	return QueryResult{Status: QueryFailure, Err: err}
}

// Loading reports whether the fetch is still in flight
func (r QueryResult) Loading() bool {
	return r.Status == QueryPending
}

// Rows returns the fetched stats, or nil unless the fetch succeeded
func (r QueryResult) Rows() []WrestlerStat {
	if r.Status != QuerySuccess {
		return nil
	}
	return r.Data
}
