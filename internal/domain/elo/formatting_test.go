package elo

import (
	"encoding/json"
	"testing"
	"time"

	"wrestler_elo/internal/app"
)

func TestFormatElo(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{1500, "1500.0"},
		{1620.44, "1620.4"},
		{1498.96, "1499.0"},
		{1500.25, "1500.3"},
		{0.25, "0.3"},
		{9.5, "9.5"},
		{-12.34, "-12.3"},
		{-1.25, "-1.3"},
		{-0.25, "-0.3"},
		{-1500.75, "-1500.8"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := FormatElo(tt.value); result != tt.expected {
				t.Errorf("FormatElo(%v) = %q, expected %q", tt.value, result, tt.expected)
			}
		})
	}
}

func TestFormatEloDate(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected string
	}{
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), "1st Jan 2024"},
		{time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), "2nd Jan 2024"},
		{time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), "3rd Jan 2024"},
		{time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC), "4th Jan 2024"},
		{time.Date(2024, time.February, 11, 0, 0, 0, 0, time.UTC), "11th Feb 2024"},
		{time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), "12th Mar 2024"},
		{time.Date(2024, time.April, 13, 0, 0, 0, 0, time.UTC), "13th Apr 2024"},
		{time.Date(2024, time.May, 21, 0, 0, 0, 0, time.UTC), "21st May 2024"},
		{time.Date(2024, time.June, 22, 0, 0, 0, 0, time.UTC), "22nd Jun 2024"},
		{time.Date(2024, time.July, 23, 0, 0, 0, 0, time.UTC), "23rd Jul 2024"},
		{time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC), "31st Aug 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := FormatEloDate(tt.date, time.UTC); result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}

	t.Run("display location shifts the day", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		date := time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC)
		if result := FormatEloDate(date, tokyo); result != "2nd Jan 2024" {
			t.Errorf("Expected 2nd Jan 2024 in JST, got %q", result)
		}
	})
}

func TestParseEloDate(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		date := time.Date(2023, time.November, 22, 0, 0, 0, 0, time.UTC)
		parsed, ok := ParseEloDate(FormatEloDate(date, time.UTC))
		if !ok || !parsed.Equal(date) {
			t.Errorf("Expected %v, got %v (ok=%v)", date, parsed, ok)
		}
	})

	invalid := []string{"", "Jan 2024", "0th Jan 2024", "32nd Jan 2024", "31st Feb 2024", "1st Foo 2024", "1st Jan year"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, ok := ParseEloDate(s); ok {
				t.Errorf("Expected %q to be rejected", s)
			}
		})
	}
}

func TestSnapshotCellsHandleMissingSnapshot(t *testing.T) {
	if eloValue(nil) != "" || eloDate(nil, time.UTC) != "" {
		t.Error("Expected empty cells for a missing snapshot")
	}

	snapshot := &app.EloSnapshot{Elo: 1234.56, Date: time.Date(2022, time.October, 3, 0, 0, 0, 0, time.UTC)}
	if eloValue(snapshot) != "1234.6" {
		t.Errorf("Unexpected value cell %q", eloValue(snapshot))
	}
	if eloDate(snapshot, time.UTC) != "3rd Oct 2022" {
		t.Errorf("Unexpected date cell %q", eloDate(snapshot, time.UTC))
	}
}

func TestSnapshotDateCellInWesternZone(t *testing.T) {
	newYork := time.FixedZone("EST", -5*60*60)
	day := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	t.Run("calendar day is not shifted", func(t *testing.T) {
		snapshot := &app.EloSnapshot{Elo: 1500, Date: day, DateOnly: true}
		if result := eloDate(snapshot, newYork); result != "3rd Jan 2024" {
			t.Errorf("Expected 3rd Jan 2024, got %q", result)
		}
	})

	t.Run("decoded plain date", func(t *testing.T) {
		var snapshot app.EloSnapshot
		if err := json.Unmarshal([]byte(`{"elo": 1500, "date": "2024-01-03"}`), &snapshot); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result := eloDate(&snapshot, newYork); result != "3rd Jan 2024" {
			t.Errorf("Expected 3rd Jan 2024, got %q", result)
		}
	})

	t.Run("timestamp follows the display location", func(t *testing.T) {
		snapshot := &app.EloSnapshot{Elo: 1500, Date: day}
		if result := eloDate(snapshot, newYork); result != "2nd Jan 2024" {
			t.Errorf("Expected 2nd Jan 2024, got %q", result)
		}
	})

	t.Run("column model row", func(t *testing.T) {
		stat := app.WrestlerStat{
			Name:       "Bayley",
			Brand:      app.BrandSmackDown,
			CurrentElo: &app.EloSnapshot{Elo: 1500, Date: day, DateOnly: true},
			MaxElo:     &app.EloSnapshot{Elo: 1600, Date: day, DateOnly: true},
			MinElo:     &app.EloSnapshot{Elo: 1400, Date: day, DateOnly: true},
		}
		model := NewColumnModel(newYork)
		row := model.FormatRow(stat)
		for _, id := range []string{ColumnCurrentEloDate, ColumnMaxEloDate, ColumnMinEloDate} {
			_, index, _ := model.Leaf(id)
			if row.Cells[index] != "3rd Jan 2024" {
				t.Errorf("Expected %s to be 3rd Jan 2024, got %q", id, row.Cells[index])
			}
		}
	})
}
