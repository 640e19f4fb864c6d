package elo

import (
	"testing"

	"wrestler_elo/internal/app"
)

func testStats() []app.WrestlerStat {
	return []app.WrestlerStat{
		{Name: "John Cena", Brand: app.BrandRAW},
		{Name: "Seth Rollins", Brand: app.BrandRAW},
		{Name: "Roman Reigns", Brand: app.BrandSmackDown},
		{Name: "Bron Breakker", Brand: app.BrandNXT},
		{Name: "Ricochet", Brand: app.BrandFreeAgent},
	}
}

func TestFilterStats(t *testing.T) {
	stats := testStats()

	t.Run("all brands and empty filter keeps everything", func(t *testing.T) {
		result := FilterStats(stats, BrandOptions(), "")
		if len(result) != len(stats) {
			t.Errorf("Expected %d stats, got %d", len(stats), len(result))
		}
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		result := FilterStats([]app.WrestlerStat{
			{Name: "John Cena", Brand: app.BrandRAW},
			{Name: "Seth Rollins", Brand: app.BrandRAW},
		}, BrandOptions(), "cena")

		if len(result) != 1 || result[0].Name != "John Cena" {
			t.Errorf("Expected only John Cena, got %v", result)
		}
	})

	t.Run("upper-case filter matches lower-case name", func(t *testing.T) {
		result := FilterStats(stats, BrandOptions(), "RICO")
		if len(result) != 1 || result[0].Name != "Ricochet" {
			t.Errorf("Expected only Ricochet, got %v", result)
		}
	})

	t.Run("brand subset", func(t *testing.T) {
		selected := []BrandOption{{Value: app.BrandSmackDown, Label: app.BrandSmackDown}, {Value: app.BrandNXT, Label: app.BrandNXT}}
		result := FilterStats(stats, selected, "")
		if len(result) != 2 {
			t.Fatalf("Expected 2 stats, got %d", len(result))
		}
		if result[0].Name != "Roman Reigns" || result[1].Name != "Bron Breakker" {
			t.Errorf("Expected input order preserved, got %v", result)
		}
	})

	t.Run("empty brand selection shows nothing", func(t *testing.T) {
		if result := FilterStats(stats, nil, ""); len(result) != 0 {
			t.Errorf("Expected no stats, got %d", len(result))
		}
		if result := FilterStats(stats, []BrandOption{}, "Cena"); len(result) != 0 {
			t.Errorf("Expected no stats, got %d", len(result))
		}
	})

	t.Run("filter text is not trimmed", func(t *testing.T) {
		if result := FilterStats(stats, BrandOptions(), " cena "); len(result) != 0 {
			t.Errorf("Expected surrounding spaces to prevent a match, got %v", result)
		}
	})

	t.Run("original slice unchanged", func(t *testing.T) {
		FilterStats(stats, BrandOptions()[:1], "seth")
		if len(stats) != 5 || stats[0].Name != "John Cena" {
			t.Errorf("Original slice was modified")
		}
	})
}

func TestMatchesFilter(t *testing.T) {
	raw := []BrandOption{{Value: app.BrandRAW, Label: app.BrandRAW}}

	tests := []struct {
		name     string
		stat     app.WrestlerStat
		brands   []BrandOption
		filter   string
		expected bool
	}{
		{"brand and name match", app.WrestlerStat{Name: "John Cena", Brand: app.BrandRAW}, raw, "john", true},
		{"brand mismatch", app.WrestlerStat{Name: "John Cena", Brand: app.BrandNXT}, raw, "", false},
		{"name mismatch", app.WrestlerStat{Name: "John Cena", Brand: app.BrandRAW}, raw, "rollins", false},
		{"no brands selected", app.WrestlerStat{Name: "John Cena", Brand: app.BrandRAW}, nil, "", false},
		{"brand comparison is exact", app.WrestlerStat{Name: "John Cena", Brand: "raw"}, raw, "", false},
		{"free agent with space", app.WrestlerStat{Name: "Ricochet", Brand: "Free Agent"}, BrandOptions(), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MatchesFilter(tt.stat, tt.brands, tt.filter)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}
