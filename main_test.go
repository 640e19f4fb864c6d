package main

import (
	"testing"
	"time"

	"wrestler_elo/internal/app"
	"wrestler_elo/internal/domain/elo"
)

func TestInitialState(t *testing.T) {
	columns := elo.NewColumnModel(time.UTC)

	t.Run("Defaults", func(t *testing.T) {
		state, err := initialState(columns, "", "", false, elo.FormatSort(elo.DefaultSort()))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(state.SelectedBrands) != 4 {
			t.Errorf("Expected all brands, got %v", state.SelectedBrands)
		}
		if len(state.Sorted) != 1 || state.Sorted[0] != elo.DefaultSort()[0] {
			t.Errorf("Expected default sort, got %v", state.Sorted)
		}
	})

	t.Run("Flags", func(t *testing.T) {
		state, err := initialState(columns, "cena", "raw,NXT", true, "name")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if state.NameFilter != "cena" {
			t.Errorf("Expected name filter, got %q", state.NameFilter)
		}
		if len(state.SelectedBrands) != 2 || state.SelectedBrands[0].Value != app.BrandRAW {
			t.Errorf("Expected RAW and NXT, got %v", state.SelectedBrands)
		}
		if len(state.Sorted) != 1 || state.Sorted[0].ID != elo.ColumnName || state.Sorted[0].Desc {
			t.Errorf("Expected name ascending, got %v", state.Sorted)
		}
	})

	t.Run("ExplicitEmptyBrand", func(t *testing.T) {
		state, err := initialState(columns, "", "", true, "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(state.SelectedBrands) != 0 {
			t.Errorf("Expected no brands, got %v", state.SelectedBrands)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := initialState(columns, "", "AEW", true, ""); err == nil {
			t.Error("Expected error for unknown brand")
		}
		if _, err := initialState(columns, "", "", false, "-elo"); err == nil {
			t.Error("Expected error for unknown sort column")
		}
	})
}

func TestNewStatsSourceGraphQL(t *testing.T) {
	config := &app.Config{Source: app.SourceGraphQL, GraphQLURL: "http://localhost:4000/graphql"}
	source, err := newStatsSource(t.Context(), config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if source == nil {
		t.Fatal("Expected a source")
	}
}
