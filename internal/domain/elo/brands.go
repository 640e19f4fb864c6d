package elo

import (
	"fmt"
	"strings"

	"wrestler_elo/internal/app"
)

// BrandOption is one entry of the brand multi-select
type BrandOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BrandOptions returns the fixed brand option list in display order.
// A fresh slice is returned on every call so callers may keep it as state.
func BrandOptions() []BrandOption {
	return []BrandOption{
		{Value: app.BrandRAW, Label: app.BrandRAW},
		{Value: app.BrandSmackDown, Label: app.BrandSmackDown},
		{Value: app.BrandNXT, Label: app.BrandNXT},
		{Value: app.BrandFreeAgent, Label: app.BrandFreeAgent},
	}
}

// BrandOptionFor returns the option whose value matches, case-insensitively
func BrandOptionFor(value string) (BrandOption, bool) {
	for _, option := range BrandOptions() {
		if strings.EqualFold(option.Value, value) {
			return option, true
		}
	}
	return BrandOption{}, false
}

// ContainsBrand reports whether any option carries the given value
func ContainsBrand(options []BrandOption, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// ToggleBrand returns a new selection with value added or removed.
// It never mutates selected; the result keeps the fixed option order.
func ToggleBrand(selected []BrandOption, value string) []BrandOption {
	adding := !ContainsBrand(selected, value)

	next := make([]BrandOption, 0, len(selected)+1)
	for _, option := range BrandOptions() {
		has := ContainsBrand(selected, option.Value)
		if option.Value == value {
			has = adding
		}
		if has {
			next = append(next, option)
		}
	}
	return next
}

// ParseBrands resolves brand values case-insensitively into a selection in
// the fixed option order. Blank values are ignored; unknown values are an error.
func ParseBrands(values []string) ([]BrandOption, error) {
	selected := []BrandOption{}
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		option, ok := BrandOptionFor(value)
		if !ok {
			return nil, fmt.Errorf("unknown brand %q", value)
		}
		if !ContainsBrand(selected, option.Value) {
			selected = ToggleBrand(selected, option.Value)
		}
	}
	return selected, nil
}
