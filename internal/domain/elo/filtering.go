package elo

import (
	"strings"

	"wrestler_elo/internal/app"
)

// FilterStats returns the stats that pass MatchesFilter
// Pure function: No I/O, returns new slice without modifying input
func FilterStats(stats []app.WrestlerStat, selectedBrands []BrandOption, nameFilter string) []app.WrestlerStat {
	filtered := make([]app.WrestlerStat, 0, len(stats))
	for _, stat := range stats {
		if MatchesFilter(stat, selectedBrands, nameFilter) {
			filtered = append(filtered, stat)
		}
	}
	return filtered
}

// MatchesFilter checks whether a stat is visible under the current filter.
// An empty brand selection matches nothing.
// Pure function: No I/O, simple boolean logic
func MatchesFilter(stat app.WrestlerStat, selectedBrands []BrandOption, nameFilter string) bool {
	if len(selectedBrands) == 0 {
		return false
	}
	if !ContainsBrand(selectedBrands, stat.Brand) {
		return false
	}
	return strings.Contains(strings.ToLower(stat.Name), strings.ToLower(nameFilter))
}
