package processing

import (
	"wrestler_elo/internal/graphql"
	"wrestler_elo/internal/sheets"
)

// Compile-time interface compliance checks
// These will cause compilation errors if the types don't implement the interfaces

var (
	_ StatsSource = (*graphql.Client)(nil)
	_ StatsSource = (*sheets.StatsReader)(nil)
	_ StatsSource = (*CachedStatsSource)(nil)
	_ Invalidator = (*CachedStatsSource)(nil)
)
