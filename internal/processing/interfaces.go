package processing

import (
	"context"

	"wrestler_elo/internal/app"
)

// StatsSource fetches the current wrestler stats from a remote source.
// Implemented by graphql.Client, sheets.StatsReader and CachedStatsSource.
type StatsSource interface {
	GetCurrentWrestlerStats(ctx context.Context) (*app.CurrentWrestlerStatsResponse, error)
}

// Invalidator is implemented by sources that can drop cached data
type Invalidator interface {
	Invalidate()
}
