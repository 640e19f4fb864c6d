package processing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wrestler_elo/internal/app"

	"github.com/rs/zerolog/log"
)

// DefaultFetchTimeout bounds a single Fetch when no timeout is configured
const DefaultFetchTimeout = 30 * time.Second

// QueryBinding turns a StatsSource into pending/success/failure query results
type QueryBinding struct {
	source  StatsSource
	timeout time.Duration
	now     func() time.Time
}

// NewQueryBinding creates a binding over the given source
func NewQueryBinding(source StatsSource, timeout time.Duration) *QueryBinding {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &QueryBinding{
		source:  source,
		timeout: timeout,
		now:     time.Now,
	}
}

// Fetch runs the source under the binding timeout and validates the records.
// It never returns a pending result.
func (b *QueryBinding) Fetch(ctx context.Context) app.QueryResult {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	start := b.now()
	resp, err := b.source.GetCurrentWrestlerStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch wrestler stats")
		return app.FailureResult(fmt.Errorf("failed to fetch wrestler stats: %w", err))
	}

	stats := ValidateStats(resp.Stats())

	log.Info().
		Int("records", len(stats)).
		Dur("duration", b.now().Sub(start)).
		Msg("Fetched wrestler stats")

	return app.SuccessResult(stats, b.now())
}

// Refetch drops any cached data before fetching
func (b *QueryBinding) Refetch(ctx context.Context) app.QueryResult {
	if inv, ok := b.source.(Invalidator); ok {
		inv.Invalidate()
	}
	return b.Fetch(ctx)
}

// ValidateStats drops records that cannot be rendered: an empty name or a missing Elo snapshot.
// The returned slice is always non-nil.
func ValidateStats(stats []app.WrestlerStat) []app.WrestlerStat {
	valid := make([]app.WrestlerStat, 0, len(stats))
	for i, stat := range stats {
		if reason := invalidReason(stat); reason != "" {
			log.Warn().
				Int("index", i).
				Str("name", stat.Name).
				Str("reason", reason).
				Msg("Skipping malformed wrestler stat")
			continue
		}
		valid = append(valid, stat)
	}
	return valid
}

func invalidReason(stat app.WrestlerStat) string {
	switch {
	case strings.TrimSpace(stat.Name) == "":
		return "empty name"
	case stat.CurrentElo == nil:
		return "missing current elo"
	case stat.MaxElo == nil:
		return "missing maximum elo"
	case stat.MinElo == nil:
		return "missing minimum elo"
	default:
		return ""
	}
}
