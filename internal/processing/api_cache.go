package processing

import (
	"context"
	"sync"
	"time"

	"wrestler_elo/internal/app"

	"github.com/rs/zerolog/log"
)

// DefaultStatsTTL is how long fetched stats are served from memory
const DefaultStatsTTL = 2 * time.Minute

// CachedStatsSource wraps a StatsSource with a TTL cache
type CachedStatsSource struct {
	source  StatsSource
	ttl     time.Duration
	tracker *CallTracker
	mutex   sync.RWMutex
	now     func() time.Time

	stats *cachedStats
}

type cachedStats struct {
	data      *app.CurrentWrestlerStatsResponse
	timestamp time.Time
}

// NewCachedStatsSource creates a caching wrapper around a StatsSource.
// A non-positive ttl falls back to DefaultStatsTTL.
func NewCachedStatsSource(source StatsSource, ttl time.Duration, tracker *CallTracker) *CachedStatsSource {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	if tracker == nil {
		tracker = NewCallTracker()
	}
	return &CachedStatsSource{
		source:  source,
		ttl:     ttl,
		tracker: tracker,
		now:     time.Now,
	}
}

// GetCurrentWrestlerStats returns cached stats or fetches fresh data
func (c *CachedStatsSource) GetCurrentWrestlerStats(ctx context.Context) (*app.CurrentWrestlerStatsResponse, error) {
	c.mutex.RLock()
	cached := c.stats
	c.mutex.RUnlock()

	if cached != nil && c.now().Sub(cached.timestamp) < c.ttl {
		log.Debug().
			Dur("cache_age", c.now().Sub(cached.timestamp)).
			Dur("cache_ttl", c.ttl).
			Msg("Using cached wrestler stats (API call saved)")
		return cached.data, nil
	}

	log.Debug().Dur("cache_ttl", c.ttl).Msg("Fetching fresh wrestler stats from source")
	data, err := c.source.GetCurrentWrestlerStats(ctx)
	c.tracker.RecordCall("GetCurrentWrestlerStats", err)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.stats = &cachedStats{
		data:      data,
		timestamp: c.now(),
	}
	c.mutex.Unlock()

	return data, nil
}

// Invalidate drops the cached stats so the next call reaches the source
func (c *CachedStatsSource) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.stats = nil
	log.Debug().Msg("Stats cache cleared")
}

// GetCacheStats describes the cached entry, if any
func (c *CachedStatsSource) GetCacheStats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var stats CacheStats
	if c.stats != nil {
		stats.Cached = true
		stats.Rows = len(c.stats.data.Stats())
		stats.Age = c.now().Sub(c.stats.timestamp)
		stats.Expired = stats.Age >= c.ttl
	}
	return stats
}

// LogSummary logs upstream call counts and the state of the cached entry
func (c *CachedStatsSource) LogSummary(ctx context.Context) {
	c.tracker.LogSessionSummary(ctx)

	stats := c.GetCacheStats()
	log.Info().
		Bool("cached", stats.Cached).
		Bool("expired", stats.Expired).
		Int("rows", stats.Rows).
		Dur("age", stats.Age).
		Dur("ttl", c.ttl).
		Msg("Stats cache summary")
}

// CacheStats represents the state of the single cached stats entry
type CacheStats struct {
	Cached  bool
	Expired bool
	Rows    int
	Age     time.Duration
}
