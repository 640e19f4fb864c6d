package processing

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// CallTracker counts calls that reach the upstream stats source
type CallTracker struct {
	start           time.Time
	calls           int64
	failures        int64
	lastFailure     string
	callsByEndpoint map[string]int64
	mutex           sync.RWMutex
	now             func() time.Time
}

// NewCallTracker creates a tracker whose session starts now
func NewCallTracker() *CallTracker {
	return &CallTracker{
		start:           time.Now(),
		callsByEndpoint: make(map[string]int64),
		now:             time.Now,
	}
}

// RecordCall records one upstream call and its outcome
func (t *CallTracker) RecordCall(endpoint string, err error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.calls++
	t.callsByEndpoint[endpoint]++
	if err != nil {
		t.failures++
		t.lastFailure = err.Error()
	}
}

// Stats returns call statistics since the tracker was created
func (t *CallTracker) Stats() CallStats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	duration := t.now().Sub(t.start)

	var perMinute float64
	if duration > 0 {
		perMinute = float64(t.calls) / duration.Minutes()
	}

	return CallStats{
		Calls:           t.calls,
		Failures:        t.failures,
		LastFailure:     t.lastFailure,
		Duration:        duration,
		CallsByEndpoint: maps.Clone(t.callsByEndpoint),
		CallsPerMinute:  perMinute,
	}
}

// LogSessionSummary logs a summary of upstream usage for the session
func (t *CallTracker) LogSessionSummary(ctx context.Context) {
	stats := t.Stats()

	logEvent := log.Info().
		Int64("source_calls", stats.Calls).
		Int64("source_failures", stats.Failures).
		Float64("calls_per_minute", stats.CallsPerMinute).
		Dur("session_duration", stats.Duration)

	for endpoint, count := range stats.CallsByEndpoint {
		logEvent = logEvent.Int64(endpoint+"_calls", count)
	}
	if stats.LastFailure != "" {
		logEvent = logEvent.Str("last_failure", stats.LastFailure)
	}

	logEvent.Msg("Stats source call summary")
}

// CallStats is a snapshot of a CallTracker
type CallStats struct {
	Calls           int64
	Failures        int64
	LastFailure     string
	Duration        time.Duration
	CallsByEndpoint map[string]int64
	CallsPerMinute  float64
}
