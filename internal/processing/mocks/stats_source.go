package mocks

import (
	"context"
	"sync"

	"wrestler_elo/internal/app"
)

// MockStatsSource is a test double for processing.StatsSource
type MockStatsSource struct {
	// Response to return
	StatsResponse *app.CurrentWrestlerStatsResponse

	// Error to return
	StatsError error

	// Block, when set, is waited on before returning so tests can hold a fetch in flight
	Block chan struct{}

	mu        sync.Mutex
	callCount int
}

// NewMockStatsSource creates a mock returning the given stats
func NewMockStatsSource(stats ...app.WrestlerStat) *MockStatsSource {
	return &MockStatsSource{
		StatsResponse: &app.CurrentWrestlerStatsResponse{
			CurrentWrestlerStats: &app.CurrentWrestlerStats{CurrentWrestlerStat: stats},
		},
	}
}

func (m *MockStatsSource) GetCurrentWrestlerStats(ctx context.Context) (*app.CurrentWrestlerStatsResponse, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.StatsResponse, m.StatsError
}

// CallCount returns how many times GetCurrentWrestlerStats was called
func (m *MockStatsSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
