package processing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wrestler_elo/internal/app"
	"wrestler_elo/internal/processing/mocks"
)

func benchmarkStats(n int) []app.WrestlerStat {
	stats := make([]app.WrestlerStat, n)
	for i := range stats {
		stats[i] = testStat(fmt.Sprintf("Wrestler %d", i), app.BrandRAW, float64(1000+i))
	}
	return stats
}

// BenchmarkFetchPatterns measures source calls per fetch with and without caching
func BenchmarkFetchPatterns(b *testing.B) {
	ctx := context.Background()
	stats := benchmarkStats(200)

	b.Run("WithoutCaching", func(b *testing.B) {
		mock := mocks.NewMockStatsSource(stats...)
		binding := NewQueryBinding(mock, time.Second)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			binding.Fetch(ctx)
		}
		b.StopTimer()

		if mock.CallCount() != b.N {
			b.Errorf("Expected %d source calls, got %d", b.N, mock.CallCount())
		}
	})

	b.Run("WithCaching", func(b *testing.B) {
		mock := mocks.NewMockStatsSource(stats...)
		binding := NewQueryBinding(NewCachedStatsSource(mock, time.Hour, NewCallTracker()), time.Second)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			binding.Fetch(ctx)
		}
		b.StopTimer()

		if mock.CallCount() != 1 {
			b.Errorf("Expected 1 source call, got %d", mock.CallCount())
		}
	})
}

// BenchmarkValidateStats measures boundary validation cost
func BenchmarkValidateStats(b *testing.B) {
	stats := benchmarkStats(1000)
	stats[10].Name = ""
	stats[20].CurrentElo = nil

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := len(ValidateStats(stats)); got != 998 {
			b.Fatalf("Expected 998 valid stats, got %d", got)
		}
	}
}
