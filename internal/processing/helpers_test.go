package processing

import (
	"time"

	"wrestler_elo/internal/app"
)

// testStat builds a valid stat with identical current, maximum and minimum snapshots
func testStat(name, brand string, elo float64) app.WrestlerStat {
	snapshot := func() *app.EloSnapshot {
		return &app.EloSnapshot{Elo: elo, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	}
	return app.WrestlerStat{
		Name:       name,
		Brand:      brand,
		CurrentElo: snapshot(),
		MaxElo:     snapshot(),
		MinElo:     snapshot(),
	}
}
