package ledger

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// CareerLine summarizes one player's record across every saved game.
type CareerLine struct {
	Name      string
	Games     int
	NetProfit float64
	BestGame  float64
	WorstGame float64
}

// Leaderboard computes a career line for every unique player name, ordered
// by net profit descending (ties broken by name). The per-name aggregation
// is pure, so it fans out across a worker per name.
func Leaderboard(ctx context.Context, games []GameLog) ([]CareerLine, error) {
	names := UniqueNames(games)
	lines := make([]CareerLine, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats := StatsFor(name, games)
			lines[i] = CareerLine{
				Name:      name,
				Games:     stats.GamesPlayed(),
				NetProfit: stats.NetProfit(),
				BestGame:  stats.BestGame(),
				WorstGame: stats.WorstGame(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].NetProfit != lines[j].NetProfit {
			return lines[i].NetProfit > lines[j].NetProfit
		}
		return lines[i].Name < lines[j].Name
	})
	return lines, nil
}
