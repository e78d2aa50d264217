package ledger

import (
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// PlayerGame pairs a saved game with the matching result for one player.
type PlayerGame struct {
	Game   GameLog
	Result PlayerResult
}

// PlayerPoint is one (date, profit/loss) sample in a player's history.
type PlayerPoint struct {
	Date       time.Time
	ProfitLoss float64
}

// PlayerStats is one player's cross-game history. Matching is by
// case-sensitive name equality, not by a stable identity: renaming a player
// going forward does not merge their history, and two people who reuse the
// same name are indistinguishable.
type PlayerStats struct {
	Name  string
	Games []PlayerGame
}

// StatsFor collects every saved game containing a result whose name matches
// exactly, in file order. One result per game: the first match wins.
func StatsFor(name string, games []GameLog) PlayerStats {
	stats := PlayerStats{Name: name}
	for _, g := range games {
		for _, r := range g.Results {
			if r.Name == name {
				stats.Games = append(stats.Games, PlayerGame{Game: g, Result: r})
				break
			}
		}
	}
	return stats
}

// GamesPlayed returns how many saved games include this player.
func (s PlayerStats) GamesPlayed() int { return len(s.Games) }

// NetProfit sums profit/loss across every matched game.
func (s PlayerStats) NetProfit() float64 {
	var total float64
	for _, pg := range s.Games {
		total += pg.Result.ProfitLoss()
	}
	return total
}

// BestGame returns the highest single-game profit/loss, zero with no games.
func (s PlayerStats) BestGame() float64 {
	var best float64
	for i, pg := range s.Games {
		if i == 0 || pg.Result.ProfitLoss() > best {
			best = pg.Result.ProfitLoss()
		}
	}
	return best
}

// WorstGame returns the lowest single-game profit/loss, zero with no games.
func (s PlayerStats) WorstGame() float64 {
	var worst float64
	for i, pg := range s.Games {
		if i == 0 || pg.Result.ProfitLoss() < worst {
			worst = pg.Result.ProfitLoss()
		}
	}
	return worst
}

// PointsAscending returns (date, profit/loss) pairs in chronological order,
// oldest first, for charting.
func (s PlayerStats) PointsAscending() []PlayerPoint {
	points := s.points()
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// PointsDescending returns (date, profit/loss) pairs newest first, for the
// history list.
func (s PlayerStats) PointsDescending() []PlayerPoint {
	points := s.points()
	sort.SliceStable(points, func(i, j int) bool {
		return points[j].Date.Before(points[i].Date)
	})
	return points
}

func (s PlayerStats) points() []PlayerPoint {
	points := make([]PlayerPoint, 0, len(s.Games))
	for _, pg := range s.Games {
		points = append(points, PlayerPoint{
			Date:       pg.Game.EndedAt,
			ProfitLoss: pg.Result.ProfitLoss(),
		})
	}
	return points
}

// UniqueNames returns every player name appearing across the saved games,
// deduplicated and sorted lexicographically.
func UniqueNames(games []GameLog) []string {
	names := mapset.NewThreadUnsafeSet[string]()
	for _, g := range games {
		for _, r := range g.Results {
			names.Add(r.Name)
		}
	}
	out := names.ToSlice()
	sort.Strings(out)
	return out
}
