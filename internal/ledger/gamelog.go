package ledger

import (
	"math"
	"time"
)

// balanceEpsilon absorbs currency rounding when comparing chip and buy-in
// totals.
const balanceEpsilon = 0.01

// PlayerResult records one player's outcome in a finished game. Only the
// name is ever edited after creation; the amounts are frozen at game end.
type PlayerResult struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	BuyIn          float64 `json:"buy_in"`
	FinalChipCount float64 `json:"final_chip_count"`
	PaidExternally bool    `json:"paid_externally"`
}

// ProfitLoss returns the player's winnings (or losses) for the game.
func (r PlayerResult) ProfitLoss() float64 {
	return r.FinalChipCount - r.BuyIn
}

// GameLog is the record of one finished game. TotalBuyIn and TotalChipCount
// are captured once when the game ends and are never recomputed from the
// results, so a post-hoc name edit cannot shift the recorded totals.
type GameLog struct {
	ID              string         `json:"id"`
	EndedAt         time.Time      `json:"ended_at"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	Location        string         `json:"location,omitempty"`
	Results         []PlayerResult `json:"results"`
	TotalBuyIn      float64        `json:"total_buy_in"`
	TotalChipCount  float64        `json:"total_chip_count"`
}

// IsBalanced reports whether the chips on the table matched the money that
// bought in, within rounding tolerance.
func (g GameLog) IsBalanced() bool {
	return math.Abs(g.TotalChipCount-g.TotalBuyIn) < balanceEpsilon
}

// TotalProfitLoss sums every player's profit/loss. Zero for a balanced game,
// up to rounding.
func (g GameLog) TotalProfitLoss() float64 {
	var total float64
	for _, r := range g.Results {
		total += r.ProfitLoss()
	}
	return total
}

// BiggestWinner returns the result with the highest profit/loss, or nil when
// the game recorded no players.
func (g GameLog) BiggestWinner() *PlayerResult {
	var best *PlayerResult
	for i := range g.Results {
		if best == nil || g.Results[i].ProfitLoss() > best.ProfitLoss() {
			best = &g.Results[i]
		}
	}
	return best
}

// BiggestLoser returns the result with the lowest profit/loss, or nil when
// the game recorded no players.
func (g GameLog) BiggestLoser() *PlayerResult {
	var worst *PlayerResult
	for i := range g.Results {
		if worst == nil || g.Results[i].ProfitLoss() < worst.ProfitLoss() {
			worst = &g.Results[i]
		}
	}
	return worst
}
