package ledger

import (
	"testing"
	"time"
)

func TestPlayerResultProfitLoss(t *testing.T) {
	r := PlayerResult{Name: "Alice", BuyIn: 50, FinalChipCount: 72.5}

	if got := r.ProfitLoss(); got != 22.5 {
		t.Errorf("expected profit of 22.5, got %f", got)
	}

	r = PlayerResult{Name: "Bob", BuyIn: 100, FinalChipCount: 40}
	if got := r.ProfitLoss(); got != -60 {
		t.Errorf("expected loss of -60, got %f", got)
	}
}

func TestGameLogIsBalanced(t *testing.T) {
	tests := []struct {
		name     string
		buyIn    float64
		chips    float64
		balanced bool
	}{
		{name: "exact", buyIn: 100.00, chips: 100.00, balanced: true},
		{name: "within epsilon", buyIn: 100.00, chips: 100.004, balanced: true},
		{name: "under by epsilon", buyIn: 100.00, chips: 99.995, balanced: true},
		{name: "over tolerance", buyIn: 100.00, chips: 100.02, balanced: false},
		{name: "missing chips", buyIn: 200.00, chips: 180.00, balanced: false},
		{name: "empty game", buyIn: 0, chips: 0, balanced: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GameLog{TotalBuyIn: tt.buyIn, TotalChipCount: tt.chips}
			if got := g.IsBalanced(); got != tt.balanced {
				t.Errorf("IsBalanced() = %v, want %v (buy-in %f, chips %f)",
					got, tt.balanced, tt.buyIn, tt.chips)
			}
		})
	}
}

func TestGameLogTotalProfitLoss(t *testing.T) {
	g := GameLog{
		Results: []PlayerResult{
			{Name: "Alice", BuyIn: 50, FinalChipCount: 80},
			{Name: "Bob", BuyIn: 50, FinalChipCount: 20},
			{Name: "Carol", BuyIn: 50, FinalChipCount: 50},
		},
	}

	if got := g.TotalProfitLoss(); got != 0 {
		t.Errorf("expected total profit/loss of 0 for balanced game, got %f", got)
	}

	g.Results = g.Results[:2]
	if got := g.TotalProfitLoss(); got != 0 {
		t.Errorf("expected 30 + -30 = 0, got %f", got)
	}
}

func TestGameLogBiggestWinnerAndLoser(t *testing.T) {
	g := GameLog{
		EndedAt: time.Now(),
		Results: []PlayerResult{
			{Name: "Alice", BuyIn: 50, FinalChipCount: 80},
			{Name: "Bob", BuyIn: 50, FinalChipCount: 10},
			{Name: "Carol", BuyIn: 50, FinalChipCount: 60},
		},
	}

	winner := g.BiggestWinner()
	if winner == nil || winner.Name != "Alice" {
		t.Errorf("expected Alice as biggest winner, got %+v", winner)
	}

	loser := g.BiggestLoser()
	if loser == nil || loser.Name != "Bob" {
		t.Errorf("expected Bob as biggest loser, got %+v", loser)
	}
}

func TestGameLogBiggestWinnerEmpty(t *testing.T) {
	g := GameLog{}

	if winner := g.BiggestWinner(); winner != nil {
		t.Errorf("expected nil winner for empty game, got %+v", winner)
	}
	if loser := g.BiggestLoser(); loser != nil {
		t.Errorf("expected nil loser for empty game, got %+v", loser)
	}
}
