package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// Player is one seat in the live roster of an in-progress game. The ID is
// stable for the life of the session and is the only key used to locate a
// player for removal or edits.
type Player struct {
	ID             string
	Name           string
	BuyIn          float64
	ChipCount      float64
	PaidExternally bool
}

// newPlayer creates a default player named by roster position.
func newPlayer(position int, buyIn float64) Player {
	return Player{
		ID:    uuid.NewString(),
		Name:  fmt.Sprintf("Player %d", position),
		BuyIn: buyIn,
	}
}

// ProfitLoss returns the player's current chips minus their buy-in.
func (p Player) ProfitLoss() float64 {
	return p.ChipCount - p.BuyIn
}
