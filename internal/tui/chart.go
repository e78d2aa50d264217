package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/lox/homegame/internal/ledger"
)

const chartBarWidth = 24

// renderChart draws one horizontal bar per game, oldest first, scaled to the
// largest absolute profit/loss in the series.
func (m *Model) renderChart(points []ledger.PlayerPoint) []string {
	if len(points) == 0 {
		return nil
	}

	var maxAbs float64
	for _, p := range points {
		if abs := math.Abs(p.ProfitLoss); abs > maxAbs {
			maxAbs = abs
		}
	}

	rows := make([]string, 0, len(points))
	for _, p := range points {
		width := 0
		if maxAbs > 0 {
			width = int(math.Round(math.Abs(p.ProfitLoss) / maxAbs * chartBarWidth))
		}
		bar := strings.Repeat("█", width)
		if width == 0 {
			bar = "·"
		}

		label := fmt.Sprintf("  %s  ", p.Date.Format("Jan 02"))
		if p.ProfitLoss < 0 {
			rows = append(rows, label+LossStyle.Render(bar)+" "+m.signedMoney(p.ProfitLoss))
		} else {
			rows = append(rows, label+ProfitStyle.Render(bar)+" "+m.signedMoney(p.ProfitLoss))
		}
	}
	return rows
}
