package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case screenHistory:
		body = m.viewHistory()
	case screenStats:
		body = m.viewStats()
	default:
		body = m.viewSession()
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("homegame"))
	b.WriteString("\n\n")
	b.WriteString(body)
	if m.edit != editNone {
		b.WriteString("\n")
		b.WriteString(m.viewEditor())
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) viewSession() string {
	players := m.session.Players()

	rows := make([]string, 0, len(players)+2)
	rows = append(rows, RowStyle.Render(fmt.Sprintf("  %-16s %10s %10s %10s  %s",
		"player", "buy-in", "chips", "net", "paid")))

	for i, p := range players {
		paid := ""
		if p.PaidExternally {
			paid = "✓"
		}
		// Plain net value here: styled text would throw off the column widths.
		line := fmt.Sprintf("  %-16s %10s %10s %10s  %s",
			p.Name, m.money(p.BuyIn), m.money(p.ChipCount), m.plainSigned(p.ProfitLoss()), paid)
		if i == m.cursor && m.edit == editNone {
			rows = append(rows, SelectedRowStyle.Render("▸"+line[1:]))
		} else {
			rows = append(rows, RowStyle.Render(line))
		}
	}

	totals := fmt.Sprintf("  %-16s %10s %10s", "total",
		m.money(m.session.TotalInPlay()), m.money(m.session.TotalChipCount()))
	rows = append(rows, "", TotalsStyle.Render(totals))

	diff := m.session.TotalChipCount() - m.session.TotalInPlay()
	if diff > 0.01 || diff < -0.01 {
		rows = append(rows, WarningStyle.Render(
			fmt.Sprintf("  table is off by %s", m.signedMoney(diff))))
	}

	if loc := m.session.Location(); loc != "" {
		rows = append(rows, StatusStyle.Render("  at "+loc))
	}

	return PaneStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) viewHistory() string {
	games := m.session.Games()
	if len(games) == 0 {
		return PaneStyle.Render("no saved games yet")
	}

	rows := make([]string, 0, len(games)+4)
	for i, g := range games {
		balance := "balanced"
		if !g.IsBalanced() {
			balance = WarningStyle.Render("off by " + m.signedMoney(g.TotalChipCount-g.TotalBuyIn))
		}
		line := fmt.Sprintf("  %s  %d players  %s in play  %s",
			g.EndedAt.Format("Mon Jan 2 2006"), len(g.Results), m.money(g.TotalBuyIn), balance)
		if i == m.historyCursor {
			rows = append(rows, SelectedRowStyle.Render("▸"+line[1:]))
		} else {
			rows = append(rows, RowStyle.Render(line))
		}
	}

	// Detail for the selected game.
	if m.historyCursor < len(games) {
		g := games[m.historyCursor]
		rows = append(rows, "")
		if g.Location != "" {
			rows = append(rows, StatusStyle.Render("  at "+g.Location))
		}
		for _, r := range g.Results {
			rows = append(rows, RowStyle.Render(fmt.Sprintf("    %-16s %10s → %-10s %s",
				r.Name, m.money(r.BuyIn), m.money(r.FinalChipCount), m.signedMoney(r.ProfitLoss()))))
		}
		if w := g.BiggestWinner(); w != nil {
			rows = append(rows, ProfitStyle.Render(
				fmt.Sprintf("    big winner: %s %s", w.Name, m.signedMoney(w.ProfitLoss()))))
		}
	}

	return PaneStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) viewStats() string {
	stats := m.session.PlayerStats(m.statsName)
	if stats.GamesPlayed() == 0 {
		return PaneStyle.Render(fmt.Sprintf("no saved games for %s", m.statsName))
	}

	rows := []string{
		RowStyle.Render(fmt.Sprintf("  %s — %d games, net %s",
			stats.Name, stats.GamesPlayed(), m.signedMoney(stats.NetProfit()))),
		StatusStyle.Render(fmt.Sprintf("  best %s, worst %s",
			m.signedMoney(stats.BestGame()), m.signedMoney(stats.WorstGame()))),
		"",
	}
	rows = append(rows, m.renderChart(stats.PointsAscending())...)

	return PaneStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) viewEditor() string {
	view := m.input.View()
	if m.edit == editName {
		if suggestions := m.nameSuggestions(); len(suggestions) > 0 {
			view += "\n" + StatusStyle.Render("  "+strings.Join(suggestions, "  "))
		}
	}
	return view
}

// nameSuggestions offers prior player names matching the current entry.
func (m *Model) nameSuggestions() []string {
	prefix := strings.ToLower(strings.TrimSpace(m.input.Value()))
	var out []string
	for _, name := range m.session.UniquePlayerNames() {
		if prefix == "" || strings.HasPrefix(strings.ToLower(name), prefix) {
			out = append(out, name)
		}
		if len(out) == 5 {
			break
		}
	}
	return out
}

func (m *Model) helpLine() string {
	switch {
	case m.edit != editNone:
		return "enter save · esc cancel"
	case m.screen == screenHistory:
		return "↑/↓ select · d delete · esc back"
	case m.screen == screenStats:
		return "esc back"
	default:
		return "a add · x remove · n name · b buy-in · c chips · p paid · $ fill buy-ins · l location · e end game · r reset · h history · s stats · v venmo · q quit"
	}
}

func (m *Model) signedMoney(amount float64) string {
	switch {
	case amount > 0:
		return ProfitStyle.Render("+" + m.money(amount))
	case amount < 0:
		return LossStyle.Render(m.money(amount))
	default:
		return m.money(0)
	}
}

func (m *Model) plainSigned(amount float64) string {
	if amount > 0 {
		return "+" + m.money(amount)
	}
	return m.money(amount)
}
