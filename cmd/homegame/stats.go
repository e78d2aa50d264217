package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/homegame/cmd/homegame/shared"
	"github.com/lox/homegame/internal/ledger"
)

// StatsCmd prints one player's game-by-game history, or a leaderboard of
// every player with --all.
type StatsCmd struct {
	Name   string `arg:"" optional:"" help:"Player name (exact, case-sensitive)"`
	All    bool   `kong:"help='Show the leaderboard for every player'"`
	Config string `kong:"help='Path to config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *StatsCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	_, session, err := loadApp(c.Config, logger)
	if err != nil {
		return err
	}

	if c.All {
		return c.runLeaderboard(session)
	}
	if c.Name == "" {
		return fmt.Errorf("provide a player name or --all")
	}

	stats := session.PlayerStats(c.Name)
	if stats.GamesPlayed() == 0 {
		fmt.Printf("no saved games for %s\n", c.Name)
		return nil
	}

	fmt.Printf("%s: %d games, net %+.2f (best %+.2f, worst %+.2f)\n",
		stats.Name, stats.GamesPlayed(), stats.NetProfit(), stats.BestGame(), stats.WorstGame())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tNET")
	for _, p := range stats.PointsDescending() {
		fmt.Fprintf(w, "%s\t%+.2f\n", p.Date.Format("2006-01-02"), p.ProfitLoss)
	}
	return w.Flush()
}

func (c *StatsCmd) runLeaderboard(session *ledger.Session) error {
	lines, err := ledger.Leaderboard(context.Background(), session.Games())
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Println("no saved games")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tGAMES\tNET\tBEST\tWORST")
	for _, l := range lines {
		fmt.Fprintf(w, "%s\t%d\t%+.2f\t%+.2f\t%+.2f\n",
			l.Name, l.Games, l.NetProfit, l.BestGame, l.WorstGame)
	}
	return w.Flush()
}
