package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/homegame/cmd/homegame/shared"
	"github.com/lox/homegame/internal/ledger"
)

// HistoryCmd groups the saved-game utilities.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" default:"1" help:"List saved games"`
	Show   HistoryShowCmd   `cmd:"" help:"Show one saved game in full"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a saved game"`
}

// HistoryListCmd prints one line per saved game.
type HistoryListCmd struct {
	Config string `kong:"help='Path to config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *HistoryListCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	_, session, err := loadApp(c.Config, logger)
	if err != nil {
		return err
	}

	games := session.Games()
	if len(games) == 0 {
		fmt.Println("no saved games")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENDED\tPLAYERS\tIN PLAY\tBALANCE")
	for _, g := range games {
		balance := "ok"
		if !g.IsBalanced() {
			balance = fmt.Sprintf("off by %+.2f", g.TotalChipCount-g.TotalBuyIn)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%s\n",
			g.ID, g.EndedAt.Format("2006-01-02"), len(g.Results), g.TotalBuyIn, balance)
	}
	return w.Flush()
}

// HistoryShowCmd prints a full per-player breakdown of one game.
type HistoryShowCmd struct {
	ID     string `arg:"" help:"Game ID"`
	Config string `kong:"help='Path to config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *HistoryShowCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	_, session, err := loadApp(c.Config, logger)
	if err != nil {
		return err
	}

	game, ok := findGame(session, c.ID)
	if !ok {
		return fmt.Errorf("no saved game with ID %s", c.ID)
	}

	fmt.Printf("%s  %s", game.ID, game.EndedAt.Format("Mon Jan 2 2006 15:04"))
	if game.Location != "" {
		fmt.Printf("  at %s", game.Location)
	}
	if game.DurationMinutes > 0 {
		fmt.Printf("  (%dm)", game.DurationMinutes)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tBUY-IN\tCHIPS\tNET\tPAID")
	for _, r := range game.Results {
		paid := ""
		if r.PaidExternally {
			paid = "yes"
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%+.2f\t%s\n",
			r.Name, r.BuyIn, r.FinalChipCount, r.ProfitLoss(), paid)
	}
	fmt.Fprintf(w, "total\t%.2f\t%.2f\t\t\n", game.TotalBuyIn, game.TotalChipCount)
	if err := w.Flush(); err != nil {
		return err
	}

	if !game.IsBalanced() {
		fmt.Printf("table was off by %+.2f\n", game.TotalChipCount-game.TotalBuyIn)
	}
	return nil
}

// HistoryDeleteCmd removes a saved game.
type HistoryDeleteCmd struct {
	ID     string `arg:"" help:"Game ID"`
	Config string `kong:"help='Path to config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *HistoryDeleteCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	_, session, err := loadApp(c.Config, logger)
	if err != nil {
		return err
	}

	if _, ok := findGame(session, c.ID); !ok {
		return fmt.Errorf("no saved game with ID %s", c.ID)
	}
	if err := session.DeleteGame(c.ID); err != nil {
		return err
	}
	fmt.Printf("deleted game %s\n", c.ID)
	return nil
}

func findGame(session *ledger.Session, id string) (ledger.GameLog, bool) {
	for _, g := range session.Games() {
		if g.ID == id {
			return g, true
		}
	}
	return ledger.GameLog{}, false
}
