package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Session SessionCmd       `cmd:"" default:"1" help:"Track a live game"`
	History HistoryCmd       `cmd:"" help:"Work with saved games"`
	Rename  RenameCmd        `cmd:"" help:"Correct a player name in a saved game"`
	Stats   StatsCmd         `cmd:"" help:"Show a player's history, or the leaderboard"`
	Names   NamesCmd         `cmd:"" help:"List every player name in the history"`
	Venmo   VenmoCmd         `cmd:"" help:"Open the Venmo payment link"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("homegame"),
		kong.Description("Chip and buy-in ledger for home poker games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
