package main

import (
	"fmt"

	"github.com/lox/homegame/cmd/homegame/shared"
)

// RenameCmd rewrites a player name inside one saved game. Only the name
// changes; the recorded amounts and totals stay as they were at game end.
type RenameCmd struct {
	GameID  string `arg:"" help:"Game ID (see 'homegame history')"`
	From    string `arg:"" help:"Current player name in that game"`
	To      string `arg:"" help:"Corrected name"`
	Config  string `kong:"help='Path to config file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *RenameCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	_, session, err := loadApp(c.Config, logger)
	if err != nil {
		return err
	}

	game, ok := findGame(session, c.GameID)
	if !ok {
		return fmt.Errorf("no saved game with ID %s", c.GameID)
	}

	for _, r := range game.Results {
		if r.Name == c.From {
			if err := session.UpdatePlayerName(game.ID, r.ID, c.To); err != nil {
				return err
			}
			fmt.Printf("renamed %s to %s in game %s\n", c.From, c.To, game.ID)
			return nil
		}
	}
	return fmt.Errorf("no player named %s in game %s", c.From, c.GameID)
}
