package main

import (
	"fmt"

	"github.com/lox/homegame/cmd/homegame/shared"
)

// NamesCmd lists every unique player name across the saved history.
type NamesCmd struct {
	Config string `kong:"help='Path to config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *NamesCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	_, session, err := loadApp(c.Config, logger)
	if err != nil {
		return err
	}

	for _, name := range session.UniquePlayerNames() {
		fmt.Println(name)
	}
	return nil
}
