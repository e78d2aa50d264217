package main

import (
	"github.com/lox/homegame/cmd/homegame/shared"
	"github.com/lox/homegame/internal/config"
	"github.com/lox/homegame/internal/venmo"
)

// VenmoCmd opens the payment deep link, falling back to the web page when
// the app is not installed.
type VenmoCmd struct {
	Config string `kong:"help='Path to config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *VenmoCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	path := c.Config
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	launcher := venmo.NewLauncher(logger)
	return launcher.Open(venmo.PayURL(cfg.Venmo.AppURL, cfg.Venmo.Username), cfg.Venmo.StoreURL)
}
