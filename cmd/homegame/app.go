package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lox/homegame/internal/config"
	"github.com/lox/homegame/internal/ledger"
	"github.com/lox/homegame/internal/store"
)

// defaultConfigPath is where commands look for the config file unless told
// otherwise.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".homegame", "config.hcl")
}

// loadApp wires the pieces every command needs: config, store, and a
// session hydrated with the saved history.
func loadApp(configPath string, logger zerolog.Logger) (*config.Config, *ledger.Session, error) {
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.New(cfg.DataDir, logger)
	if err != nil {
		return nil, nil, err
	}

	session := ledger.NewSession(logger, st,
		ledger.WithRosterSize(cfg.DefaultPlayers))
	return cfg, session, nil
}
