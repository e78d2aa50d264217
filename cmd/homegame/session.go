package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/homegame/cmd/homegame/shared"
	"github.com/lox/homegame/internal/tui"
	"github.com/lox/homegame/internal/venmo"
)

// SessionCmd runs the interactive ledger for a live game.
type SessionCmd struct {
	Config  string `kong:"help='Path to config file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
	LogFile string `kong:"help='Write TUI logs to this file'"`
}

func (c *SessionCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, session, err := loadApp(c.Config, logger)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so its logger goes to a file or nowhere.
	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	tuiLogger := log.New(logOut)
	if c.Debug {
		tuiLogger.SetLevel(log.DebugLevel)
	}

	model := tui.New(session, tuiLogger, tui.Options{
		Currency:   cfg.Currency,
		VenmoApp:   venmo.PayURL(cfg.Venmo.AppURL, cfg.Venmo.Username),
		VenmoStore: cfg.Venmo.StoreURL,
		Launcher:   venmo.NewLauncher(logger),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
