// Package tui is the single-screen terminal UI for a live game: the roster
// with buy-ins and chip counts, derived totals, and secondary views for the
// saved history and per-player statistics. It owns no game state; every
// mutation goes through the ledger.Session passed in.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/homegame/internal/ledger"
	"github.com/lox/homegame/internal/venmo"
)

type screen int

const (
	screenSession screen = iota
	screenHistory
	screenStats
)

type editField int

const (
	editNone editField = iota
	editName
	editBuyIn
	editChips
	editFillBuyIn
	editLocation
)

// Model is the Bubble Tea model for the ledger screens.
type Model struct {
	session  *ledger.Session
	launcher *venmo.Launcher
	logger   *log.Logger

	currency   string
	venmoApp   string
	venmoStore string

	screen screen
	cursor int
	edit   editField
	input  textinput.Model
	status string

	historyCursor int
	statsName     string

	width    int
	height   int
	quitting bool
}

// Options configures the TUI.
type Options struct {
	Currency   string
	VenmoApp   string
	VenmoStore string
	Launcher   *venmo.Launcher
}

// New creates the TUI model around a session.
func New(session *ledger.Session, logger *log.Logger, opts Options) *Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 24
	ti.Prompt = "> "

	if opts.Currency == "" {
		opts.Currency = "$"
	}

	return &Model{
		session:    session,
		launcher:   opts.Launcher,
		logger:     logger.WithPrefix("tui"),
		currency:   opts.Currency,
		venmoApp:   opts.VenmoApp,
		venmoStore: opts.VenmoStore,
		input:      ti,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.edit != editNone {
			return m.updateEditing(msg)
		}
		switch m.screen {
		case screenHistory:
			return m.updateHistory(msg)
		case screenStats:
			return m.updateStats(msg)
		default:
			return m.updateSession(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	players := m.session.Players()

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(players)-1 {
			m.cursor++
		}
	case "a":
		p := m.session.AddPlayer()
		m.cursor = len(players)
		m.status = fmt.Sprintf("added %s", p.Name)
	case "x":
		if p, ok := m.selectedPlayer(); ok {
			m.session.RemovePlayer(p.ID)
			if m.cursor > 0 {
				m.cursor--
			}
			m.status = fmt.Sprintf("removed %s", p.Name)
		}
	case "p":
		if p, ok := m.selectedPlayer(); ok {
			m.session.SetPlayerPaid(p.ID, !p.PaidExternally)
		}
	case "n":
		if p, ok := m.selectedPlayer(); ok {
			m.startEdit(editName, p.Name, "name")
		}
	case "b":
		if p, ok := m.selectedPlayer(); ok {
			m.startEdit(editBuyIn, trimZero(p.BuyIn), "buy-in")
		}
	case "c":
		if p, ok := m.selectedPlayer(); ok {
			m.startEdit(editChips, trimZero(p.ChipCount), "chips")
		}
	case "$":
		m.startEdit(editFillBuyIn, m.session.BuyInText(), "buy-in for all")
	case "l":
		m.startEdit(editLocation, m.session.Location(), "location")
	case "e":
		game, err := m.session.EndAndSaveGame()
		switch {
		case err != nil:
			m.status = fmt.Sprintf("game recorded, save failed: %v", err)
		case !game.IsBalanced():
			m.status = fmt.Sprintf("game saved (off by %s)", m.money(game.TotalChipCount-game.TotalBuyIn))
		default:
			m.status = "game saved"
		}
		m.cursor = 0
	case "r":
		m.session.ResetGame()
		m.cursor = 0
		m.status = "roster reset"
	case "h":
		m.screen = screenHistory
		m.historyCursor = 0
	case "s":
		if p, ok := m.selectedPlayer(); ok {
			m.statsName = p.Name
			m.screen = screenStats
		}
	case "v":
		m.openVenmo()
	}
	return m, nil
}

func (m *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	games := m.session.Games()

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	case "esc", "q", "h":
		m.screen = screenSession
	case "up", "k":
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case "down", "j":
		if m.historyCursor < len(games)-1 {
			m.historyCursor++
		}
	case "d":
		if m.historyCursor < len(games) {
			g := games[m.historyCursor]
			if err := m.session.DeleteGame(g.ID); err != nil {
				m.status = fmt.Sprintf("deleted, save failed: %v", err)
			} else {
				m.status = "game deleted"
			}
			if m.historyCursor > 0 {
				m.historyCursor--
			}
		}
	}
	return m, nil
}

func (m *Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	case "esc", "q", "s":
		m.screen = screenSession
	}
	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	case "esc":
		m.edit = editNone
		m.input.Blur()
		return m, nil
	case "enter":
		m.commitEdit(strings.TrimSpace(m.input.Value()))
		m.edit = editNone
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) startEdit(field editField, value, placeholder string) {
	m.edit = field
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// commitEdit applies the entered value through the session. Unparseable
// amounts are silently ignored by the session, matching the rest of the
// ledger's lenient input handling.
func (m *Model) commitEdit(value string) {
	p, ok := m.selectedPlayer()

	switch m.edit {
	case editName:
		if ok && value != "" {
			m.session.SetPlayerName(p.ID, value)
		}
	case editBuyIn:
		if ok {
			m.session.SetPlayerBuyIn(p.ID, value)
		}
	case editChips:
		if ok {
			m.session.SetPlayerChipCount(p.ID, value)
		}
	case editFillBuyIn:
		m.session.SetBuyInText(value)
		m.session.PopulateAmounts(value)
	case editLocation:
		m.session.SetLocation(value)
	}
}

func (m *Model) selectedPlayer() (ledger.Player, bool) {
	players := m.session.Players()
	if m.cursor < 0 || m.cursor >= len(players) {
		return ledger.Player{}, false
	}
	return players[m.cursor], true
}

func (m *Model) openVenmo() {
	if m.launcher == nil {
		return
	}
	if err := m.launcher.Open(m.venmoApp, m.venmoStore); err != nil {
		m.logger.Debug("venmo launch failed", "err", err)
		m.status = "could not open venmo"
		return
	}
	m.status = "opened venmo"
}

func (m *Model) money(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-%s%.2f", m.currency, -amount)
	}
	return fmt.Sprintf("%s%.2f", m.currency, amount)
}

func trimZero(amount float64) string {
	if amount == 0 {
		return ""
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), ".")
}
