package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/homegame/internal/ledger"
)

type memStore struct {
	games []ledger.GameLog
}

func (m *memStore) Save(games []ledger.GameLog) error {
	m.games = append([]ledger.GameLog(nil), games...)
	return nil
}

func (m *memStore) Load() ([]ledger.GameLog, error) {
	return append([]ledger.GameLog(nil), m.games...), nil
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	session := ledger.NewSession(zerolog.Nop(), &memStore{})
	return New(session, log.New(io.Discard), Options{})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAddAndRemovePlayerKeys(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("a"))
	assert.Len(t, m.session.Players(), 5)

	m.Update(key("x"))
	assert.Len(t, m.session.Players(), 4)
}

func TestEditBuyInCommitsThroughSession(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("b"))
	require.NotEqual(t, editNone, m.edit)

	m.input.SetValue("50")
	m.Update(key("enter"))

	assert.Equal(t, editNone, m.edit)
	assert.Equal(t, 50.0, m.session.Players()[0].BuyIn)
	assert.Equal(t, 50.0, m.session.TotalInPlay())
}

func TestEditEscCancels(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("b"))
	m.input.SetValue("50")
	m.Update(key("esc"))

	assert.Equal(t, editNone, m.edit)
	assert.Zero(t, m.session.Players()[0].BuyIn)
}

func TestEndGameKeySavesAndResets(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("b"))
	m.input.SetValue("50")
	m.Update(key("enter"))

	m.Update(key("e"))

	assert.Len(t, m.session.Games(), 1)
	assert.Zero(t, m.session.TotalInPlay())
}

func TestHistoryScreenToggle(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("h"))
	assert.Equal(t, screenHistory, m.screen)

	m.Update(key("esc"))
	assert.Equal(t, screenSession, m.screen)
}

func TestViewRendersRoster(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	assert.Contains(t, view, "Player 1")
	assert.Contains(t, view, "total")
}
