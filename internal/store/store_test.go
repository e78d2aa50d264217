package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/homegame/internal/ledger"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	games, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	endedAt := time.Date(2025, time.March, 14, 22, 30, 0, 0, time.UTC)
	games := []ledger.GameLog{
		{
			ID:              "01hq3ksy8vx2m0p7rwtc94ndfa",
			EndedAt:         endedAt,
			DurationMinutes: 180,
			Location:        "garage",
			Results: []ledger.PlayerResult{
				{ID: "a", Name: "Alice", BuyIn: 50, FinalChipCount: 80.25, PaidExternally: true},
				{ID: "b", Name: "Bob", BuyIn: 50, FinalChipCount: 19.75},
			},
			TotalBuyIn:     100,
			TotalChipCount: 100,
		},
		{
			ID:      "01hq3kt2dm8e5kfjq0w6y3bcze",
			EndedAt: endedAt.Add(24 * time.Hour),
			Results: []ledger.PlayerResult{},
		},
	}

	require.NoError(t, s.Save(games))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, games[0].ID, loaded[0].ID)
	assert.True(t, games[0].EndedAt.Equal(loaded[0].EndedAt))
	assert.Equal(t, games[0].DurationMinutes, loaded[0].DurationMinutes)
	assert.Equal(t, games[0].Location, loaded[0].Location)
	assert.Equal(t, games[0].Results, loaded[0].Results)
	assert.Equal(t, games[0].TotalBuyIn, loaded[0].TotalBuyIn)
	assert.Equal(t, games[0].TotalChipCount, loaded[0].TotalChipCount)
	assert.Equal(t, games[1].ID, loaded[1].ID)
}

func TestSaveEmptyCollection(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(nil))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSaveOverwritesWhole(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save([]ledger.GameLog{{ID: "one"}, {ID: "two"}}))
	require.NoError(t, s.Save([]ledger.GameLog{{ID: "three"}}))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "three", loaded[0].ID)
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, os.WriteFile(s.Path(), []byte("not json{"), 0o644))

	// Corrupt data degrades to an empty history; the error is reported so
	// callers can log it, never so they can block on it.
	games, err := s.Load()
	require.Error(t, err)
	assert.Empty(t, games)
}

func TestNewCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := New(dir, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Save(nil))

	_, statErr := os.Stat(s.Path())
	assert.NoError(t, statErr)
}
