// Package store persists the finished-game collection as a single JSON file
// in the data directory. Every save rewrites the whole collection through an
// atomic rename; there are no deltas, no versioning, and exactly one local
// writer, so last-writer-wins is safe.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lox/homegame/internal/fileutil"
	"github.com/lox/homegame/internal/ledger"
)

const filename = "games.json"

// FileStore reads and writes the game history under a fixed path.
type FileStore struct {
	path   string
	logger zerolog.Logger
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, filename), logger: logger}, nil
}

// Path returns the file the history is stored in.
func (s *FileStore) Path() string { return s.path }

// Save serializes the full collection and replaces the file atomically.
func (s *FileStore) Save(games []ledger.GameLog) error {
	if games == nil {
		games = []ledger.GameLog{}
	}
	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode games: %w", err)
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	s.logger.Debug().Int("games", len(games)).Str("path", s.path).Msg("saved game history")
	return nil
}

// Load reads the saved collection. A missing file is a fresh install and
// returns an empty collection with no error. Read and decode failures also
// return an empty collection, with the error alongside so callers can log
// it; nothing in the app blocks on it.
func (s *FileStore) Load() ([]ledger.GameLog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []ledger.GameLog{}, nil
	}
	if err != nil {
		return []ledger.GameLog{}, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var games []ledger.GameLog
	if err := json.Unmarshal(data, &games); err != nil {
		return []ledger.GameLog{}, fmt.Errorf("store: decode %s: %w", s.path, err)
	}
	return games, nil
}
