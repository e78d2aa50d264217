package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, 4, cfg.DefaultPlayers)
	assert.Equal(t, "$", cfg.Currency)
	require.NotNil(t, cfg.Venmo)
	assert.Equal(t, "venmo://paycharge?txn=pay", cfg.Venmo.AppURL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homegame.hcl")
	content := `
data_dir        = "/tmp/poker"
default_players = 6
currency        = "€"

venmo {
  username = "alice-poker"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/poker", cfg.DataDir)
	assert.Equal(t, 6, cfg.DefaultPlayers)
	assert.Equal(t, "€", cfg.Currency)
	require.NotNil(t, cfg.Venmo)
	assert.Equal(t, "alice-poker", cfg.Venmo.Username)

	// Unset venmo URLs fall back to defaults.
	assert.Equal(t, "venmo://paycharge?txn=pay", cfg.Venmo.AppURL)
	assert.Equal(t, "https://venmo.com/", cfg.Venmo.StoreURL)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homegame.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`data_dir = {`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
