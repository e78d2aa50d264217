// Package config loads the homegame configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete application configuration.
type Config struct {
	DataDir        string       `hcl:"data_dir,optional"`
	DefaultPlayers int          `hcl:"default_players,optional"`
	Currency       string       `hcl:"currency,optional"`
	Venmo          *VenmoConfig `hcl:"venmo,block"`
}

// VenmoConfig configures the payment deep link.
type VenmoConfig struct {
	Username string `hcl:"username,optional"`
	AppURL   string `hcl:"app_url,optional"`
	StoreURL string `hcl:"store_url,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DataDir:        filepath.Join(home, ".homegame"),
		DefaultPlayers: 4,
		Currency:       "$",
		Venmo: &VenmoConfig{
			AppURL:   "venmo://paycharge?txn=pay",
			StoreURL: "https://venmo.com/",
		},
	}
}

// Load reads configuration from an HCL file. A missing file returns the
// defaults; a present file is parsed strictly and back-filled with defaults
// for anything left unset.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.DefaultPlayers <= 0 {
		cfg.DefaultPlayers = defaults.DefaultPlayers
	}
	if cfg.Currency == "" {
		cfg.Currency = defaults.Currency
	}
	if cfg.Venmo == nil {
		cfg.Venmo = defaults.Venmo
	} else {
		if cfg.Venmo.AppURL == "" {
			cfg.Venmo.AppURL = defaults.Venmo.AppURL
		}
		if cfg.Venmo.StoreURL == "" {
			cfg.Venmo.StoreURL = defaults.Venmo.StoreURL
		}
	}

	return &cfg, nil
}
