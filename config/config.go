// Package config loads the interactive-session settings from the user's
// XDG config directory.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

type Config struct {
	// Prompt is printed before each interactive input line.
	Prompt string `toml:"prompt"`
	// HistoryFile is where the REPL persists its input history.
	HistoryFile string `toml:"history_file"`
}

func Default() Config {
	return Config{
		Prompt:      ">> ",
		HistoryFile: filepath.Join(xdg.DataHome, "skink", "history"),
	}
}

// Load reads skink/config.toml from the XDG config search path. A missing
// file yields the defaults; a malformed one is an error. Settings absent
// from the file keep their default values.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(filepath.Join("skink", "config.toml"))
	if err != nil {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile reads one TOML config file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}
