// Package settings stores the per-layer automapper settings: which config
// of the rule file is selected, the seed, and whether the automapper
// re-runs automatically after every edit.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings is the persisted automapper state of a layer.
type Settings struct {
	// Config is the selected config name; empty means none.
	Config string `toml:"config,omitempty"`
	// Seed of the random rules; 0 picks a fresh seed on every run.
	Seed      uint32 `toml:"seed"`
	Automatic bool   `toml:"automatic"`
}

// HasConfig reports whether a config is selected.
func (s Settings) HasConfig() bool {
	return s.Config != ""
}

// Load reads settings from a TOML file. A missing file yields the zero
// Settings.
func Load(path string) (Settings, error) {
	var s Settings

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return s, nil
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return s, nil
}

// Save writes settings to a TOML file.
func Save(path string, s Settings) error {
	var buf bytes.Buffer

	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
