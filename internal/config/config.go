package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsKey is the reserved settings key holding hidden folders.
// Folder entries moved out of the descriptor's folder list are parked here.
const DefaultSettingsKey = "wsfold.hiddenFolders"

// DefaultIndent is the indentation width used when rewriting descriptors.
const DefaultIndent = 4

// Config holds the tool-level configuration loaded from config.yaml.
type Config struct {
	// SettingsKey is the descriptor settings key the hidden-folder list is
	// stored under.
	SettingsKey string `yaml:"settingsKey"`

	// Indent is the number of spaces per indentation level when rewriting
	// the descriptor.
	Indent int `yaml:"indent"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		SettingsKey: DefaultSettingsKey,
		Indent:      DefaultIndent,
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// unset fields fall back to their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.SettingsKey == "" {
		cfg.SettingsKey = DefaultSettingsKey
	}
	if cfg.Indent <= 0 {
		cfg.Indent = DefaultIndent
	}

	return cfg, nil
}
