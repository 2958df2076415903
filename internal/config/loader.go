package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/zwm/internal/paths"
)

// Load reads the config file at path (the default location when empty).
// A missing file yields the built-in configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		path = paths.ConfigPath()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadWith loads the config named by o (or the default path), applies o on
// top and validates the result.
func LoadWith(o Overrides) (*Config, error) {
	cfg, err := Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Apply(o)
	if cfg.LogFile == "" {
		cfg.LogFile = paths.LogPath()
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
