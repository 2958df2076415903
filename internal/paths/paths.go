// Package paths resolves zwm's per-user file locations.
//
// Layout:
//
//	Config:  $XDG_CONFIG_HOME/zwm/config.yaml, else ~/.config/zwm/config.yaml
//	Log:     ~/.zwm
package paths

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	homeOnce   sync.Once
	homeCached string
)

// Home resolves the user's home directory, falling back to ".".
func Home() string {
	homeOnce.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			homeCached = "."
		} else {
			homeCached = home
		}
	})
	return homeCached
}

// ConfigDir resolves the config directory.
// Priority: XDG_CONFIG_HOME/zwm > ~/.config/zwm
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zwm")
	}
	return filepath.Join(Home(), ".config", "zwm")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogPath returns the default log file path.
func LogPath() string {
	return filepath.Join(Home(), ".zwm")
}

// ResetForTest clears cached values so tests can re-run resolution logic.
// Only use in tests.
func ResetForTest() {
	homeOnce = sync.Once{}
	homeCached = ""
}
