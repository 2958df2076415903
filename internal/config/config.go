package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/zwm/internal/model"
)

// ErrUnknownAction is returned when a binding names no known action.
var ErrUnknownAction = errors.New("unknown action")

// Config captures runtime configuration for the window manager.
type Config struct {
	Modifier string          `yaml:"modifier"`
	Terminal string          `yaml:"terminal"`
	Browser  string          `yaml:"browser"`
	LogFile  string          `yaml:"log_file"`
	Debug    bool            `yaml:"debug"`
	Bindings []model.Binding `yaml:"bindings"`
}

const (
	envConfig  = "ZWM_CONFIG"
	envLogFile = "ZWM_LOG_FILE"
	envDebug   = "ZWM_DEBUG"

	defaultModifier = "Mod1"
	defaultTerminal = "st"
	defaultBrowser  = "chromium"
)

// Overrides are values taken from flags or the environment; they win over
// the config file.
type Overrides struct {
	ConfigPath string
	LogFile    string
	Debug      bool
}

// OverridesFromEnv reads ZWM_CONFIG, ZWM_LOG_FILE and ZWM_DEBUG.
func OverridesFromEnv(environ []string) Overrides {
	env := parseEnv(environ)
	return Overrides{
		ConfigPath: envOrDefault(env, envConfig, ""),
		LogFile:    envOrDefault(env, envLogFile, ""),
		Debug:      envOrBool(env, envDebug, false),
	}
}

// Apply layers o over cfg.
func (cfg *Config) Apply(o Overrides) {
	if strings.TrimSpace(o.LogFile) != "" {
		cfg.LogFile = o.LogFile
	}
	if o.Debug {
		cfg.Debug = true
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// DefaultBindings is the built-in key table, relative to the modifier.
func DefaultBindings(terminal, browser string) []model.Binding {
	bindings := []model.Binding{
		{Key: "Return", Action: model.ActionSpawn, Arg: terminal},
		{Key: "b", Action: model.ActionSpawn, Arg: browser},
		{Key: "Shift-c", Action: model.ActionClose},
		{Key: "Shift-q", Action: model.ActionQuit},
		{Key: "Tab", Action: model.ActionWorkspaceBack},
		{Key: "n", Action: model.ActionNextClient},
		{Key: "m", Action: model.ActionNextScreen},
	}
	for _, k := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"} {
		bindings = append(bindings, model.Binding{Key: k, Action: model.ActionWorkspace, Arg: k})
	}
	return bindings
}

func applyDefaults(cfg *Config) {
	if cfg.Modifier == "" {
		cfg.Modifier = defaultModifier
	}
	if cfg.Terminal == "" {
		cfg.Terminal = defaultTerminal
	}
	if cfg.Browser == "" {
		cfg.Browser = defaultBrowser
	}
	if len(cfg.Bindings) == 0 {
		cfg.Bindings = DefaultBindings(cfg.Terminal, cfg.Browser)
	}
}

// Validate checks every binding and normalises action names.
func Validate(cfg *Config) error {
	for i := range cfg.Bindings {
		b := &cfg.Bindings[i]
		if strings.TrimSpace(b.Key) == "" {
			return fmt.Errorf("binding %d: key is required", i)
		}
		action, err := model.ParseAction(string(b.Action))
		if err != nil {
			return fmt.Errorf("binding %q: %w: %q", b.Key, ErrUnknownAction, b.Action)
		}
		b.Action = action
		switch action {
		case model.ActionSpawn:
			if strings.TrimSpace(b.Arg) == "" {
				return fmt.Errorf("binding %q: spawn needs a command", b.Key)
			}
		case model.ActionWorkspace:
			if _, err := ParseWorkspace(b.Arg); err != nil {
				return fmt.Errorf("binding %q: %w", b.Key, err)
			}
		}
	}
	return nil
}

// ParseWorkspace parses a single-digit workspace argument.
func ParseWorkspace(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 0 || n > 9 {
		return 0, fmt.Errorf("workspace must be 0-9 (got %q)", arg)
	}
	return n, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
