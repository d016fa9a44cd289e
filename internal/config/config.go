// Package config loads notedeck settings from JSON or TOML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrUnsupportedFormat is returned for config files that are neither JSON nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Config is the root configuration.
type Config struct {
	UI     UIConfig
	Keymap KeymapConfig
	Log    LogConfig
	Seed   SeedConfig
	Auth   AuthConfig
}

// UIConfig configures UI appearance.
type UIConfig struct {
	// InitialMode is the mode shown at startup. Applied at startup only.
	InitialMode string
	ShowFooter  bool
	Mouse       bool
	// CardWidth is the outer width of a note card in columns.
	CardWidth int
	// Markdown renders card bodies through glamour.
	Markdown bool
	Theme    ThemeConfig
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name" toml:"name"`
	Overrides map[string]string `json:"overrides,omitempty" toml:"overrides,omitempty"`
}

// KeymapConfig holds key binding overrides, key -> command id.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides" toml:"overrides"`
}

// LogConfig configures the log file.
type LogConfig struct {
	File  string
	Level string
}

// SeedConfig controls the sample cards created at startup.
type SeedConfig struct {
	Count int
}

// AuthConfig configures the stub authenticator.
type AuthConfig struct {
	// Delay simulates request latency so the loading panel is visible.
	Delay time.Duration
}

const (
	defaultCardWidth = 36
	minCardWidth     = 16
	defaultAuthDelay = 400 * time.Millisecond
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			InitialMode: "normal",
			ShowFooter:  true,
			Mouse:       true,
			CardWidth:   defaultCardWidth,
			Theme: ThemeConfig{
				Name:      "dark",
				Overrides: make(map[string]string),
			},
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		Log: LogConfig{
			File:  "~/.config/notedeck/notedeck.log",
			Level: "info",
		},
		Auth: AuthConfig{
			Delay: defaultAuthDelay,
		},
	}
}

// Validate corrects out-of-range values and rejects unknown log levels.
func (c *Config) Validate() error {
	if c.UI.CardWidth < minCardWidth {
		c.UI.CardWidth = defaultCardWidth
	}
	if c.Seed.Count < 0 {
		c.Seed.Count = 0
	}
	if c.Auth.Delay < 0 {
		c.Auth.Delay = defaultAuthDelay
	}
	if strings.TrimSpace(c.UI.InitialMode) == "" {
		c.UI.InitialMode = "normal"
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a config log level to slog. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", s)
	}
}
