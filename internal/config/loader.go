package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configDir  = ".config/notedeck"
	configFile = "config.json"
)

// rawConfig is the unmarshaling intermediary. Pointers distinguish an
// absent field from its zero value.
type rawConfig struct {
	UI     rawUIConfig   `json:"ui" toml:"ui"`
	Keymap KeymapConfig  `json:"keymap" toml:"keymap"`
	Log    rawLogConfig  `json:"log" toml:"log"`
	Seed   rawSeedConfig `json:"seed" toml:"seed"`
	Auth   rawAuthConfig `json:"auth" toml:"auth"`
}

type rawUIConfig struct {
	InitialMode string      `json:"initialMode" toml:"initialMode"`
	ShowFooter  *bool       `json:"showFooter" toml:"showFooter"`
	Mouse       *bool       `json:"mouse" toml:"mouse"`
	CardWidth   *int        `json:"cardWidth" toml:"cardWidth"`
	Markdown    *bool       `json:"markdown" toml:"markdown"`
	Theme       ThemeConfig `json:"theme" toml:"theme"`
}

type rawLogConfig struct {
	File  string `json:"file" toml:"file"`
	Level string `json:"level" toml:"level"`
}

type rawSeedConfig struct {
	Count *int `json:"count" toml:"count"`
}

type rawAuthConfig struct {
	Delay string `json:"delay" toml:"delay"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notedeck/config.json. A missing file
// yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.Log.File = ExpandPath(cfg.Log.File)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := unmarshal(path, data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	mergeConfig(cfg, &raw)
	cfg.Log.File = ExpandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// unmarshal decodes data in the format implied by the path's extension.
func unmarshal(path string, data []byte, v any) error {
	switch formatOf(path) {
	case "json":
		return json.Unmarshal(data, v)
	case "toml":
		return toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// UI
	if raw.UI.InitialMode != "" {
		cfg.UI.InitialMode = raw.UI.InitialMode
	}
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.Mouse != nil {
		cfg.UI.Mouse = *raw.UI.Mouse
	}
	if raw.UI.CardWidth != nil {
		cfg.UI.CardWidth = *raw.UI.CardWidth
	}
	if raw.UI.Markdown != nil {
		cfg.UI.Markdown = *raw.UI.Markdown
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
	for k, v := range raw.UI.Theme.Overrides {
		cfg.UI.Theme.Overrides[k] = v
	}

	// Keymap
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}

	// Log
	if raw.Log.File != "" {
		cfg.Log.File = raw.Log.File
	}
	if raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}

	// Seed
	if raw.Seed.Count != nil {
		cfg.Seed.Count = *raw.Seed.Count
	}

	// Auth
	if raw.Auth.Delay != "" {
		if d, err := time.ParseDuration(raw.Auth.Delay); err == nil {
			cfg.Auth.Delay = d
		}
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the default config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
