package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// SaveTheme rewrites only ui.theme.name in the file at path, keeping every
// other key, including ones this package does not know about.
func SaveTheme(path, themeName string) error {
	if path == "" {
		path = ConfigPath()
	}
	path = ExpandPath(path)

	doc := make(map[string]any)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := unmarshal(path, data, &doc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		if formatOf(path) == "" {
			return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
		}
	default:
		return fmt.Errorf("read config: %w", err)
	}

	ui := childTable(doc, "ui")
	theme := childTable(ui, "theme")
	theme["name"] = themeName

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var out []byte
	if formatOf(path) == "toml" {
		out, err = toml.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}

// childTable returns parent[key] as a table, replacing it if it is not one.
func childTable(parent map[string]any, key string) map[string]any {
	if m, ok := parent[key].(map[string]any); ok {
		return m
	}
	m := make(map[string]any)
	parent[key] = m
	return m
}
