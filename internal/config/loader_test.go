package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.InitialMode != "normal" {
		t.Errorf("got initial mode %q, want 'normal'", cfg.UI.InitialMode)
	}
	if !cfg.UI.ShowFooter {
		t.Error("footer should be shown by default")
	}
	if !cfg.UI.Mouse {
		t.Error("mouse should be enabled by default")
	}
	if cfg.UI.CardWidth != 36 {
		t.Errorf("got card width %d, want 36", cfg.UI.CardWidth)
	}
	if cfg.Seed.Count != 0 {
		t.Errorf("got seed count %d, want 0", cfg.Seed.Count)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Error("should return default config")
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"ui": {
			"showFooter": false,
			"cardWidth": 40,
			"markdown": true,
			"theme": {"name": "light", "overrides": {"primary": "#123456"}}
		},
		"keymap": {"overrides": {"a": "new-note"}},
		"seed": {"count": 5},
		"auth": {"delay": "1s"}
	}`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.UI.ShowFooter {
		t.Error("showFooter should be false")
	}
	if cfg.UI.CardWidth != 40 {
		t.Errorf("got card width %d, want 40", cfg.UI.CardWidth)
	}
	if !cfg.UI.Markdown {
		t.Error("markdown should be enabled")
	}
	if cfg.UI.Theme.Name != "light" {
		t.Errorf("got theme %q, want light", cfg.UI.Theme.Name)
	}
	if diff := cmp.Diff(map[string]string{"primary": "#123456"}, cfg.UI.Theme.Overrides); diff != "" {
		t.Errorf("theme overrides mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"a": "new-note"}, cfg.Keymap.Overrides); diff != "" {
		t.Errorf("keymap overrides mismatch (-want +got):\n%s", diff)
	}
	if cfg.Seed.Count != 5 {
		t.Errorf("got seed count %d, want 5", cfg.Seed.Count)
	}
	if cfg.Auth.Delay != time.Second {
		t.Errorf("got auth delay %v, want 1s", cfg.Auth.Delay)
	}
	// Default values should still be present
	if !cfg.UI.Mouse {
		t.Error("mouse should still be enabled (default)")
	}
	if cfg.UI.InitialMode != "normal" {
		t.Errorf("got initial mode %q, want default", cfg.UI.InitialMode)
	}
}

func TestLoadFrom_ValidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := []byte(`
[ui]
initialMode = "login"
mouse = false
cardWidth = 30

[ui.theme]
name = "light"

[keymap.overrides]
x = "delete-note"

[log]
level = "debug"

[seed]
count = 3
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.UI.InitialMode != "login" {
		t.Errorf("InitialMode = %q, want %q", cfg.UI.InitialMode, "login")
	}
	if cfg.UI.Mouse {
		t.Error("mouse should be disabled")
	}
	if cfg.UI.CardWidth != 30 {
		t.Errorf("CardWidth = %d, want 30", cfg.UI.CardWidth)
	}
	if cfg.UI.Theme.Name != "light" {
		t.Errorf("Theme.Name = %q, want %q", cfg.UI.Theme.Name, "light")
	}
	if cfg.Keymap.Overrides["x"] != "delete-note" {
		t.Errorf("Keymap.Overrides[x] = %q, want delete-note", cfg.Keymap.Overrides["x"])
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Seed.Count != 3 {
		t.Errorf("Seed.Count = %d, want 3", cfg.Seed.Count)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{invalid`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Error("should error on invalid JSON")
	}
}

func TestLoadFrom_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte("a=b"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got error %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFrom_UnknownLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"log": {"level": "loud"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("should error on unknown log level")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input  string
		expect string
	}{
		{"~/.config/notedeck", filepath.Join(home, ".config/notedeck")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tc := range tests {
		got := ExpandPath(tc.input)
		if got != tc.expect {
			t.Errorf("ExpandPath(%q) = %q, want %q", tc.input, got, tc.expect)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.UI.CardWidth = 4
	cfg.Seed.Count = -2
	cfg.UI.InitialMode = "  "

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	// Out-of-range values should be corrected
	if cfg.UI.CardWidth != 36 {
		t.Errorf("got card width %d, want 36 after validation", cfg.UI.CardWidth)
	}
	if cfg.Seed.Count != 0 {
		t.Errorf("got seed count %d, want 0 after validation", cfg.Seed.Count)
	}
	if cfg.UI.InitialMode != "normal" {
		t.Errorf("got initial mode %q, want normal after validation", cfg.UI.InitialMode)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"DEBUG", false},
		{"warning", false},
		{"error", false},
		{"verbose", true},
	}
	for _, tc := range tests {
		_, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
	}
}
