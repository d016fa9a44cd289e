package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid uppercase", "#FF5500", true},
		{"valid lowercase", "#aabbcc", true},
		{"valid with alpha", "#00000080", true},
		{"invalid 3-char", "#FFF", false},
		{"invalid 7-char", "#FF55001", false},
		{"no hash", "FF5500", false},
		{"invalid char", "#GGGGGG", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidHexColor(tt.input)
			if got != tt.valid {
				t.Errorf("IsValidHexColor(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestApplyTheme(t *testing.T) {
	defer ApplyTheme("dark")

	ApplyTheme("light")
	if GetCurrentThemeName() != "light" {
		t.Errorf("got theme %q, want light", GetCurrentThemeName())
	}
	if Primary != lipgloss.Color(LightTheme.Colors.Primary) {
		t.Errorf("got primary %v, want %v", Primary, LightTheme.Colors.Primary)
	}
	if CurrentMarkdownTheme != "light" {
		t.Errorf("got markdown theme %q, want light", CurrentMarkdownTheme)
	}
}

func TestApplyTheme_UnknownFallsBackToDark(t *testing.T) {
	defer ApplyTheme("dark")

	ApplyTheme("solarized")
	if GetCurrentThemeName() != "dark" {
		t.Errorf("got theme %q, want dark", GetCurrentThemeName())
	}
}

func TestApplyThemeWithOverrides(t *testing.T) {
	defer ApplyTheme("dark")

	ApplyThemeWithOverrides("dark", map[string]string{
		"primary": "#123456",
		"error":   "not-a-color",
	})
	if Primary != lipgloss.Color("#123456") {
		t.Errorf("got primary %v, want #123456", Primary)
	}
	if Error != lipgloss.Color(DarkTheme.Colors.Error) {
		t.Errorf("invalid override should be ignored, got %v", Error)
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dark", "light"},
		{"light", "dark"},
		{"unknown", "dark"},
	}
	for _, tc := range tests {
		if got := NextTheme(tc.in); got != tc.want {
			t.Errorf("NextTheme(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
