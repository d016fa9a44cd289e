package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu guards themeRegistry and currentTheme.
var themeMu sync.RWMutex

// hexColorRegex validates #RRGGBB and #RRGGBBAA.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors.
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`

	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`
	TextSubtle    string `json:"textSubtle"`

	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`
	BgTertiary  string `json:"bgTertiary"`

	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	ToastSuccessText string `json:"toastSuccessText"`
	ToastErrorText   string `json:"toastErrorText"`

	// MarkdownTheme is a glamour standard style name, not a color.
	MarkdownTheme string `json:"markdownTheme"`
}

// Theme is a named palette.
type Theme struct {
	Name        string
	DisplayName string
	Colors      ColorPalette
}

var (
	DarkTheme = Theme{
		Name:        "dark",
		DisplayName: "Dark",
		Colors: ColorPalette{
			Primary:          "#7C3AED",
			Secondary:        "#3B82F6",
			Accent:           "#F59E0B",
			Success:          "#10B981",
			Warning:          "#F59E0B",
			Error:            "#EF4444",
			TextPrimary:      "#F9FAFB",
			TextSecondary:    "#9CA3AF",
			TextMuted:        "#6B7280",
			TextSubtle:       "#4B5563",
			BgPrimary:        "#111827",
			BgSecondary:      "#1F2937",
			BgTertiary:       "#374151",
			BorderNormal:     "#374151",
			BorderActive:     "#7C3AED",
			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",
			MarkdownTheme:    "dark",
		},
	}

	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary:          "#6D28D9",
			Secondary:        "#2563EB",
			Accent:           "#D97706",
			Success:          "#059669",
			Warning:          "#D97706",
			Error:            "#DC2626",
			TextPrimary:      "#111827",
			TextSecondary:    "#374151",
			TextMuted:        "#6B7280",
			TextSubtle:       "#9CA3AF",
			BgPrimary:        "#FFFFFF",
			BgSecondary:      "#F3F4F6",
			BgTertiary:       "#E5E7EB",
			BorderNormal:     "#D1D5DB",
			BorderActive:     "#6D28D9",
			ToastSuccessText: "#FFFFFF",
			ToastErrorText:   "#FFFFFF",
			MarkdownTheme:    "light",
		},
	}
)

var themeRegistry = map[string]Theme{
	"dark":  DarkTheme,
	"light": LightTheme,
}

var currentTheme = "dark"

// IsValidHexColor checks for #RRGGBB or #RRGGBBAA.
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme reports whether name is registered.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, falling back to the dark theme.
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return DarkTheme
}

// GetCurrentThemeName returns the active theme name.
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the registered theme names, sorted.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme returns the theme after name in ListThemes order, wrapping around.
func NextTheme(name string) string {
	names := ListThemes()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// ApplyTheme applies a theme by name.
func ApplyTheme(name string) {
	ApplyThemeWithOverrides(name, nil)
}

// ApplyThemeWithOverrides applies a theme with per-color overrides from
// config. Invalid hex values are ignored.
func ApplyThemeWithOverrides(name string, overrides map[string]string) {
	theme := GetTheme(name)
	for key, value := range overrides {
		applyOverride(&theme.Colors, key, value)
	}
	ApplyThemeColors(theme)

	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

func applyOverride(p *ColorPalette, key, value string) {
	if key == "markdownTheme" {
		p.MarkdownTheme = value
		return
	}
	if !IsValidHexColor(value) {
		return
	}
	switch key {
	case "primary":
		p.Primary = value
	case "secondary":
		p.Secondary = value
	case "accent":
		p.Accent = value
	case "success":
		p.Success = value
	case "warning":
		p.Warning = value
	case "error":
		p.Error = value
	case "textPrimary":
		p.TextPrimary = value
	case "textSecondary":
		p.TextSecondary = value
	case "textMuted":
		p.TextMuted = value
	case "textSubtle":
		p.TextSubtle = value
	case "bgPrimary":
		p.BgPrimary = value
	case "bgSecondary":
		p.BgSecondary = value
	case "bgTertiary":
		p.BgTertiary = value
	case "borderNormal":
		p.BorderNormal = value
	case "borderActive":
		p.BorderActive = value
	case "toastSuccessText":
		p.ToastSuccessText = value
	case "toastErrorText":
		p.ToastErrorText = value
	}
}

// ApplyThemeColors copies a palette into the package colors and rebuilds
// every style.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors
	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Accent = lipgloss.Color(c.Accent)
	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)
	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	TextSubtle = lipgloss.Color(c.TextSubtle)
	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BgTertiary = lipgloss.Color(c.BgTertiary)
	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)
	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)
	if c.MarkdownTheme != "" {
		CurrentMarkdownTheme = c.MarkdownTheme
	}
	rebuild()
}
