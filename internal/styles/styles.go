package styles

import "github.com/charmbracelet/lipgloss"

// Color palette. Values are replaced by ApplyTheme.
var (
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#3B82F6")
	Accent    = lipgloss.Color("#F59E0B")

	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")
	TextSubtle    = lipgloss.Color("#4B5563")

	BgPrimary   = lipgloss.Color("#111827")
	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	ToastSuccessTextColor = lipgloss.Color("#000000")
	ToastErrorTextColor   = lipgloss.Color("#FFFFFF")

	// CurrentMarkdownTheme is the glamour standard style matching the palette.
	CurrentMarkdownTheme = "dark"
)

// Text styles
var (
	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	KeyHint  lipgloss.Style
	Logo     lipgloss.Style
	ErrorMsg lipgloss.Style
)

// Card styles
var (
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style
	CardBody    lipgloss.Style
)

// Form and panel styles
var (
	Panel         lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonDanger  lipgloss.Style
	ButtonPrimary lipgloss.Style
)

// Bar and overlay styles
var (
	Header        lipgloss.Style
	Footer        lipgloss.Style
	BarChip       lipgloss.Style
	BarChipActive lipgloss.Style
	ToastSuccess  lipgloss.Style
	ToastError    lipgloss.Style
	ModalBox      lipgloss.Style
	ModalTitle    lipgloss.Style
)

func init() {
	rebuild()
}

// rebuild recreates every style from the current palette. lipgloss styles
// copy colors at construction, so a theme change has to rebuild them.
func rebuild() {
	Title = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	Body = lipgloss.NewStyle().Foreground(TextPrimary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Subtle = lipgloss.NewStyle().Foreground(TextSubtle)
	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)
	Logo = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	ErrorMsg = lipgloss.NewStyle().Foreground(Error)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)
	CardFocused = Card.BorderForeground(BorderActive)
	CardTitle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	CardBody = lipgloss.NewStyle().Foreground(TextSecondary)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(1, 2)
	FieldLabel = lipgloss.NewStyle().Foreground(TextMuted)
	FieldFocused = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)
	ButtonDanger = Button.Foreground(ToastErrorTextColor).Background(Error)
	ButtonPrimary = Button.Foreground(TextPrimary).Background(Primary)

	Header = lipgloss.NewStyle().Background(BgSecondary)
	Footer = lipgloss.NewStyle().Foreground(TextMuted).Background(BgSecondary)
	BarChip = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)
	BarChipActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Padding(0, 1).
		Bold(true)
	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastSuccessTextColor).
		Bold(true).
		Padding(0, 1)
	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ToastErrorTextColor).
		Bold(true).
		Padding(0, 1)
	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(BgSecondary).
		Padding(1, 2)
	ModalTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true).
		MarginBottom(1)
}
