package account

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notedeck/internal/styles"
)

// Loading is the panel shown while an account request is in flight.
type Loading struct {
	spinner spinner.Model
	label   string
	visible bool
}

// NewLoading returns a hidden loading panel.
func NewLoading() *Loading {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &Loading{spinner: s, label: "working..."}
}

// SetLabel sets the text next to the spinner.
func (l *Loading) SetLabel(label string) { l.label = label }

func (l *Loading) Show()         { l.visible = true }
func (l *Loading) Hide()         { l.visible = false }
func (l *Loading) Visible() bool { return l.visible }

// Tick starts the spinner animation.
func (l *Loading) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner. Ticks stop once the panel is hidden.
func (l *Loading) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !l.visible {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(tick)
	return cmd
}

// View renders the spinner, or nothing while hidden.
func (l *Loading) View() string {
	if !l.visible {
		return ""
	}
	l.spinner.Style = styles.Logo
	return l.spinner.View() + " " + styles.Muted.Render(l.label)
}
