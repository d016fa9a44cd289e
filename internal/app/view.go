package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notedeck/internal/keymap"
	"github.com/marcus/notedeck/internal/mode"
	"github.com/marcus/notedeck/internal/styles"
	"github.com/marcus/notedeck/internal/ui"
)

const (
	appName        = " notedeck "
	newButtonLabel = "+ new"
)

// View renders the header, the active panel and the footer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}
	base := b.String()

	if m.showHelp {
		return ui.Overlay(base, styles.ModalBox.Render(m.buildHelpContent()), m.width, m.height)
	}
	return base
}

// headerPrefix is everything left of the new-note button.
func (m Model) headerPrefix() string {
	return styles.Logo.Render(appName) + " " + styles.BarChip.Render(m.modes.Active()) + " "
}

// newButtonBounds returns the header columns [start, end) of the new-note
// button.
func (m Model) newButtonBounds() (start, end int) {
	start = lipgloss.Width(m.headerPrefix())
	return start, start + lipgloss.Width(styles.BarChipActive.Render(newButtonLabel))
}

func (m Model) renderHeader() string {
	left := m.headerPrefix() + styles.BarChipActive.Render(newButtonLabel)

	right := styles.Muted.Render(styles.GetCurrentThemeName())
	if s := m.controller.Session(); s != nil {
		right = styles.KeyHint.Render(s.Username) + "  " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ui.FitLines(left, m.width, 1)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderContent() string {
	h := m.contentHeight()
	var body string
	switch m.modes.Active() {
	case mode.Normal:
		body = m.cards.View()
	case mode.Editor:
		body = m.editor.View()
	case mode.Login:
		body = m.center(m.login.View(), h)
	case mode.Signup:
		body = m.center(m.signup.View(), h)
	case mode.Account:
		body = m.center(m.accountPanel.View(), h)
	case mode.Loading:
		body = m.center(m.loading.View(), h)
	}
	return lipgloss.NewStyle().Width(m.width).Height(h).MaxHeight(h).Render(body)
}

func (m Model) center(s string, h int) string {
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		style := styles.ToastSuccess
		if m.statusIsError {
			style = styles.ToastError
		}
		return ui.FitLines(style.Render(m.statusMsg), m.width, 1)
	}
	return ui.FitLines(m.help.ShortHelpView(m.footerBindings()), m.width, 1)
}

// buildHelpContent lists the bindings of the active context and the global
// ones.
func (m Model) buildHelpContent() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Keys"))
	b.WriteString("\n")

	section := func(title, context string) {
		bindings := m.keymap.BindingsForContext(context)
		if len(bindings) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(styles.Title.Render(title))
		b.WriteString("\n")
		width := 0
		for _, kb := range bindings {
			width = max(width, lipgloss.Width(kb.Key))
		}
		for _, kb := range bindings {
			pad := strings.Repeat(" ", width-lipgloss.Width(kb.Key))
			b.WriteString("  " + styles.KeyHint.Render(kb.Key) + pad + "  " + styles.Muted.Render(commandLabel(kb.Command)) + "\n")
		}
	}

	section(m.modes.Active(), m.modes.Active())
	section("global", keymap.ContextGlobal)

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("esc or ? to close"))
	return b.String()
}
