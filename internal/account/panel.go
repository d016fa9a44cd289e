package account

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notedeck/internal/styles"
)

// LogoutMsg asks to end the session.
type LogoutMsg struct{}

// PanelKeyMap holds the account panel keys.
type PanelKeyMap struct {
	Logout key.Binding
	Back   key.Binding
}

// DefaultPanelKeyMap returns the stock account panel keys.
func DefaultPanelKeyMap() PanelKeyMap {
	return PanelKeyMap{
		Logout: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		Back:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
	}
}

// Panel shows the signed-in user.
type Panel struct {
	session *Session
	keys    PanelKeyMap
	visible bool
	width   int
}

// NewPanel returns a hidden account panel with no session.
func NewPanel() *Panel {
	return &Panel{keys: DefaultPanelKeyMap(), width: 50}
}

func (p *Panel) SetKeyMap(km PanelKeyMap) { p.keys = km }
func (p *Panel) SetWidth(w int)           { p.width = w }

// SetSession sets the displayed session. nil means signed out.
func (p *Panel) SetSession(s *Session) { p.session = s }

// Session returns the displayed session.
func (p *Panel) Session() *Session { return p.session }

func (p *Panel) Show()         { p.visible = true }
func (p *Panel) Hide()         { p.visible = false }
func (p *Panel) Visible() bool { return p.visible }

// Update handles input while visible.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	if !p.visible {
		return nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, p.keys.Logout):
		if p.session != nil {
			return raise(LogoutMsg{})
		}
	case key.Matches(km, p.keys.Back):
		return raise(CancelMsg{})
	}
	return nil
}

// View renders the panel, or nothing while hidden.
func (p *Panel) View() string {
	if !p.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.ModalTitle.Render("Account"))
	sb.WriteString("\n")
	if p.session == nil {
		sb.WriteString(styles.Muted.Render("Not signed in."))
	} else {
		sb.WriteString(styles.Body.Render("Signed in as "))
		sb.WriteString(styles.Title.Render(p.session.Username))
		sb.WriteString("\n")
		sb.WriteString(styles.Muted.Render("since " + p.session.Since.Format("Jan 2 15:04")))
		sb.WriteString("\n\n")
		sb.WriteString(styles.KeyHint.Render(firstKey(p.keys.Logout)) + styles.Muted.Render(" log out"))
	}
	return styles.Panel.Width(max(0, p.width-2)).Render(sb.String())
}
