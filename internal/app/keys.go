package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/marcus/notedeck/internal/account"
	"github.com/marcus/notedeck/internal/editor"
	"github.com/marcus/notedeck/internal/keymap"
)

// Command IDs handled by the model itself. Anything else is forwarded to
// the active panel.
const (
	cmdQuit           = "quit"
	cmdToggleHelp     = "toggle-help"
	cmdToggleTheme    = "toggle-theme"
	cmdNewNote        = "new-note"
	cmdOpenNote       = "open-note"
	cmdCursorDown     = "cursor-down"
	cmdCursorUp       = "cursor-up"
	cmdCursorLeft     = "cursor-left"
	cmdCursorRight    = "cursor-right"
	cmdCursorTop      = "cursor-top"
	cmdCursorBottom   = "cursor-bottom"
	cmdYank           = "yank"
	cmdToggleMarkdown = "toggle-markdown"
	cmdToggleFooter   = "toggle-footer"
	cmdLogin          = "login"
	cmdAccount        = "account"
)

// commandLabel turns a command ID into help text: "new-note" -> "new note".
func commandLabel(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}

// binding builds a key.Binding for command from the registry, so user
// overrides reach the panels.
func (m *Model) binding(context, command string) key.Binding {
	keys := m.keymap.KeysFor(context, command)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), commandLabel(command)),
	)
}

// applyKeymap rebuilds the panel key maps from the registry.
func (m *Model) applyKeymap() {
	m.editor.SetKeyMap(editor.KeyMap{
		Submit:    m.binding(keymap.ContextEditor, "submit"),
		Cancel:    m.binding(keymap.ContextEditor, "cancel"),
		Delete:    m.binding(keymap.ContextEditor, "delete-note"),
		NextField: m.binding(keymap.ContextEditor, "next-field"),
		PrevField: m.binding(keymap.ContextEditor, "prev-field"),
	})
	m.login.SetKeyMap(m.formKeys(keymap.ContextLogin))
	m.signup.SetKeyMap(m.formKeys(keymap.ContextSignup))
	m.accountPanel.SetKeyMap(account.PanelKeyMap{
		Logout: m.binding(keymap.ContextAccount, "logout"),
		Back:   m.binding(keymap.ContextAccount, "back"),
	})
}

func (m *Model) formKeys(context string) account.FormKeyMap {
	return account.FormKeyMap{
		Submit:     m.binding(context, "submit"),
		Cancel:     m.binding(context, "cancel"),
		SwitchForm: m.binding(context, "switch-form"),
		NextField:  m.binding(context, "next-field"),
		PrevField:  m.binding(context, "prev-field"),
	}
}

// footerBindings lists the active context's bindings for the footer.
func (m Model) footerBindings() []key.Binding {
	var out []key.Binding
	for _, b := range m.keymap.BindingsForContext(m.modes.Active()) {
		if b.Key == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Key), key.WithHelp(b.Key, commandLabel(b.Command))))
	}
	return out
}
