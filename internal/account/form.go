package account

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notedeck/internal/styles"
)

// SubmitMsg carries the credentials of a submitted form.
type SubmitMsg struct {
	Kind        Kind
	Credentials Credentials
}

// CancelMsg asks to leave the current account panel.
type CancelMsg struct{}

// SwitchFormMsg asks to show the other credential form.
type SwitchFormMsg struct {
	To Kind
}

// FormKeyMap holds the form's intent keys.
type FormKeyMap struct {
	Submit     key.Binding
	Cancel     key.Binding
	SwitchForm key.Binding
	NextField  key.Binding
	PrevField  key.Binding
}

// DefaultFormKeyMap returns the stock form keys.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		SwitchForm: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "switch form")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	}
}

// Form is the login or signup panel.
type Form struct {
	kind     Kind
	username textinput.Model
	password textinput.Model
	focus    int
	keys     FormKeyMap
	errMsg   string
	visible  bool
	width    int
}

// NewForm returns a hidden form of the given kind.
func NewForm(kind Kind) *Form {
	user := textinput.New()
	user.Placeholder = "username"
	user.Prompt = ""
	user.CharLimit = 64

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.Prompt = ""
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return &Form{
		kind:     kind,
		username: user,
		password: pass,
		keys:     DefaultFormKeyMap(),
		width:    50,
	}
}

// Kind returns the form kind.
func (f *Form) Kind() Kind { return f.kind }

// SetKeyMap replaces the intent keys.
func (f *Form) SetKeyMap(km FormKeyMap) { f.keys = km }

// SetWidth sets the outer width.
func (f *Form) SetWidth(w int) {
	f.width = w
	inner := max(10, w-8)
	f.username.Width = inner
	f.password.Width = inner
}

// SetError shows msg under the fields. An empty msg clears it.
func (f *Form) SetError(msg string) { f.errMsg = msg }

// Reset clears both fields and the error.
func (f *Form) Reset() {
	f.username.Reset()
	f.password.Reset()
	f.errMsg = ""
}

// Credentials returns the entered values.
func (f *Form) Credentials() Credentials {
	return Credentials{Username: f.username.Value(), Password: f.password.Value()}
}

// Show displays the form with the username focused.
func (f *Form) Show() {
	f.visible = true
	f.focusField(0)
}

// Hide hides the form. Entered values are kept so a failed attempt can be
// retried.
func (f *Form) Hide() {
	f.visible = false
	f.username.Blur()
	f.password.Blur()
}

// Visible reports whether the form is shown.
func (f *Form) Visible() bool { return f.visible }

func (f *Form) focusField(i int) tea.Cmd {
	f.focus = i
	if i == 0 {
		f.password.Blur()
		return f.username.Focus()
	}
	f.username.Blur()
	return f.password.Focus()
}

// Update handles input while visible.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if !f.visible {
		return nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Cancel):
			return raise(CancelMsg{})
		case key.Matches(km, f.keys.SwitchForm):
			return raise(SwitchFormMsg{To: f.kind.Other()})
		case key.Matches(km, f.keys.NextField), key.Matches(km, f.keys.PrevField):
			return f.focusField(1 - f.focus)
		case key.Matches(km, f.keys.Submit):
			if f.focus == 0 {
				return f.focusField(1)
			}
			return raise(SubmitMsg{Kind: f.kind, Credentials: f.Credentials()})
		}
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return cmd
}

func (f *Form) title() string {
	if f.kind == KindSignup {
		return "Sign up"
	}
	return "Log in"
}

// View renders the form, or nothing while hidden.
func (f *Form) View() string {
	if !f.visible {
		return ""
	}

	label := func(text string, i int) string {
		if f.focus == i {
			return styles.FieldFocused.Render(text)
		}
		return styles.FieldLabel.Render(text)
	}

	var sb strings.Builder
	sb.WriteString(styles.ModalTitle.Render(f.title()))
	sb.WriteString("\n")
	sb.WriteString(label("Username", 0))
	sb.WriteString("\n")
	sb.WriteString(f.username.View())
	sb.WriteString("\n\n")
	sb.WriteString(label("Password", 1))
	sb.WriteString("\n")
	sb.WriteString(f.password.View())
	if f.errMsg != "" {
		sb.WriteString("\n\n")
		sb.WriteString(styles.ErrorMsg.Render(f.errMsg))
	}
	sb.WriteString("\n\n")
	other := "sign up"
	if f.kind == KindSignup {
		other = "log in"
	}
	hint := styles.KeyHint.Render(firstKey(f.keys.SwitchForm)) + styles.Muted.Render(" "+other+" instead")
	sb.WriteString(hint)

	return styles.Panel.Width(max(0, f.width-2)).Render(sb.String())
}

func firstKey(b key.Binding) string {
	if keys := b.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

func raise(m tea.Msg) tea.Cmd {
	return func() tea.Msg { return m }
}
