// Package editor implements the note editor panel: a title field, a body
// field and the delete/cancel/save buttons.
//
// The panel never touches the note collection. It raises intents as
// messages and the owner reads Content when it handles them.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notedeck/internal/notes"
	"github.com/marcus/notedeck/internal/styles"
)

// DeleteRequestedMsg is raised when the user asks to delete the edited note.
type DeleteRequestedMsg struct{}

// CancelRequestedMsg is raised when the user abandons the edit.
type CancelRequestedMsg struct{}

// SubmitRequestedMsg is raised when the user saves the edit.
type SubmitRequestedMsg struct{}

// KeyMap holds the panel's intent keys.
type KeyMap struct {
	Submit    key.Binding
	Cancel    key.Binding
	Delete    key.Binding
	NextField key.Binding
	PrevField key.Binding
}

// DefaultKeyMap returns the stock editor keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	}
}

type field int

const (
	fieldTitle field = iota
	fieldBody
)

const (
	minBodyHeight = 3
	// chrome is the panel border plus padding on each axis.
	chromeX = 3
	chromeY = 2
)

// Panel is the editor view.
type Panel struct {
	title textinput.Model
	body  textarea.Model
	keys  KeyMap

	// loaded is the note last passed to SetContent and shown is what the
	// fields held right after loading it. The inputs rewrite tabs and
	// newlines, so unchanged fields report loaded text instead.
	loaded notes.Note
	shown  notes.Note

	focus         field
	visible       bool
	deleteVisible bool

	width  int
	height int
}

// New returns a hidden, empty editor.
func New() *Panel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = 0

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.FocusedStyle.Placeholder = styles.Muted
	ta.BlurredStyle = ta.FocusedStyle

	p := &Panel{
		title: ti,
		body:  ta,
		keys:  DefaultKeyMap(),
	}
	p.SetSize(60, 20)
	return p
}

// SetKeyMap replaces the intent keys.
func (p *Panel) SetKeyMap(km KeyMap) {
	p.keys = km
}

// KeyMap returns the intent keys.
func (p *Panel) KeyMap() KeyMap {
	return p.keys
}

// SetSize sets the outer size available to the panel.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height

	inner := max(10, width-2*chromeX)
	p.title.Width = inner - 1
	p.body.SetWidth(inner)
	// Labels, title, spacers and the button row take 6 rows.
	p.body.SetHeight(max(minBodyHeight, height-2*chromeY-6))
}

// Clear blanks both fields and hides the delete button.
func (p *Panel) Clear() {
	p.title.Reset()
	p.body.Reset()
	p.loaded = notes.Note{}
	p.shown = notes.Note{}
	p.deleteVisible = false
}

// SetContent fills the fields with note.
func (p *Panel) SetContent(note notes.Note) {
	p.title.SetValue(note.Title)
	p.body.SetValue(note.Body)
	p.loaded = note
	p.shown = p.values()
}

func (p *Panel) values() notes.Note {
	return notes.Note{Title: p.title.Value(), Body: p.body.Value()}
}

// Content returns the current field values. A field left untouched since
// SetContent returns exactly the text it was loaded with.
func (p *Panel) Content() notes.Note {
	n := p.values()
	if n.Title == p.shown.Title {
		n.Title = p.loaded.Title
	}
	if n.Body == p.shown.Body {
		n.Body = p.loaded.Body
	}
	return n
}

// Edit loads an existing note and offers deletion.
func (p *Panel) Edit(note notes.Note) {
	p.SetContent(note)
	p.ShowDeleteButton()
}

// Create prepares the panel for a new note.
func (p *Panel) Create() {
	p.Clear()
	p.HideDeleteButton()
}

func (p *Panel) ShowDeleteButton()         { p.deleteVisible = true }
func (p *Panel) HideDeleteButton()         { p.deleteVisible = false }
func (p *Panel) DeleteButtonVisible() bool { return p.deleteVisible }

// Show makes the panel visible with the title focused.
func (p *Panel) Show() {
	p.visible = true
	p.focusField(fieldTitle)
}

// Hide hides the panel and blurs both fields.
func (p *Panel) Hide() {
	p.visible = false
	p.title.Blur()
	p.body.Blur()
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool { return p.visible }

// Focused returns the name of the focused field.
func (p *Panel) Focused() string {
	if p.focus == fieldBody {
		return "body"
	}
	return "title"
}

func (p *Panel) focusField(f field) tea.Cmd {
	p.focus = f
	if f == fieldTitle {
		p.body.Blur()
		return p.title.Focus()
	}
	p.title.Blur()
	return p.body.Focus()
}

func raise(m tea.Msg) tea.Cmd {
	return func() tea.Msg { return m }
}

// Update handles input while the panel is visible. Intent keys produce the
// matching request message; everything else goes to the focused field.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	if !p.visible {
		return nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, p.keys.Submit):
			return raise(SubmitRequestedMsg{})
		case key.Matches(km, p.keys.Cancel):
			return raise(CancelRequestedMsg{})
		case key.Matches(km, p.keys.Delete):
			if p.deleteVisible {
				return raise(DeleteRequestedMsg{})
			}
			return nil
		case key.Matches(km, p.keys.NextField), key.Matches(km, p.keys.PrevField):
			if p.focus == fieldTitle {
				return p.focusField(fieldBody)
			}
			return p.focusField(fieldTitle)
		case km.Type == tea.KeyEnter && p.focus == fieldTitle:
			return p.focusField(fieldBody)
		}
	}

	var cmd tea.Cmd
	if p.focus == fieldTitle {
		p.title, cmd = p.title.Update(msg)
	} else {
		p.body, cmd = p.body.Update(msg)
	}
	return cmd
}

type button struct {
	label string
	style lipgloss.Style
	msg   tea.Msg
}

func (p *Panel) buttons() []button {
	bs := []button{{label: "Cancel", style: styles.Button, msg: CancelRequestedMsg{}}}
	if p.deleteVisible {
		bs = append(bs, button{label: "Delete", style: styles.ButtonDanger, msg: DeleteRequestedMsg{}})
	}
	return append(bs, button{label: "Save", style: styles.ButtonPrimary, msg: SubmitRequestedMsg{}})
}

// buttonRow is the row of the button bar relative to the panel's top edge.
func (p *Panel) buttonRow() int {
	return chromeY + 5 + p.body.Height()
}

// Click maps a click at (x, y), relative to the panel's top-left corner,
// to a button intent. It returns nil when no button was hit.
func (p *Panel) Click(x, y int) tea.Cmd {
	if !p.visible || y != p.buttonRow() {
		return nil
	}
	left := chromeX
	for _, b := range p.buttons() {
		w := lipgloss.Width(b.style.Render(b.label))
		if x >= left && x < left+w {
			return raise(b.msg)
		}
		left += w + 1
	}
	return nil
}

// View renders the panel, or nothing while hidden.
func (p *Panel) View() string {
	if !p.visible {
		return ""
	}

	label := func(text string, f field) string {
		if p.focus == f {
			return styles.FieldFocused.Render(text)
		}
		return styles.FieldLabel.Render(text)
	}

	var rendered []string
	for _, b := range p.buttons() {
		rendered = append(rendered, b.style.Render(b.label))
	}

	var sb strings.Builder
	sb.WriteString(label("Title", fieldTitle))
	sb.WriteString("\n")
	sb.WriteString(p.title.View())
	sb.WriteString("\n\n")
	sb.WriteString(label("Body", fieldBody))
	sb.WriteString("\n")
	sb.WriteString(p.body.View())
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(rendered, " "))

	return styles.Panel.Width(max(0, p.width-2)).Render(sb.String())
}
