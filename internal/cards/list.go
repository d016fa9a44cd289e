// Package cards renders notes as a grid of cards and maps clicks back to
// note positions.
package cards

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notedeck/internal/notes"
	"github.com/marcus/notedeck/internal/styles"
)

// SelectMsg reports that the card at Index was clicked or activated.
// Index is the card's position in the most recent Render.
type SelectMsg struct {
	Index int
}

const (
	// bodyLines is how many body lines a card shows.
	bodyLines = 3
	// cardHeight is border + title + body.
	cardHeight = bodyLines + 3
	gap        = 1

	defaultCardWidth = 36
	maxCacheEntries  = 512
)

// Option configures a List.
type Option func(*List)

// WithCardWidth sets the outer card width.
func WithCardWidth(w int) Option {
	return func(l *List) { l.cardWidth = w }
}

// WithMarkdown renders card bodies as markdown.
func WithMarkdown(on bool) Option {
	return func(l *List) { l.markdown = on }
}

// List is the card grid. It only ever displays the notes passed to the
// last Render call.
type List struct {
	items  []notes.Note
	cursor int
	offset int // first visible grid row

	visible       bool
	width, height int
	cardWidth     int
	markdown      bool

	md      *glamour.TermRenderer
	mdKey   string
	cache   map[uint64]string
	renders int
}

// New returns an empty, hidden list.
func New(opts ...Option) *List {
	l := &List{
		cardWidth: defaultCardWidth,
		cache:     make(map[uint64]string),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Render replaces the displayed cards with ns.
func (l *List) Render(ns []notes.Note) {
	l.items = make([]notes.Note, len(ns))
	copy(l.items, ns)
	l.renders++
	l.clampCursor()
}

// Renders returns how many times Render has been called.
func (l *List) Renders() int { return l.renders }

// Len returns the number of displayed cards.
func (l *List) Len() int { return len(l.items) }

// Show makes the list visible.
func (l *List) Show() { l.visible = true }

// Hide hides the list.
func (l *List) Hide() { l.visible = false }

// Visible reports whether the list is shown.
func (l *List) Visible() bool { return l.visible }

// SetSize sets the area available to the grid.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.ensureVisible()
}

// SetCardWidth changes the card width.
func (l *List) SetCardWidth(w int) {
	if w == l.cardWidth {
		return
	}
	l.cardWidth = w
	l.ensureVisible()
}

// SetMarkdown toggles markdown body rendering.
func (l *List) SetMarkdown(on bool) { l.markdown = on }

// Markdown reports whether bodies render as markdown.
func (l *List) Markdown() bool { return l.markdown }

// Cursor returns the index of the card under the cursor.
func (l *List) Cursor() int { return l.cursor }

// CursorNote returns the note under the cursor.
func (l *List) CursorNote() (notes.Note, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return notes.Note{}, false
	}
	return l.items[l.cursor], true
}

func (l *List) columns() int {
	return max(1, (l.width+gap)/(l.cardWidth+gap))
}

func (l *List) visibleRows() int {
	return max(1, l.height/cardHeight)
}

// Move shifts the cursor by dx columns and dy rows, clamped to the cards.
func (l *List) Move(dx, dy int) {
	l.cursor += dy*l.columns() + dx
	l.clampCursor()
}

// Top moves the cursor to the first card.
func (l *List) Top() {
	l.cursor = 0
	l.clampCursor()
}

// Bottom moves the cursor to the last card.
func (l *List) Bottom() {
	l.cursor = len(l.items) - 1
	l.clampCursor()
}

// Scroll moves the cursor by rows for wheel input; the viewport follows it.
func (l *List) Scroll(rows int) {
	l.Move(0, rows)
}

func (l *List) clampCursor() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

func (l *List) ensureVisible() {
	row := l.cursor / l.columns()
	rows := l.visibleRows()
	if row < l.offset {
		l.offset = row
	}
	if row >= l.offset+rows {
		l.offset = row - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func selectCmd(index int) tea.Cmd {
	return func() tea.Msg { return SelectMsg{Index: index} }
}

// Activate selects the card under the cursor.
func (l *List) Activate() tea.Cmd {
	if len(l.items) == 0 {
		return nil
	}
	return selectCmd(l.cursor)
}

// Click maps a click at (x, y), relative to the grid's top-left corner, to
// the card drawn there. It returns nil for clicks between or past cards.
func (l *List) Click(x, y int) tea.Cmd {
	if !l.visible || x < 0 || y < 0 {
		return nil
	}
	stride := l.cardWidth + gap
	col := x / stride
	if x%stride >= l.cardWidth || col >= l.columns() {
		return nil
	}
	row := y / cardHeight
	if row >= l.visibleRows() {
		return nil
	}
	index := (l.offset+row)*l.columns() + col
	if index >= len(l.items) {
		return nil
	}
	l.cursor = index
	return selectCmd(index)
}

// View renders the visible rows of the grid.
func (l *List) View() string {
	if !l.visible {
		return ""
	}
	if len(l.items) == 0 {
		return styles.Muted.Render("No notes yet. Press n to create one.")
	}

	cols := l.columns()
	spacer := strings.Repeat(" ", gap)
	var rows []string
	for r := l.offset; r < l.offset+l.visibleRows(); r++ {
		start := r * cols
		if start >= len(l.items) {
			break
		}
		var cells []string
		for i := start; i < min(start+cols, len(l.items)); i++ {
			if i > start {
				cells = append(cells, spacer)
			}
			cells = append(cells, l.card(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
