package cards

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/notedeck/internal/notes"
	"github.com/marcus/notedeck/internal/styles"
)

// DefaultTitle is shown for notes with an empty title.
const DefaultTitle = "Unnamed"

// DisplayTitle returns the title a card shows for note.
func DisplayTitle(note notes.Note) string {
	if note.Title == "" {
		return DefaultTitle
	}
	return note.Title
}

// innerWidth is the text width inside a card's border and padding.
func (l *List) innerWidth() int {
	return max(1, l.cardWidth-4)
}

func (l *List) cacheKey(note notes.Note, focused bool) uint64 {
	d := xxhash.New()
	d.WriteString(strconv.Itoa(l.cardWidth))
	d.WriteString(strconv.FormatBool(focused))
	d.WriteString(strconv.FormatBool(l.markdown))
	d.WriteString(styles.GetCurrentThemeName())
	for _, c := range []lipgloss.Color{styles.BorderNormal, styles.BorderActive, styles.TextPrimary, styles.TextSecondary} {
		d.WriteString(string(c))
	}
	d.WriteString("\x00")
	d.WriteString(note.Title)
	d.WriteString("\x00")
	d.WriteString(note.Body)
	return d.Sum64()
}

// card renders the card at index, reusing a cached rendering when the
// note, width, focus and theme are unchanged.
func (l *List) card(index int) string {
	note := l.items[index]
	focused := index == l.cursor
	k := l.cacheKey(note, focused)
	if s, ok := l.cache[k]; ok {
		return s
	}

	inner := l.innerWidth()
	title := runewidth.Truncate(DisplayTitle(note), inner, "…")

	lines := l.bodyLines(note.Body, inner)
	for len(lines) < bodyLines {
		lines = append(lines, "")
	}

	style := styles.Card
	if focused {
		style = styles.CardFocused
	}
	s := style.
		Width(l.cardWidth - 2).
		Height(cardHeight - 2).
		Render(styles.CardTitle.Render(title) + "\n" + strings.Join(lines, "\n"))

	if len(l.cache) >= maxCacheEntries {
		clear(l.cache)
	}
	l.cache[k] = s
	return s
}

func (l *List) bodyLines(body string, width int) []string {
	var rendered string
	if l.markdown {
		rendered = l.renderMarkdown(body, width)
	}
	if rendered == "" {
		rendered = styles.CardBody.Width(width).Render(body)
	}

	var out []string
	for _, line := range strings.Split(rendered, "\n") {
		if strings.TrimSpace(ansi.Strip(line)) == "" {
			continue
		}
		out = append(out, ansi.Truncate(line, width, "…"))
		if len(out) == bodyLines {
			break
		}
	}
	return out
}

// renderMarkdown renders body with glamour. It returns "" on failure so
// the caller falls back to plain text.
func (l *List) renderMarkdown(body string, width int) string {
	key := styles.CurrentMarkdownTheme + "/" + strconv.Itoa(width)
	if l.md == nil || l.mdKey != key {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(styles.CurrentMarkdownTheme),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return ""
		}
		l.md = r
		l.mdKey = key
	}
	out, err := l.md.Render(body)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
