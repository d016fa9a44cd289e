package cards

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/notedeck/internal/notes"
)

func sample(n int) []notes.Note {
	out := make([]notes.Note, n)
	for i := range out {
		out[i] = notes.Note{Title: fmt.Sprintf("Note %d", i), Body: "body"}
	}
	return out
}

// newList returns a visible list with two columns of 20-wide cards and
// room for two rows.
func newList(n int) *List {
	l := New(WithCardWidth(20))
	l.SetSize(41, 2*cardHeight)
	l.Show()
	l.Render(sample(n))
	return l
}

func selected(t *testing.T, cmd tea.Cmd) (int, bool) {
	t.Helper()
	if cmd == nil {
		return 0, false
	}
	msg, ok := cmd().(SelectMsg)
	if !ok {
		t.Fatalf("got %T, want SelectMsg", cmd())
	}
	return msg.Index, true
}

func TestRenderReplacesCards(t *testing.T) {
	l := newList(5)
	l.Render(sample(2))

	if l.Len() != 2 {
		t.Errorf("got %d cards, want 2", l.Len())
	}
	if l.Renders() != 2 {
		t.Errorf("got %d renders, want 2", l.Renders())
	}
	view := ansi.Strip(l.View())
	if strings.Contains(view, "Note 4") {
		t.Error("stale card from previous render still shown")
	}
}

func TestRenderCopiesInput(t *testing.T) {
	l := newList(0)
	ns := sample(1)
	l.Render(ns)
	ns[0].Title = "mutated"

	if n, _ := l.CursorNote(); n.Title != "Note 0" {
		t.Errorf("got %q, want render snapshot unaffected", n.Title)
	}
}

func TestEmptyTitleShowsUnnamed(t *testing.T) {
	l := newList(0)
	l.Render([]notes.Note{{Title: "", Body: "x"}})

	if !strings.Contains(ansi.Strip(l.View()), DefaultTitle) {
		t.Errorf("view should show %q for an empty title", DefaultTitle)
	}
	if n, _ := l.CursorNote(); n.Title != "" {
		t.Error("display default must not leak into the note")
	}
}

func TestClickMapsToIndex(t *testing.T) {
	l := newList(5)

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"first card", 0, 0, 0, true},
		{"second column", 21, 1, 1, true},
		{"second row", 5, cardHeight, 2, true},
		{"gap between columns", 20, 0, 0, false},
		{"past last card", 21, cardHeight * 2, 0, false},
		{"third row not shown", 0, cardHeight * 3, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := selected(t, l.Click(tc.x, tc.y))
			if ok != tc.wantOK || (ok && got != tc.want) {
				t.Errorf("Click(%d, %d) = %d, %v; want %d, %v", tc.x, tc.y, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestClickUsesLatestRender(t *testing.T) {
	l := newList(5)
	l.Render(sample(1))

	if _, ok := selected(t, l.Click(21, 0)); ok {
		t.Error("click on a card removed by the latest render should be ignored")
	}
}

func TestClickFollowsScroll(t *testing.T) {
	l := newList(10)
	l.Bottom() // row 4, so rows 3 and 4 are visible

	got, ok := selected(t, l.Click(0, 0))
	if !ok || got != 6 {
		t.Errorf("got %d, %v; want 6 after scrolling", got, ok)
	}
}

func TestHiddenListIgnoresClicks(t *testing.T) {
	l := newList(3)
	l.Hide()
	if cmd := l.Click(0, 0); cmd != nil {
		t.Error("hidden list should not produce selections")
	}
	if l.View() != "" {
		t.Error("hidden list should render nothing")
	}
}

func TestCursorMovement(t *testing.T) {
	l := newList(5)

	l.Move(1, 0)
	if l.Cursor() != 1 {
		t.Errorf("got cursor %d, want 1", l.Cursor())
	}
	l.Move(0, 1)
	if l.Cursor() != 3 {
		t.Errorf("got cursor %d, want 3", l.Cursor())
	}
	l.Move(0, 5)
	if l.Cursor() != 4 {
		t.Errorf("got cursor %d, want clamp to 4", l.Cursor())
	}
	l.Top()
	if l.Cursor() != 0 {
		t.Errorf("got cursor %d, want 0", l.Cursor())
	}

	got, ok := selected(t, l.Activate())
	if !ok || got != 0 {
		t.Errorf("Activate() = %d, %v; want 0", got, ok)
	}
}

func TestCursorClampedAfterShrink(t *testing.T) {
	l := newList(5)
	l.Bottom()
	l.Render(sample(2))

	if l.Cursor() != 1 {
		t.Errorf("got cursor %d, want 1", l.Cursor())
	}
}

func TestActivateEmpty(t *testing.T) {
	l := newList(0)
	if cmd := l.Activate(); cmd != nil {
		t.Error("Activate on an empty list should do nothing")
	}
	if !strings.Contains(l.View(), "No notes yet") {
		t.Error("empty list should show a hint")
	}
}

func TestLongTitleTruncated(t *testing.T) {
	l := newList(0)
	l.Render([]notes.Note{{Title: strings.Repeat("long", 20)}})

	for _, line := range strings.Split(l.View(), "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Errorf("line width %d exceeds card width 20: %q", w, ansi.Strip(line))
		}
	}
}

func TestCardCacheReused(t *testing.T) {
	l := newList(3)
	first := l.View()
	size := len(l.cache)
	if l.View() != first {
		t.Error("second render should be identical")
	}
	if len(l.cache) != size {
		t.Errorf("cache grew from %d to %d on an unchanged render", size, len(l.cache))
	}
}

func TestMarkdownBody(t *testing.T) {
	l := newList(0)
	l.SetMarkdown(true)
	l.Render([]notes.Note{{Title: "md", Body: "**bold** text"}})

	view := ansi.Strip(l.View())
	if strings.Contains(view, "**") {
		t.Errorf("markdown markers should be rendered away: %q", view)
	}
	if !strings.Contains(view, "bold") {
		t.Errorf("body text missing from view: %q", view)
	}
}
