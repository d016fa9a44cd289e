// Package notes holds the in-memory note collection: an ordered sequence of
// notes, newest first, with at most one selected entry.
package notes

// Note is the content of a single card. A note has no identity beyond its
// position in a Collection.
type Note struct {
	Title string
	Body  string
}

// Collection is an ordered list of notes with an optional selection.
// The zero value is an empty collection with nothing selected.
//
// Invariant: when hasSelection is true, 0 <= selected < len(notes).
type Collection struct {
	notes        []Note
	selected     int
	hasSelection bool
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add inserts note at the front of the collection.
func (c *Collection) Add(note Note) {
	c.notes = append(c.notes, Note{})
	copy(c.notes[1:], c.notes)
	c.notes[0] = note
	if c.hasSelection {
		// Keep the selection on the same note it pointed at.
		c.selected++
	}
}

// Select marks the note at index as selected. Out-of-range indices are ignored.
func (c *Collection) Select(index int) {
	if index < 0 || index >= len(c.notes) {
		return
	}
	c.selected = index
	c.hasSelection = true
}

// Unselect clears the selection.
func (c *Collection) Unselect() {
	c.selected = 0
	c.hasSelection = false
}

// IsSomeSelected reports whether a note is selected.
func (c *Collection) IsSomeSelected() bool {
	return c.hasSelection
}

// Selected returns the selected note. ok is false when nothing is selected.
func (c *Collection) Selected() (note Note, ok bool) {
	if !c.hasSelection {
		return Note{}, false
	}
	return c.notes[c.selected], true
}

// SelectedIndex returns the position of the selected note.
func (c *Collection) SelectedIndex() (int, bool) {
	if !c.hasSelection {
		return 0, false
	}
	return c.selected, true
}

// DeleteSelected removes the selected note and clears the selection.
// It returns the removed note, or ok == false when nothing was selected.
func (c *Collection) DeleteSelected() (removed Note, ok bool) {
	if !c.hasSelection {
		return Note{}, false
	}
	removed = c.notes[c.selected]
	c.notes = append(c.notes[:c.selected], c.notes[c.selected+1:]...)
	c.Unselect()
	return removed, true
}

// At returns the note at index.
func (c *Collection) At(index int) (Note, bool) {
	if index < 0 || index >= len(c.notes) {
		return Note{}, false
	}
	return c.notes[index], true
}

// Notes returns a copy of the notes, newest first.
func (c *Collection) Notes() []Note {
	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	return len(c.notes)
}
