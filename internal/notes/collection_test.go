package notes

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func titles(c *Collection) []string {
	var out []string
	for _, n := range c.Notes() {
		out = append(out, n.Title)
	}
	return out
}

func TestAddPrependsInOrder(t *testing.T) {
	c := NewCollection()
	for i := 1; i <= 5; i++ {
		c.Add(Note{Title: fmt.Sprintf("Note %d", i)})
	}

	want := []string{"Note 5", "Note 4", "Note 3", "Note 2", "Note 1"}
	if diff := cmp.Diff(want, titles(c)); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var c Collection
	if c.Len() != 0 {
		t.Errorf("got len %d, want 0", c.Len())
	}
	if c.IsSomeSelected() {
		t.Error("zero value should have no selection")
	}
	if _, ok := c.Selected(); ok {
		t.Error("Selected() on zero value should report ok=false")
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		wantOK bool
	}{
		{"first", 0, true},
		{"last", 2, true},
		{"negative", -1, false},
		{"past end", 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCollection()
			c.Add(Note{Title: "C"})
			c.Add(Note{Title: "B"})
			c.Add(Note{Title: "A"})

			c.Select(tc.index)
			idx, ok := c.SelectedIndex()
			if ok != tc.wantOK {
				t.Fatalf("got selected=%v, want %v", ok, tc.wantOK)
			}
			if ok && idx != tc.index {
				t.Errorf("got index %d, want %d", idx, tc.index)
			}
		})
	}
}

func TestSelectOutOfRangeKeepsPreviousSelection(t *testing.T) {
	c := NewCollection()
	c.Add(Note{Title: "B"})
	c.Add(Note{Title: "A"})
	c.Select(1)

	c.Select(7)

	note, ok := c.Selected()
	if !ok || note.Title != "B" {
		t.Errorf("got %+v (ok=%v), want B still selected", note, ok)
	}
}

func TestDeleteSelected(t *testing.T) {
	c := NewCollection()
	c.Add(Note{Title: "C"})
	c.Add(Note{Title: "B"})
	c.Add(Note{Title: "A"})
	c.Select(1)

	removed, ok := c.DeleteSelected()
	if !ok || removed.Title != "B" {
		t.Fatalf("got removed %+v (ok=%v), want B", removed, ok)
	}
	if c.IsSomeSelected() {
		t.Error("selection should be cleared after delete")
	}
	if diff := cmp.Diff([]string{"A", "C"}, titles(c)); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}

	if _, ok := c.DeleteSelected(); ok {
		t.Error("second DeleteSelected should be a no-op")
	}
	if c.Len() != 2 {
		t.Errorf("got len %d, want 2", c.Len())
	}
}

func TestAddKeepsSelectionOnSameNote(t *testing.T) {
	c := NewCollection()
	c.Add(Note{Title: "B"})
	c.Add(Note{Title: "A"})
	c.Select(0)

	c.Add(Note{Title: "new"})

	note, ok := c.Selected()
	if !ok || note.Title != "A" {
		t.Errorf("got %+v (ok=%v), want A", note, ok)
	}
}

func TestNotesReturnsCopy(t *testing.T) {
	c := NewCollection()
	c.Add(Note{Title: "A"})

	out := c.Notes()
	out[0].Title = "mutated"

	if got, _ := c.At(0); got.Title != "A" {
		t.Errorf("got %q, want collection unaffected by caller mutation", got.Title)
	}
}

func TestEditAsDeleteThenAdd(t *testing.T) {
	c := NewCollection()
	c.Add(Note{Title: "C"})
	c.Add(Note{Title: "B"})
	c.Add(Note{Title: "A"})

	c.Select(1)
	c.DeleteSelected()
	c.Add(Note{Title: "B'"})

	if diff := cmp.Diff([]string{"B'", "A", "C"}, titles(c)); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
}

func genNote(t *rapid.T, label string) Note {
	return Note{
		Title: rapid.StringMatching(`[A-Za-z0-9 ]{0,12}`).Draw(t, label+"Title"),
		Body:  rapid.String().Draw(t, label+"Body"),
	}
}

func TestProperty_AddIsLIFO(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		c := NewCollection()
		added := make([]Note, 0, n)
		for i := 0; i < n; i++ {
			note := genNote(t, fmt.Sprintf("note%d", i))
			c.Add(note)
			added = append(added, note)
		}

		got := c.Notes()
		for i := range added {
			if got[i] != added[len(added)-1-i] {
				t.Fatalf("position %d: got %+v, want %+v", i, got[i], added[len(added)-1-i])
			}
		}
	})
}

func TestProperty_SelectOutOfRangeIsNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewCollection()
		n := rapid.IntRange(0, 10).Draw(t, "n")
		for i := 0; i < n; i++ {
			c.Add(Note{Title: fmt.Sprint(i)})
		}
		if n > 0 && rapid.Bool().Draw(t, "preselect") {
			c.Select(rapid.IntRange(0, n-1).Draw(t, "pre"))
		}
		beforeIdx, beforeOK := c.SelectedIndex()

		bad := rapid.OneOf(
			rapid.IntRange(-100, -1),
			rapid.IntRange(n, n+100),
		).Draw(t, "bad")
		c.Select(bad)

		afterIdx, afterOK := c.SelectedIndex()
		if beforeIdx != afterIdx || beforeOK != afterOK {
			t.Fatalf("Select(%d) changed selection from (%d,%v) to (%d,%v)",
				bad, beforeIdx, beforeOK, afterIdx, afterOK)
		}
	})
}

// TestProperty_StateMachine drives the collection with random operations and
// checks it against a plain slice model after every step.
func TestProperty_StateMachine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewCollection()
		var model []Note
		modelSel := -1

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				note := genNote(t, "add")
				c.Add(note)
				model = append([]Note{note}, model...)
				if modelSel >= 0 {
					modelSel++
				}
			},
			"select": func(t *rapid.T) {
				i := rapid.IntRange(-2, len(model)+2).Draw(t, "index")
				c.Select(i)
				if i >= 0 && i < len(model) {
					modelSel = i
				}
			},
			"unselect": func(t *rapid.T) {
				c.Unselect()
				modelSel = -1
			},
			"deleteSelected": func(t *rapid.T) {
				_, ok := c.DeleteSelected()
				if ok != (modelSel >= 0) {
					t.Fatalf("DeleteSelected ok=%v, model selection %d", ok, modelSel)
				}
				if modelSel >= 0 {
					model = append(model[:modelSel], model[modelSel+1:]...)
					modelSel = -1
				}
			},
			"": func(t *rapid.T) {
				if diff := cmp.Diff(model, c.Notes(), cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("notes mismatch (-model +got):\n%s", diff)
				}
				idx, ok := c.SelectedIndex()
				if ok != (modelSel >= 0) || (ok && idx != modelSel) {
					t.Fatalf("selection (%d,%v), model %d", idx, ok, modelSel)
				}
				if ok && (idx < 0 || idx >= c.Len()) {
					t.Fatalf("selected index %d out of range for len %d", idx, c.Len())
				}
			},
		})
	})
}
