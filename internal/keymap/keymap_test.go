package keymap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup_ContextThenGlobal(t *testing.T) {
	r := NewDefault()

	tests := []struct {
		context, key string
		want         string
		wantOK       bool
	}{
		{ContextNormal, "n", "new-note", true},
		{ContextNormal, "ctrl+c", "quit", true},
		{ContextEditor, "ctrl+s", "submit", true},
		{ContextEditor, "n", "", false},
		{ContextEditor, "ctrl+n", "new-note", true},
		{ContextLoading, "ctrl+c", "quit", true},
		{ContextLoading, "enter", "", false},
	}

	for _, tc := range tests {
		got, ok := r.Lookup(tc.context, tc.key)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Lookup(%q, %q) = %q, %v; want %q, %v", tc.context, tc.key, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestUserOverrideReplacesDefaultKey(t *testing.T) {
	r := NewDefault()
	r.SetUserOverride("a", "new-note")

	if cmd, ok := r.Lookup(ContextNormal, "a"); !ok || cmd != "new-note" {
		t.Errorf("got %q, %v; want new-note", cmd, ok)
	}
	if cmd, ok := r.Lookup(ContextNormal, "n"); ok {
		t.Errorf("default key still resolves to %q", cmd)
	}
	if diff := cmp.Diff([]string{"a"}, r.KeysFor(ContextNormal, "new-note")); diff != "" {
		t.Errorf("KeysFor mismatch (-want +got):\n%s", diff)
	}

	// The editor also has new-note, so the override applies there too.
	if cmd, _ := r.Lookup(ContextEditor, "a"); cmd != "new-note" {
		t.Errorf("got %q in editor, want new-note", cmd)
	}
}

func TestOverrideIgnoredWhereCommandUnknown(t *testing.T) {
	r := NewDefault()
	r.SetUserOverride("x", "yank")

	if cmd, ok := r.Lookup(ContextEditor, "x"); ok {
		t.Errorf("got %q in editor, want no binding", cmd)
	}
}

func TestApplyOverridesResets(t *testing.T) {
	r := NewDefault()
	r.ApplyOverrides(map[string]string{"a": "new-note"})
	r.ApplyOverrides(nil)

	if cmd, _ := r.Lookup(ContextNormal, "n"); cmd != "new-note" {
		t.Errorf("got %q, want default binding restored", cmd)
	}
}

func TestBindingsForContext(t *testing.T) {
	r := NewDefault()
	got := r.BindingsForContext(ContextAccount)

	want := []Binding{
		{Key: "o", Command: "logout", Context: ContextAccount},
		{Key: "esc/q", Command: "back", Context: ContextAccount},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}
