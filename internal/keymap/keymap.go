// Package keymap maps keys to command ids per context, with user overrides.
package keymap

import (
	"sort"
	"strings"
)

// Binding maps a key to a command within a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves keys to commands. Lookups check the given context
// first, then the global context.
type Registry struct {
	bindings  []Binding
	overrides map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{overrides: make(map[string]string)}
}

// NewDefault returns a registry loaded with DefaultBindings.
func NewDefault() *Registry {
	r := NewRegistry()
	for _, b := range DefaultBindings() {
		r.Register(b)
	}
	return r
}

// Register adds a binding.
func (r *Registry) Register(b Binding) {
	r.bindings = append(r.bindings, b)
}

// SetUserOverride binds key to command in every context that knows command.
// An override replaces the default key for that command in those contexts.
func (r *Registry) SetUserOverride(key, command string) {
	r.overrides[key] = command
}

// ClearUserOverrides drops every override.
func (r *Registry) ClearUserOverrides() {
	r.overrides = make(map[string]string)
}

// ApplyOverrides replaces the overrides with the given key -> command map.
func (r *Registry) ApplyOverrides(overrides map[string]string) {
	r.ClearUserOverrides()
	for k, v := range overrides {
		r.SetUserOverride(k, v)
	}
}

// Lookup resolves key in context, falling back to the global context.
func (r *Registry) Lookup(context, key string) (string, bool) {
	if cmd, ok := r.lookupIn(context, key); ok {
		return cmd, true
	}
	if context != ContextGlobal {
		return r.lookupIn(ContextGlobal, key)
	}
	return "", false
}

func (r *Registry) lookupIn(context, key string) (string, bool) {
	if cmd, ok := r.overrides[key]; ok && r.hasCommand(context, cmd) {
		return cmd, true
	}
	for _, b := range r.bindings {
		if b.Context != context || b.Key != key {
			continue
		}
		if r.overridden(b.Command) {
			continue
		}
		return b.Command, true
	}
	return "", false
}

func (r *Registry) hasCommand(context, command string) bool {
	for _, b := range r.bindings {
		if b.Context == context && b.Command == command {
			return true
		}
	}
	return false
}

func (r *Registry) overridden(command string) bool {
	for _, cmd := range r.overrides {
		if cmd == command {
			return true
		}
	}
	return false
}

// KeysFor returns the keys bound to command in context, overrides first.
func (r *Registry) KeysFor(context, command string) []string {
	var keys []string
	for k, cmd := range r.overrides {
		if cmd == command && r.hasCommand(context, command) {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		return keys
	}
	for _, b := range r.bindings {
		if b.Context == context && b.Command == command {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// BindingsForContext returns the effective bindings of context, one per
// command, in registration order.
func (r *Registry) BindingsForContext(context string) []Binding {
	var out []Binding
	seen := make(map[string]bool)
	for _, b := range r.bindings {
		if b.Context != context || seen[b.Command] {
			continue
		}
		seen[b.Command] = true
		keys := r.KeysFor(context, b.Command)
		out = append(out, Binding{
			Key:     strings.Join(keys, "/"),
			Command: b.Command,
			Context: context,
		})
	}
	return out
}
