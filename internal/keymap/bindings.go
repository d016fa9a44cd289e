package keymap

// Contexts. The mode names double as keymap contexts.
const (
	ContextGlobal  = "global"
	ContextNormal  = "normal"
	ContextEditor  = "editor"
	ContextLogin   = "login"
	ContextSignup  = "signup"
	ContextAccount = "account"
	ContextLoading = "loading"
)

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: ContextGlobal},
		{Key: "ctrl+t", Command: "toggle-theme", Context: ContextGlobal},

		// Card list
		{Key: "q", Command: "quit", Context: ContextNormal},
		{Key: "?", Command: "toggle-help", Context: ContextNormal},
		{Key: "n", Command: "new-note", Context: ContextNormal},
		{Key: "enter", Command: "open-note", Context: ContextNormal},
		{Key: "j", Command: "cursor-down", Context: ContextNormal},
		{Key: "down", Command: "cursor-down", Context: ContextNormal},
		{Key: "k", Command: "cursor-up", Context: ContextNormal},
		{Key: "up", Command: "cursor-up", Context: ContextNormal},
		{Key: "l", Command: "cursor-right", Context: ContextNormal},
		{Key: "right", Command: "cursor-right", Context: ContextNormal},
		{Key: "h", Command: "cursor-left", Context: ContextNormal},
		{Key: "left", Command: "cursor-left", Context: ContextNormal},
		{Key: "g", Command: "cursor-top", Context: ContextNormal},
		{Key: "G", Command: "cursor-bottom", Context: ContextNormal},
		{Key: "y", Command: "yank", Context: ContextNormal},
		{Key: "m", Command: "toggle-markdown", Context: ContextNormal},
		{Key: "ctrl+h", Command: "toggle-footer", Context: ContextNormal},
		{Key: "L", Command: "login", Context: ContextNormal},
		{Key: "A", Command: "account", Context: ContextNormal},

		// Editor
		{Key: "ctrl+s", Command: "submit", Context: ContextEditor},
		{Key: "esc", Command: "cancel", Context: ContextEditor},
		{Key: "ctrl+d", Command: "delete-note", Context: ContextEditor},
		{Key: "ctrl+n", Command: "new-note", Context: ContextEditor},
		{Key: "tab", Command: "next-field", Context: ContextEditor},
		{Key: "shift+tab", Command: "prev-field", Context: ContextEditor},

		// Login and signup forms
		{Key: "enter", Command: "submit", Context: ContextLogin},
		{Key: "esc", Command: "cancel", Context: ContextLogin},
		{Key: "ctrl+s", Command: "switch-form", Context: ContextLogin},
		{Key: "tab", Command: "next-field", Context: ContextLogin},
		{Key: "shift+tab", Command: "prev-field", Context: ContextLogin},

		{Key: "enter", Command: "submit", Context: ContextSignup},
		{Key: "esc", Command: "cancel", Context: ContextSignup},
		{Key: "ctrl+s", Command: "switch-form", Context: ContextSignup},
		{Key: "tab", Command: "next-field", Context: ContextSignup},
		{Key: "shift+tab", Command: "prev-field", Context: ContextSignup},

		// Account
		{Key: "o", Command: "logout", Context: ContextAccount},
		{Key: "esc", Command: "back", Context: ContextAccount},
		{Key: "q", Command: "back", Context: ContextAccount},
	}
}
