// Package mode switches between mutually exclusive named views.
//
// A Controller owns a fixed set of views declared at construction. Exactly
// one of them is active at a time; switching always hides the active view
// before showing the target.
package mode

import (
	"errors"
	"fmt"
	"log/slog"
)

// Mode names used by the application.
const (
	Normal  = "normal"
	Editor  = "editor"
	Login   = "login"
	Signup  = "signup"
	Account = "account"
	Loading = "loading"
)

var (
	// ErrNoViews is returned when a controller is built without views.
	ErrNoViews = errors.New("mode: no views declared")
	// ErrUnknownMode is returned for a target that was never declared.
	ErrUnknownMode = errors.New("mode: unknown mode")
	// ErrDuplicateMode is returned when two views share a name.
	ErrDuplicateMode = errors.New("mode: duplicate mode")
	// ErrMissingView is returned when an entry has no view attached.
	ErrMissingView = errors.New("mode: missing view")
)

// NamedView is anything the controller can show and hide.
type NamedView interface {
	Show()
	Hide()
}

// Entry binds a mode name to its view.
type Entry struct {
	Name string
	View NamedView
}

type options struct {
	initial string
	logger  *slog.Logger
}

// Option configures a Controller.
type Option func(*options)

// WithInitial sets the mode shown after construction. Defaults to Normal.
func WithInitial(name string) Option {
	return func(o *options) { o.initial = name }
}

// WithLogger sets the logger used for switch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Controller keeps exactly one of its views shown.
type Controller struct {
	names  []string
	views  map[string]NamedView
	active string
	logger *slog.Logger
}

// New builds a controller over entries. Every view is hidden, then the
// initial one is shown.
func New(entries []Entry, opts ...Option) (*Controller, error) {
	o := options{initial: Normal}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	if len(entries) == 0 {
		return nil, ErrNoViews
	}

	c := &Controller{
		names:  make([]string, 0, len(entries)),
		views:  make(map[string]NamedView, len(entries)),
		logger: o.logger,
	}
	for _, e := range entries {
		if e.View == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingView, e.Name)
		}
		if _, dup := c.views[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMode, e.Name)
		}
		c.names = append(c.names, e.Name)
		c.views[e.Name] = e.View
	}

	initial, ok := c.views[o.initial]
	if !ok {
		return nil, fmt.Errorf("%w: initial %q", ErrUnknownMode, o.initial)
	}

	for _, name := range c.names {
		c.views[name].Hide()
	}
	initial.Show()
	c.active = o.initial

	return c, nil
}

// Switch hides the active view and shows target. An unknown target leaves
// everything untouched. Switching to the active mode hides and re-shows it.
func (c *Controller) Switch(target string) error {
	next, ok := c.views[target]
	if !ok {
		c.logger.Error("switch to undeclared mode", "from", c.active, "to", target)
		return fmt.Errorf("%w: %q", ErrUnknownMode, target)
	}

	c.views[c.active].Hide()
	next.Show()
	c.logger.Debug("mode switch", "from", c.active, "to", target)
	c.active = target
	return nil
}

// Is reports whether name is the active mode.
func (c *Controller) Is(name string) bool {
	return c.active == name
}

// Active returns the active mode name.
func (c *Controller) Active() string {
	return c.active
}

// Names returns the declared mode names in declaration order.
func (c *Controller) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// View returns the view registered under name.
func (c *Controller) View(name string) (NamedView, bool) {
	v, ok := c.views[name]
	return v, ok
}
