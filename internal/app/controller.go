package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/marcus/notedeck/internal/account"
	"github.com/marcus/notedeck/internal/dispatch"
	"github.com/marcus/notedeck/internal/mode"
	"github.com/marcus/notedeck/internal/notes"
)

// ErrMissingComponent is returned when a controller is built without one of
// its required parts.
var ErrMissingComponent = errors.New("app: missing component")

// Surface displays the collection. Every Render fully replaces what was
// shown before.
type Surface interface {
	Render(ns []notes.Note)
}

// EditorPanel is the part of the editor the rules drive.
type EditorPanel interface {
	Create()
	Edit(note notes.Note)
	Content() notes.Note
}

// ControllerOptions wires a Controller.
type ControllerOptions struct {
	Context       context.Context
	Notes         *notes.Collection
	Editor        EditorPanel
	Modes         *mode.Controller
	Surface       Surface
	Dispatcher    *dispatch.Dispatcher
	Authenticator account.Authenticator
	Logger        *slog.Logger
}

// Controller applies the note rules. Every public rule runs through the
// dispatcher, so a rule triggered while another is running is dropped.
// Errors returned by rules are configuration errors and are fatal.
type Controller struct {
	ctx      context.Context
	notes    *notes.Collection
	editor   EditorPanel
	modes    *mode.Controller
	surface  Surface
	dispatch *dispatch.Dispatcher
	auth     account.Authenticator
	session  *account.Session
	logger   *slog.Logger
}

// NewController checks opts and returns a controller.
func NewController(opts ControllerOptions) (*Controller, error) {
	switch {
	case opts.Notes == nil:
		return nil, fmt.Errorf("%w: notes", ErrMissingComponent)
	case opts.Editor == nil:
		return nil, fmt.Errorf("%w: editor", ErrMissingComponent)
	case opts.Modes == nil:
		return nil, fmt.Errorf("%w: modes", ErrMissingComponent)
	case opts.Surface == nil:
		return nil, fmt.Errorf("%w: surface", ErrMissingComponent)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = dispatch.New(opts.Logger)
	}

	return &Controller{
		ctx:      opts.Context,
		notes:    opts.Notes,
		editor:   opts.Editor,
		modes:    opts.Modes,
		surface:  opts.Surface,
		dispatch: opts.Dispatcher,
		auth:     opts.Authenticator,
		logger:   opts.Logger,
	}, nil
}

// Notes returns the collection.
func (c *Controller) Notes() *notes.Collection { return c.notes }

// Mode returns the active mode name.
func (c *Controller) Mode() string { return c.modes.Active() }

func (c *Controller) run(name string, rule func() error) error {
	ran, err := c.dispatch.Run(c.ctx, name, func(context.Context) error {
		return rule()
	})
	if !ran {
		return err
	}
	if err != nil {
		c.logger.Error("rule failed", "rule", name, "err", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	c.logger.Debug("rule done", "rule", name, "mode", c.modes.Active(), "notes", c.notes.Len())
	return nil
}

// Create opens the editor for a new note. An edit in progress is cancelled
// first.
func (c *Controller) Create() error { return c.run("create", c.create) }

// Edit opens the editor on the note at index. It does nothing while the
// editor is open or when index no longer names a note.
func (c *Controller) Edit(index int) error {
	return c.run("edit", func() error { return c.edit(index) })
}

// Delete removes the selected note and returns to the card list.
func (c *Controller) Delete() error { return c.run("delete", c.delete) }

// Cancel drops the selection and returns to the card list.
func (c *Controller) Cancel() error { return c.run("cancel", c.cancel) }

// Submit stores the editor content as a new note at the front, replacing
// the selected note if there is one.
func (c *Controller) Submit() error { return c.run("submit", c.submit) }

func (c *Controller) create() error {
	if c.modes.Is(mode.Editor) {
		if err := c.cancel(); err != nil {
			return err
		}
	}
	c.notes.Unselect()
	c.editor.Create()
	return c.modes.Switch(mode.Editor)
}

func (c *Controller) edit(index int) error {
	if c.modes.Is(mode.Editor) {
		c.logger.Debug("edit ignored, editor open", "index", index)
		return nil
	}
	c.notes.Select(index)
	if got, ok := c.notes.SelectedIndex(); !ok || got != index {
		c.logger.Debug("edit ignored, no such note", "index", index, "len", c.notes.Len())
		return nil
	}
	note, _ := c.notes.Selected()
	c.editor.Edit(note)
	return c.modes.Switch(mode.Editor)
}

func (c *Controller) delete() error {
	c.notes.DeleteSelected()
	c.render()
	return c.modes.Switch(mode.Normal)
}

func (c *Controller) cancel() error {
	c.notes.Unselect()
	return c.modes.Switch(mode.Normal)
}

func (c *Controller) submit() error {
	if c.notes.IsSomeSelected() {
		c.notes.DeleteSelected()
	}
	c.notes.Add(c.editor.Content())
	c.render()
	return c.modes.Switch(mode.Normal)
}

func (c *Controller) render() {
	c.surface.Render(c.notes.Notes())
}

const sampleBody = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do " +
	"eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim " +
	"veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat."

// Seed adds n sample notes titled "Note 1" to "Note n" and renders once.
func (c *Controller) Seed(n int) {
	for i := 1; i <= n; i++ {
		c.notes.Add(notes.Note{Title: fmt.Sprintf("Note %d", i), Body: sampleBody})
	}
	c.render()
}
