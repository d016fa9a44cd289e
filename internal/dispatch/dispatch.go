// Package dispatch guards user actions so that only one runs at a time.
//
// A Dispatcher is a two-state machine. Idle accepts an action and moves to
// Busy; Busy drops every further action until the running one returns.
// The transition back to Idle happens on every exit path, including a panic
// inside the action.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the dispatcher's current state.
type State int32

const (
	Idle State = iota
	Busy
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Busy:
		return "busy"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

var (
	// ErrPanicked wraps a panic recovered from an action.
	ErrPanicked = errors.New("dispatch: action panicked")
	// ErrNilAction is returned for a nil action.
	ErrNilAction = errors.New("dispatch: nil action")
)

// Action is a synchronous unit of work.
type Action func(ctx context.Context) error

// AsyncAction is work run off the update loop. Its result message is
// delivered inside DoneMsg.
type AsyncAction func(ctx context.Context) (tea.Msg, error)

// DoneMsg reports the completion of an action started with Cmd.
type DoneMsg struct {
	Name   string
	Result tea.Msg
	Err    error
}

// Dispatcher drops overlapping actions.
type Dispatcher struct {
	state   atomic.Int32
	dropped atomic.Uint64
	logger  *slog.Logger
}

// New returns an idle dispatcher. A nil logger discards output.
func New(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{logger: logger}
}

// State returns the current state.
func (d *Dispatcher) State() State {
	return State(d.state.Load())
}

// Dropped returns how many actions were rejected because another was running.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Run executes action if the dispatcher is idle. ran is false when the call
// was dropped; err is the action's error, or a wrapped ErrPanicked.
func (d *Dispatcher) Run(ctx context.Context, name string, action Action) (ran bool, err error) {
	if action == nil {
		return false, fmt.Errorf("%w: %s", ErrNilAction, name)
	}
	if !d.acquire(name) {
		return false, nil
	}
	defer d.release(name)

	return true, invoke(name, func() error { return action(ctx) })
}

// Cmd claims the dispatcher and returns a command that runs action on the
// Bubble Tea runtime. It returns nil when the dispatcher is busy, which
// Bubble Tea treats as no command. The dispatcher stays busy after the
// command returns; whoever applies the resulting DoneMsg must call Release,
// so actions queued behind the result are dropped until it has been applied.
func (d *Dispatcher) Cmd(ctx context.Context, name string, action AsyncAction) tea.Cmd {
	if !d.acquire(name) {
		return nil
	}
	if action == nil {
		return func() tea.Msg {
			return DoneMsg{Name: name, Err: fmt.Errorf("%w: %s", ErrNilAction, name)}
		}
	}

	return func() tea.Msg {
		var result tea.Msg
		err := invoke(name, func() error {
			var err error
			result, err = action(ctx)
			return err
		})
		return DoneMsg{Name: name, Result: result, Err: err}
	}
}

// Release ends the action claimed by Cmd once its DoneMsg has been applied.
func (d *Dispatcher) Release(done DoneMsg) {
	d.release(done.Name)
}

func (d *Dispatcher) acquire(name string) bool {
	if !d.state.CompareAndSwap(int32(Idle), int32(Busy)) {
		n := d.dropped.Add(1)
		d.logger.Debug("action dropped, dispatcher busy", "action", name, "dropped", n)
		return false
	}
	d.logger.Debug("action start", "action", name)
	return true
}

func (d *Dispatcher) release(name string) {
	d.state.Store(int32(Idle))
	d.logger.Debug("action end", "action", name)
}

func invoke(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrPanicked, name, r)
		}
	}()
	return fn()
}
