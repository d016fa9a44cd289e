// Package app wires the note panels into a Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notedeck/internal/account"
	"github.com/marcus/notedeck/internal/cards"
	"github.com/marcus/notedeck/internal/config"
	"github.com/marcus/notedeck/internal/dispatch"
	"github.com/marcus/notedeck/internal/editor"
	"github.com/marcus/notedeck/internal/keymap"
	"github.com/marcus/notedeck/internal/mode"
	"github.com/marcus/notedeck/internal/notes"
	"github.com/marcus/notedeck/internal/styles"
)

const (
	// contentTop is the first screen row below the header.
	contentTop = 2
	// editorMaxWidth caps the editor so long lines stay readable.
	editorMaxWidth = 80
	formWidth      = 50
)

// Options configures New.
type Options struct {
	Context       context.Context
	Config        *config.Config
	ConfigPath    string
	ConfigUpdates <-chan *config.Config
	Keymap        *keymap.Registry
	Authenticator account.Authenticator
	Logger        *slog.Logger
	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg        *config.Config
	configPath string
	updates    <-chan *config.Config
	keymap     *keymap.Registry
	logger     *slog.Logger
	copyText   func(string) error

	controller *Controller
	modes      *mode.Controller
	dispatcher *dispatch.Dispatcher

	cards        *cards.List
	editor       *editor.Panel
	login        *account.Form
	signup       *account.Form
	accountPanel *account.Panel
	loading      *account.Loading

	// UI state
	width, height int
	ready         bool
	showHelp      bool
	showFooter    bool
	mouse         bool
	help          help.Model

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// err is the fatal error that ended the program, if any.
	err error
}

// New builds the model. Configuration errors, such as an unknown initial
// mode, are returned here.
func New(opts Options) (Model, error) {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.NewDefault()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	cfg := opts.Config

	m := Model{
		cfg:          cfg,
		configPath:   opts.ConfigPath,
		updates:      opts.ConfigUpdates,
		keymap:       opts.Keymap,
		logger:       opts.Logger,
		copyText:     opts.Clipboard,
		dispatcher:   dispatch.New(opts.Logger),
		cards:        cards.New(cards.WithCardWidth(cfg.UI.CardWidth), cards.WithMarkdown(cfg.UI.Markdown)),
		editor:       editor.New(),
		login:        account.NewForm(account.KindLogin),
		signup:       account.NewForm(account.KindSignup),
		accountPanel: account.NewPanel(),
		loading:      account.NewLoading(),
		showFooter:   cfg.UI.ShowFooter,
		mouse:        cfg.UI.Mouse,
		help:         help.New(),
	}

	m.applyTheme(cfg.UI.Theme)
	m.keymap.ApplyOverrides(cfg.Keymap.Overrides)
	m.applyKeymap()

	modes, err := mode.New([]mode.Entry{
		{Name: mode.Normal, View: m.cards},
		{Name: mode.Editor, View: m.editor},
		{Name: mode.Login, View: m.login},
		{Name: mode.Signup, View: m.signup},
		{Name: mode.Account, View: m.accountPanel},
		{Name: mode.Loading, View: m.loading},
	}, mode.WithInitial(cfg.UI.InitialMode), mode.WithLogger(opts.Logger))
	if err != nil {
		return Model{}, fmt.Errorf("build modes: %w", err)
	}
	m.modes = modes

	m.controller, err = NewController(ControllerOptions{
		Context:       opts.Context,
		Notes:         notes.NewCollection(),
		Editor:        m.editor,
		Modes:         modes,
		Surface:       m.cards,
		Dispatcher:    m.dispatcher,
		Authenticator: opts.Authenticator,
		Logger:        opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}
	m.controller.Seed(cfg.Seed.Count)

	return m, nil
}

// Init starts the clock, the cursor blink and the config listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), textinput.Blink, waitForConfig(m.updates)}
	if m.modes.Is(mode.Loading) {
		cmds = append(cmds, m.loading.Tick())
	}
	return tea.Batch(cmds...)
}

// Err returns the fatal error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Controller exposes the rule controller.
func (m Model) Controller() *Controller { return m.controller }

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// fail records a fatal error and stops the program.
func (m *Model) fail(err error) tea.Cmd {
	m.logger.Error("fatal", "err", err)
	m.err = err
	return tea.Quit
}

// rule turns a rule result into a command: nil on success, quit on error.
func (m *Model) rule(err error) tea.Cmd {
	if err != nil {
		return m.fail(err)
	}
	return nil
}

// footerHeight is the number of rows the footer takes.
func (m Model) footerHeight() int {
	if m.showFooter {
		return 1
	}
	return 0
}

func (m Model) contentHeight() int {
	return max(0, m.height-contentTop-m.footerHeight())
}

// resize pushes the current size into every panel.
func (m *Model) resize() {
	h := m.contentHeight()
	m.cards.SetSize(m.width, h)
	m.editor.SetSize(min(m.width, editorMaxWidth), h)
	w := min(m.width, formWidth)
	m.login.SetWidth(w)
	m.signup.SetWidth(w)
	m.accountPanel.SetWidth(w)
	m.help.Width = m.width
}

// applyTheme applies the configured theme. Unknown names fall back to the
// dark theme.
func (m *Model) applyTheme(tc config.ThemeConfig) {
	if !styles.IsValidTheme(tc.Name) {
		m.logger.Warn("unknown theme, using dark", "theme", tc.Name)
	}
	styles.ApplyThemeWithOverrides(tc.Name, tc.Overrides)
}

// applyConfig applies a reloaded config. The initial mode and seed only
// matter at startup and are ignored here.
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	m.cfg = cfg
	m.applyTheme(cfg.UI.Theme)
	m.keymap.ApplyOverrides(cfg.Keymap.Overrides)
	m.applyKeymap()
	m.cards.SetCardWidth(cfg.UI.CardWidth)
	m.cards.SetMarkdown(cfg.UI.Markdown)
	m.showFooter = cfg.UI.ShowFooter
	m.resize()
	m.logger.Info("config applied", "theme", cfg.UI.Theme.Name)

	if cfg.UI.Mouse == m.mouse {
		return nil
	}
	m.mouse = cfg.UI.Mouse
	if m.mouse {
		return tea.EnableMouseCellMotion
	}
	return tea.DisableMouse
}
