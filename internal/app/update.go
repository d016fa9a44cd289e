package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notedeck/internal/account"
	"github.com/marcus/notedeck/internal/cards"
	"github.com/marcus/notedeck/internal/dispatch"
	"github.com/marcus/notedeck/internal/editor"
	"github.com/marcus/notedeck/internal/mode"
	"github.com/marcus/notedeck/internal/msg"
	"github.com/marcus/notedeck/internal/styles"
)

// Update handles all messages.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch v := message.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(v)

	case tea.MouseMsg:
		return m.handleMouseMsg(v)

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.ready = true
		m.resize()
		return m, nil

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case msg.ToastMsg:
		d := v.Duration
		if d <= 0 {
			d = msg.DefaultToastDuration
		}
		m.ShowToast(v.Message, d, v.IsError)
		return m, nil

	case ConfigReloadedMsg:
		cmd := m.applyConfig(v.Config)
		return m, tea.Batch(cmd, waitForConfig(m.updates), msg.ShowToast("Config reloaded", msg.DefaultToastDuration))

	case cards.SelectMsg:
		return m, m.rule(m.controller.Edit(v.Index))

	case editor.SubmitRequestedMsg:
		return m, m.rule(m.controller.Submit())

	case editor.CancelRequestedMsg:
		return m, m.rule(m.controller.Cancel())

	case editor.DeleteRequestedMsg:
		title := cards.DisplayTitle(m.editor.Content())
		if err := m.controller.Delete(); err != nil {
			return m, m.fail(err)
		}
		return m, msg.ShowToast("Deleted "+title, msg.DefaultToastDuration)

	case account.SubmitMsg:
		return m, m.authenticate(v)

	case account.SwitchFormMsg:
		return m, m.rule(m.controller.OpenForm(v.To))

	case account.CancelMsg:
		return m, m.rule(m.controller.Back())

	case account.LogoutMsg:
		cmd, err := m.controller.Logout()
		if err != nil {
			return m, m.fail(err)
		}
		if cmd == nil {
			return m, nil
		}
		m.loading.SetLabel("logging out...")
		return m, tea.Batch(cmd, m.loading.Tick())

	case dispatch.DoneMsg:
		return m, m.finishAuth(v)

	case spinner.TickMsg:
		return m, m.loading.Update(v)
	}

	return m, m.forwardToPanel(message)
}

// handleKeyMsg routes a key through the registry. Commands the model owns
// run here; everything else goes to the active panel.
func (m Model) handleKeyMsg(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := k.String()

	if m.showHelp {
		switch s {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}

	if id, ok := m.keymap.Lookup(m.modes.Active(), s); ok {
		if cmd, handled := m.runCommand(id); handled {
			return m, cmd
		}
	}
	return m, m.forwardToPanel(k)
}

// runCommand executes a model-level command. handled is false for commands
// that belong to a panel.
func (m *Model) runCommand(id string) (cmd tea.Cmd, handled bool) {
	switch id {
	case cmdQuit:
		return tea.Quit, true
	case cmdToggleHelp:
		m.showHelp = !m.showHelp
	case cmdToggleTheme:
		next := styles.NextTheme(styles.GetCurrentThemeName())
		styles.ApplyThemeWithOverrides(next, m.cfg.UI.Theme.Overrides)
		m.cfg.UI.Theme.Name = next
		m.logger.Info("theme changed", "theme", next)
		return saveThemeCmd(m.configPath, next), true
	case cmdNewNote:
		return m.rule(m.controller.Create()), true
	case cmdOpenNote:
		return m.cards.Activate(), true
	case cmdCursorDown:
		m.cards.Move(0, 1)
	case cmdCursorUp:
		m.cards.Move(0, -1)
	case cmdCursorLeft:
		m.cards.Move(-1, 0)
	case cmdCursorRight:
		m.cards.Move(1, 0)
	case cmdCursorTop:
		m.cards.Top()
	case cmdCursorBottom:
		m.cards.Bottom()
	case cmdYank:
		note, ok := m.cards.CursorNote()
		if !ok {
			return nil, true
		}
		return yankCmd(m.copyText, note), true
	case cmdToggleMarkdown:
		m.cards.SetMarkdown(!m.cards.Markdown())
	case cmdToggleFooter:
		m.showFooter = !m.showFooter
		m.resize()
	case cmdLogin:
		return m.rule(m.controller.OpenForm(account.KindLogin)), true
	case cmdAccount:
		return m.rule(m.controller.OpenAccount()), true
	default:
		return nil, false
	}
	return nil, true
}

// forwardToPanel passes a message to the panel of the active mode.
func (m Model) forwardToPanel(message tea.Msg) tea.Cmd {
	switch m.modes.Active() {
	case mode.Editor:
		return m.editor.Update(message)
	case mode.Login:
		return m.login.Update(message)
	case mode.Signup:
		return m.signup.Update(message)
	case mode.Account:
		return m.accountPanel.Update(message)
	}
	return nil
}

// handleMouseMsg handles clicks on the header button, the card grid and the
// editor buttons, plus wheel scrolling over the grid.
func (m Model) handleMouseMsg(e tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if e.Action == tea.MouseActionPress {
			m.showHelp = false
		}
		return m, nil
	}

	switch e.Button {
	case tea.MouseButtonWheelUp:
		if m.modes.Is(mode.Normal) {
			m.cards.Scroll(-1)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.modes.Is(mode.Normal) {
			m.cards.Scroll(1)
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if e.Action != tea.MouseActionPress {
		return m, nil
	}

	if e.Y == 0 {
		if start, end := m.newButtonBounds(); e.X >= start && e.X < end {
			return m, m.rule(m.controller.Create())
		}
		return m, nil
	}

	y := e.Y - contentTop
	switch m.modes.Active() {
	case mode.Normal:
		return m, m.cards.Click(e.X, y)
	case mode.Editor:
		return m, m.editor.Click(e.X, y)
	}
	return m, nil
}

// authenticate starts a login or signup from a submitted form.
func (m *Model) authenticate(sub account.SubmitMsg) tea.Cmd {
	form := m.form(sub.Kind)
	form.SetError("")
	cmd, err := m.controller.Authenticate(sub.Kind, sub.Credentials)
	if errors.Is(err, ErrNoAuthenticator) {
		form.SetError("accounts are not available")
		return nil
	}
	if err != nil {
		return m.fail(err)
	}
	if cmd == nil {
		return nil
	}
	m.loading.SetLabel(sub.Kind.String() + " as " + sub.Credentials.Username + "...")
	return tea.Batch(cmd, m.loading.Tick())
}

// finishAuth applies a completed account request to the panels.
func (m *Model) finishAuth(done dispatch.DoneMsg) tea.Cmd {
	handled, err := m.controller.FinishAuth(done)
	if err != nil {
		return m.fail(err)
	}
	if !handled {
		return nil
	}

	session := m.controller.Session()
	m.accountPanel.SetSession(session)
	switch {
	case done.Name == actionLogout && done.Err != nil:
		return msg.ShowError(fmt.Errorf("logout: %w", done.Err))
	case done.Name == actionLogout:
		return msg.ShowToast("Logged out", msg.DefaultToastDuration)
	case session == nil || done.Err != nil:
		kind := account.KindLogin
		if done.Name == actionSignup {
			kind = account.KindSignup
		}
		reason := "request failed"
		if done.Err != nil {
			reason = done.Err.Error()
		}
		m.form(kind).SetError(reason)
		return nil
	default:
		m.login.Reset()
		m.signup.Reset()
		return msg.ShowToast("Signed in as "+session.Username, 3*time.Second)
	}
}

func (m *Model) form(kind account.Kind) *account.Form {
	if kind == account.KindSignup {
		return m.signup
	}
	return m.login
}
