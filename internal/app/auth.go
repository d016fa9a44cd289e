package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notedeck/internal/account"
	"github.com/marcus/notedeck/internal/dispatch"
	"github.com/marcus/notedeck/internal/mode"
)

// Dispatcher action names for account requests.
const (
	actionLogin  = "login"
	actionSignup = "signup"
	actionLogout = "logout"
)

// ErrNoAuthenticator is reported when an account action runs without an
// authenticator configured.
var ErrNoAuthenticator = errors.New("app: no authenticator configured")

// authResult is the payload of a finished login or signup.
type authResult struct {
	session account.Session
}

// Session returns the signed-in user, or nil.
func (c *Controller) Session() *account.Session { return c.session }

func formMode(kind account.Kind) string {
	if kind == account.KindSignup {
		return mode.Signup
	}
	return mode.Login
}

// OpenForm shows the login or signup form.
func (c *Controller) OpenForm(kind account.Kind) error {
	return c.run("open-"+kind.String(), func() error {
		return c.modes.Switch(formMode(kind))
	})
}

// OpenAccount shows the account panel, or the login form when nobody is
// signed in.
func (c *Controller) OpenAccount() error {
	if c.session == nil {
		return c.OpenForm(account.KindLogin)
	}
	return c.run("open-account", func() error {
		return c.modes.Switch(mode.Account)
	})
}

// Back returns from an account panel to the card list.
func (c *Controller) Back() error {
	return c.run("back", func() error {
		return c.modes.Switch(mode.Normal)
	})
}

// Authenticate starts a login or signup and shows the loading panel. The
// returned command performs the request and yields a dispatch.DoneMsg to be
// passed to FinishAuth. It returns a nil command when another action is
// still running.
func (c *Controller) Authenticate(kind account.Kind, creds account.Credentials) (tea.Cmd, error) {
	if c.auth == nil {
		return nil, ErrNoAuthenticator
	}
	name := actionLogin
	if kind == account.KindSignup {
		name = actionSignup
	}

	auth := c.auth
	cmd := c.dispatch.Cmd(c.ctx, name, func(ctx context.Context) (tea.Msg, error) {
		var (
			s   account.Session
			err error
		)
		if kind == account.KindSignup {
			s, err = auth.Signup(ctx, creds)
		} else {
			s, err = auth.Login(ctx, creds)
		}
		return authResult{session: s}, err
	})
	if cmd == nil {
		return nil, nil
	}
	return cmd, c.modes.Switch(mode.Loading)
}

// Logout ends the session and shows the loading panel while the request
// runs. It returns a nil command when nobody is signed in or another
// action is still running.
func (c *Controller) Logout() (tea.Cmd, error) {
	if c.auth == nil {
		return nil, ErrNoAuthenticator
	}
	if c.session == nil {
		return nil, nil
	}

	auth, s := c.auth, *c.session
	cmd := c.dispatch.Cmd(c.ctx, actionLogout, func(ctx context.Context) (tea.Msg, error) {
		return nil, auth.Logout(ctx, s)
	})
	if cmd == nil {
		return nil, nil
	}
	return cmd, c.modes.Switch(mode.Loading)
}

// FinishAuth applies the outcome of an account request and then frees the
// dispatcher, so rules triggered while the request was in flight stay
// dropped. A failed login or signup goes back to its form; success shows the
// account panel. Logout always clears the session. handled is false for
// messages from other actions.
func (c *Controller) FinishAuth(done dispatch.DoneMsg) (handled bool, err error) {
	switch done.Name {
	case actionLogin, actionSignup, actionLogout:
		defer c.dispatch.Release(done)
	}

	switch done.Name {
	case actionLogout:
		if done.Err != nil {
			c.logger.Warn("logout failed", "err", done.Err)
		}
		c.session = nil
		return true, c.modes.Switch(mode.Normal)

	case actionLogin, actionSignup:
		kind := account.KindLogin
		if done.Name == actionSignup {
			kind = account.KindSignup
		}
		res, ok := done.Result.(authResult)
		if done.Err != nil || !ok {
			c.logger.Info(done.Name+" failed", "err", done.Err)
			return true, c.modes.Switch(formMode(kind))
		}
		c.session = &res.session
		c.logger.Info(done.Name+" succeeded", "user", res.session.Username)
		return true, c.modes.Switch(mode.Account)
	}
	return false, nil
}
