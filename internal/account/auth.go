// Package account holds the login, signup, account and loading panels and
// the authenticator they talk to.
package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Kind distinguishes the two credential forms.
type Kind int

const (
	KindLogin Kind = iota
	KindSignup
)

func (k Kind) String() string {
	if k == KindSignup {
		return "signup"
	}
	return "login"
}

// Other returns the opposite form kind.
func (k Kind) Other() Kind {
	if k == KindSignup {
		return KindLogin
	}
	return KindSignup
}

// ErrMissingUsername is returned when credentials carry no username.
var ErrMissingUsername = errors.New("account: username required")

// Credentials are what the forms collect.
type Credentials struct {
	Username string
	Password string
}

// Session is a signed-in user.
type Session struct {
	Username string
	Since    time.Time
}

// Authenticator performs account requests.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (Session, error)
	Signup(ctx context.Context, creds Credentials) (Session, error)
	Logout(ctx context.Context, s Session) error
}

// StubAuthenticator accepts any non-empty username. Nothing leaves the
// process; every attempt is logged.
type StubAuthenticator struct {
	logger *slog.Logger
	delay  time.Duration
	now    func() time.Time
}

// NewStub returns a stub that waits delay before answering.
func NewStub(logger *slog.Logger, delay time.Duration) *StubAuthenticator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StubAuthenticator{logger: logger, delay: delay, now: time.Now}
}

func (a *StubAuthenticator) Login(ctx context.Context, creds Credentials) (Session, error) {
	return a.attempt(ctx, KindLogin, creds)
}

func (a *StubAuthenticator) Signup(ctx context.Context, creds Credentials) (Session, error) {
	return a.attempt(ctx, KindSignup, creds)
}

func (a *StubAuthenticator) Logout(ctx context.Context, s Session) error {
	a.logger.Info("logout requested", "user", s.Username)
	return a.wait(ctx)
}

func (a *StubAuthenticator) attempt(ctx context.Context, kind Kind, creds Credentials) (Session, error) {
	username := strings.TrimSpace(creds.Username)
	a.logger.Info(kind.String()+" requested", "user", username)

	if err := a.wait(ctx); err != nil {
		return Session{}, err
	}
	if username == "" {
		return Session{}, ErrMissingUsername
	}
	return Session{Username: username, Since: a.now()}, nil
}

func (a *StubAuthenticator) wait(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
