package account

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStub_AcceptsAnyUsername(t *testing.T) {
	a := NewStub(nil, 0)
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	s, err := a.Login(context.Background(), Credentials{Username: " ada ", Password: ""})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if s.Username != "ada" {
		t.Errorf("got user %q, want ada", s.Username)
	}
	if !s.Since.Equal(fixed) {
		t.Errorf("got since %v, want %v", s.Since, fixed)
	}
}

func TestStub_RejectsEmptyUsername(t *testing.T) {
	a := NewStub(nil, 0)
	for _, fn := range []func(context.Context, Credentials) (Session, error){a.Login, a.Signup} {
		if _, err := fn(context.Background(), Credentials{Username: "  "}); !errors.Is(err, ErrMissingUsername) {
			t.Errorf("got error %v, want ErrMissingUsername", err)
		}
	}
}

func TestStub_HonorsCancellation(t *testing.T) {
	a := NewStub(nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.Signup(ctx, Credentials{Username: "ada"}); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
	if err := a.Logout(ctx, Session{Username: "ada"}); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}

func TestKind(t *testing.T) {
	if KindLogin.String() != "login" || KindSignup.String() != "signup" {
		t.Errorf("got %q/%q", KindLogin, KindSignup)
	}
	if KindLogin.Other() != KindSignup || KindSignup.Other() != KindLogin {
		t.Error("Other should flip the kind")
	}
}
