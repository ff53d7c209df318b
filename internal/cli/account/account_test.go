package account

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/daylearn/internal/auth"
	"github.com/julianstephens/daylearn/internal/cli"
	"github.com/julianstephens/daylearn/internal/errors"
	"github.com/julianstephens/daylearn/internal/keyring"
	"github.com/julianstephens/daylearn/internal/storage"
)

func newContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	gokeyring.MockInit()
	store := storage.NewMemoryStore()
	var out bytes.Buffer
	ctx := cli.NewContextWith(store, auth.NewLocalProvider(store, keyring.TokenStore{}), &out)
	ctx.Tray = nil
	return ctx, &out
}

func TestSignupWhoamiLogout(t *testing.T) {
	ctx, out := newContext(t)

	signup := &SignupCmd{Email: "ada@example.com", FullName: "Ada Lovelace", Username: "ada", Password: "password123"}
	if err := signup.Run(ctx); err != nil {
		t.Fatalf("SignupCmd.Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Account created!") {
		t.Errorf("missing success notification: %q", out.String())
	}

	out.Reset()
	if err := (&WhoamiCmd{}).Run(ctx); err != nil {
		t.Fatalf("WhoamiCmd.Run() failed: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "ada@example.com", "Username: ada"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("whoami output missing %q: %q", want, out.String())
		}
	}

	if err := (&LogoutCmd{}).Run(ctx); err != nil {
		t.Fatalf("LogoutCmd.Run() failed: %v", err)
	}
	err := (&WhoamiCmd{}).Run(ctx)
	if !stderrors.Is(err, errors.ErrAuthFailure) {
		t.Errorf("whoami after logout error = %v, want ErrAuthFailure", err)
	}
}

func TestLogin(t *testing.T) {
	ctx, out := newContext(t)
	if err := (&SignupCmd{Email: "ada@example.com", Password: "password123"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&LogoutCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
		want     string
	}{
		{name: "wrong password", password: "not-the-one", wantErr: true, want: "Error signing in"},
		{name: "correct password", password: "password123", want: "Welcome back!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := (&LoginCmd{Email: "ada@example.com", Password: tt.password}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoginCmd.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q missing %q", out.String(), tt.want)
			}
		})
	}

	user, err := ctx.RequireUser()
	if err != nil || user.Email != "ada@example.com" {
		t.Errorf("RequireUser() = %v, %v", user, err)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	ctx, out := newContext(t)
	err := (&SignupCmd{Email: "ada@example.com", Password: "short"}).Run(ctx)
	if !stderrors.Is(err, errors.ErrAuthFailure) {
		t.Fatalf("SignupCmd.Run() error = %v, want ErrAuthFailure", err)
	}
	if !strings.Contains(out.String(), "Error signing up") {
		t.Errorf("missing error notification: %q", out.String())
	}
}
