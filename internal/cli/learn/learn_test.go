package learn

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/daylearn/internal/auth"
	"github.com/julianstephens/daylearn/internal/cli"
	"github.com/julianstephens/daylearn/internal/errors"
	"github.com/julianstephens/daylearn/internal/keyring"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/session"
	"github.com/julianstephens/daylearn/internal/storage"
)

// signedIn returns a context with a freshly signed-up user.
func signedIn(t *testing.T) (*cli.Context, *models.User, *bytes.Buffer) {
	t.Helper()
	gokeyring.MockInit()
	store := storage.NewMemoryStore()
	var out bytes.Buffer
	ctx := cli.NewContextWith(store, auth.NewLocalProvider(store, keyring.TokenStore{}), &out)
	ctx.Tray = nil
	user, err := ctx.Auth.SignUp("ada@example.com", "password123", models.Profile{})
	if err != nil {
		t.Fatal(err)
	}
	return ctx, user, &out
}

func TestCommandsRequireSignIn(t *testing.T) {
	gokeyring.MockInit()
	store := storage.NewMemoryStore()
	ctx := cli.NewContextWith(store, auth.NewLocalProvider(store, keyring.TokenStore{}), &bytes.Buffer{})

	commands := map[string]interface{ Run(*cli.Context) error }{
		"today": &TodayCmd{},
		"stats": &StatsCmd{},
		"reset": &ResetCmd{Yes: true},
	}
	for name, cmd := range commands {
		t.Run(name, func(t *testing.T) {
			if err := cmd.Run(ctx); !stderrors.Is(err, errors.ErrAuthFailure) {
				t.Errorf("Run() error = %v, want ErrAuthFailure", err)
			}
		})
	}
}

func TestTodayCmd(t *testing.T) {
	ctx, user, out := signedIn(t)
	if err := ctx.Progress.Save(user.ID, session.Snapshot{DayIndex: 1, Stats: models.Stats{TotalDays: 2, Streak: 2}}); err != nil {
		t.Fatal(err)
	}

	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("TodayCmd.Run() failed: %v", err)
	}
	day, _ := ctx.Catalog.GetDay(1)
	for _, want := range []string{fmt.Sprintf("Day 2 of %d", ctx.Catalog.Len()), "2 day streak", day.English.Term, day.Coding.Definition, day.StoicQuote.Author, "Yesterday's quiz"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("today output missing %q", want)
		}
	}
}

func TestTodayCmd_FirstDayHasNoQuiz(t *testing.T) {
	ctx, _, out := signedIn(t)
	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("TodayCmd.Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Day 1 of") || strings.Contains(out.String(), "Yesterday's quiz") {
		t.Errorf("unexpected day 1 output:\n%s", out.String())
	}
}

func TestStatsCmd(t *testing.T) {
	ctx, user, out := signedIn(t)
	snap := session.Snapshot{DayIndex: 2, Stats: models.Stats{TotalDays: 3, Streak: 3, CorrectAnswers: 5, TotalQuestions: 7}}
	if err := ctx.Progress.Save(user.ID, snap); err != nil {
		t.Fatal(err)
	}

	if err := (&StatsCmd{}).Run(ctx); err != nil {
		t.Fatalf("StatsCmd.Run() failed: %v", err)
	}
	for _, want := range []string{"Current day:     3", "Days learned:    3", "Correct answers: 5/7", "Quiz accuracy:   71%"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stats output missing %q:\n%s", want, out.String())
		}
	}
}

func TestResetCmd(t *testing.T) {
	ctx, user, out := signedIn(t)
	if err := ctx.Progress.Save(user.ID, session.Snapshot{DayIndex: 3, Stats: models.Stats{TotalDays: 4, Streak: 4}}); err != nil {
		t.Fatal(err)
	}

	if err := (&ResetCmd{Yes: true}).Run(ctx); err != nil {
		t.Fatalf("ResetCmd.Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Progress reset") {
		t.Errorf("missing reset notification: %q", out.String())
	}
	snap, err := ctx.Progress.Load(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if snap != session.DefaultSnapshot() {
		t.Errorf("progress after reset = %+v, want defaults", snap)
	}
}
