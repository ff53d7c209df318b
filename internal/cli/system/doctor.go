package system

import (
	"fmt"

	"github.com/julianstephens/daylearn/internal/auth"
	"github.com/julianstephens/daylearn/internal/cli"
	"github.com/julianstephens/daylearn/internal/keyring"
	"github.com/julianstephens/daylearn/internal/quiz"
	"github.com/julianstephens/daylearn/internal/storage"
)

type DoctorCmd struct{}

type checkResult int

const (
	checkOK checkResult = iota
	checkWarn
	checkFail
	checkSkipped
)

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failures := 0
	report := func(name string, result checkResult, detail string) {
		switch result {
		case checkOK:
			ctx.Printf("✓ %s: OK\n", name)
		case checkWarn:
			ctx.Printf("⚠ %s: WARNING\n", name)
		case checkFail:
			ctx.Printf("❌ %s: FAIL\n", name)
			failures++
		case checkSkipped:
			ctx.Printf("⊘ %s: SKIPPED\n", name)
		}
		if detail != "" {
			ctx.Printf("   %s\n", detail)
		}
	}

	reachable := checkStorageReachable(ctx)
	if reachable != nil {
		report("Storage reachable", checkFail, reachable.Error())
	} else {
		report("Storage reachable", checkOK, ctx.Store.GetConfigPath())
	}

	if reachable != nil {
		report("Schema version", checkSkipped, "storage not reachable")
	} else {
		result, detail := checkSchemaVersion(ctx)
		report("Schema version", result, detail)
	}

	if err := checkContent(ctx); err != nil {
		report("Learning content", checkFail, err.Error())
	} else {
		report("Learning content", checkOK, fmt.Sprintf("%d days", ctx.Catalog.Len()))
	}

	if keyring.IsAvailable() {
		report("Keyring available", checkOK, "")
	} else {
		report("Keyring available", checkFail, "sign in needs an OS keyring to hold the session")
	}

	result, detail := checkAccounts(ctx)
	report("Local accounts", result, detail)

	result, detail = checkBackupsPresent(ctx)
	report("Backups present", result, detail)

	if ctx.Tray != nil && ctx.Tray.Available() {
		report("Tray companion", checkOK, "")
	} else {
		report("Tray companion", checkWarn, "not running; TUI notifications stay in the terminal")
	}

	ctx.Println()
	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	_, err := ctx.Store.Keys("")
	return err
}

func checkSchemaVersion(ctx *cli.Context) (checkResult, string) {
	store, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return checkSkipped, "only SQLite storage is versioned"
	}
	current, latest, err := store.SchemaVersion()
	if err != nil {
		return checkFail, err.Error()
	}
	if current != latest {
		return checkFail, fmt.Sprintf("schema version %d, expected %d", current, latest)
	}
	return checkOK, fmt.Sprintf("version %d", current)
}

// checkContent verifies every day that is reviewed the day after yields a full question set.
func checkContent(ctx *cli.Context) error {
	days := ctx.Catalog.Days()
	for i := 0; i < len(days)-1; i++ {
		questions := quiz.Synthesize(days[i])
		if len(questions) == 0 {
			return fmt.Errorf("day %d produced no questions", i+1)
		}
		for _, q := range questions {
			seen := map[string]bool{}
			for _, opt := range q.Options {
				if seen[opt] {
					return fmt.Errorf("day %d %s question repeats option %q", i+1, q.Category, opt)
				}
				seen[opt] = true
			}
		}
	}
	return nil
}

func checkAccounts(ctx *cli.Context) (checkResult, string) {
	local, ok := ctx.Auth.(*auth.LocalProvider)
	if !ok {
		return checkSkipped, "accounts are not stored locally"
	}
	emails, err := local.Accounts()
	if err != nil {
		return checkWarn, err.Error()
	}
	if len(emails) == 0 {
		return checkWarn, "no accounts yet; sign up in 'daylearn tui'"
	}
	return checkOK, fmt.Sprintf("%d account(s)", len(emails))
}

func checkBackupsPresent(ctx *cli.Context) (checkResult, string) {
	mgr := ctx.BackupManager()
	if mgr == nil {
		return checkSkipped, "backups are only taken for SQLite storage"
	}
	backups, err := mgr.List()
	if err != nil {
		return checkWarn, err.Error()
	}
	if len(backups) == 0 {
		return checkWarn, "no backups yet; run 'daylearn backup create'"
	}
	return checkOK, fmt.Sprintf("%d backup(s), newest %s", len(backups), backups[0].Name())
}
