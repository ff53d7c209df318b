package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daylearn/internal/cli"
	"github.com/julianstephens/daylearn/internal/cli/account"
	"github.com/julianstephens/daylearn/internal/cli/backups"
	"github.com/julianstephens/daylearn/internal/cli/learn"
	"github.com/julianstephens/daylearn/internal/cli/system"
	"github.com/julianstephens/daylearn/internal/constants"
	"github.com/julianstephens/daylearn/internal/errors"
	"github.com/julianstephens/daylearn/internal/logger"
	"github.com/julianstephens/daylearn/internal/storage"
)

var CLI struct {
	Version   kong.VersionFlag
	Config    string `help:"Storage file path (.json selects the JSON store)." type:"path" default:"${default_config}" env:"DAYLEARN_CONFIG"`
	Debug     bool   `help:"Enable debug logging to stderr."`
	Ephemeral bool   `help:"Keep everything in memory; nothing is saved."`

	Init   system.InitCmd   `cmd:"" help:"Initialize daylearn storage."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive app." default:"1"`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`

	Signup account.SignupCmd `cmd:"" help:"Create an account and sign in."`
	Login  account.LoginCmd  `cmd:"" help:"Sign in to an existing account."`
	Logout account.LogoutCmd `cmd:"" help:"Sign out."`
	Whoami account.WhoamiCmd `cmd:"" help:"Show the signed-in user."`

	Today learn.TodayCmd `cmd:"" help:"Show today's learning cards."`
	Stats learn.StatsCmd `cmd:"" help:"Show your learning statistics."`
	Reset learn.ResetCmd `cmd:"" help:"Reset your progress to day 1."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("One new idea per category every day, with a quiz on yesterday's."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	store := storage.New(CLI.Config, CLI.Ephemeral)

	// Init and doctor handle loading themselves.
	if name := ctx.Command(); name != "init" && name != "doctor" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err := ctx.Run(cli.NewContext(store))
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}
	errors.Fatal(err)
}
