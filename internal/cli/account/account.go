package account

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylearn/internal/cli"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/notifier"
)

// promptPassword asks for a password on the terminal without echoing it.
func promptPassword(title string) (string, error) {
	var password string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Run()
	if err != nil {
		return "", fmt.Errorf("password prompt failed: %w", err)
	}
	return password, nil
}

type SignupCmd struct {
	Email    string `arg:"" help:"Email address for the new account."`
	FullName string `help:"Your full name." name:"full-name"`
	Username string `help:"Display username."`
	Password string `help:"Account password (prompted when omitted)." env:"DAYLEARN_PASSWORD"`
}

func (c *SignupCmd) Run(ctx *cli.Context) error {
	password := c.Password
	if password == "" {
		var err error
		if password, err = promptPassword("Choose a password"); err != nil {
			return err
		}
	}

	user, err := ctx.Auth.SignUp(c.Email, password, models.Profile{FullName: c.FullName, Username: c.Username})
	if err != nil {
		ctx.Notify("Error signing up", err.Error(), notifier.Error)
		return err
	}
	ctx.Notify("Account created!", "Signed in as "+user.DisplayName()+".", notifier.Success)
	return nil
}

type LoginCmd struct {
	Email    string `arg:"" help:"Account email address."`
	Password string `help:"Account password (prompted when omitted)." env:"DAYLEARN_PASSWORD"`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	password := c.Password
	if password == "" {
		var err error
		if password, err = promptPassword("Password"); err != nil {
			return err
		}
	}

	user, err := ctx.Auth.SignIn(c.Email, password)
	if err != nil {
		ctx.Notify("Error signing in", err.Error(), notifier.Error)
		return err
	}
	ctx.Notify("Welcome back!", "Signed in as "+user.DisplayName()+".", notifier.Success)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := ctx.Auth.SignOut(); err != nil {
		ctx.Notify("Error signing out", err.Error(), notifier.Error)
		return err
	}
	ctx.Notify("Signed out", "See you tomorrow.", notifier.Info)
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	ctx.Printf("%s\n", user.DisplayName())
	ctx.Printf("  Email:    %s\n", user.Email)
	if user.Username != "" {
		ctx.Printf("  Username: %s\n", user.Username)
	}
	if !user.CreatedAt.IsZero() {
		ctx.Printf("  Joined:   %s\n", user.CreatedAt.Format("2006-01-02"))
	}
	return nil
}
