package tui

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylearn/internal/constants"
)

// newAuthForm builds the sign-in or sign-up form bound to data.
func newAuthForm(data *AuthFormModel) *huh.Form {
	fields := []huh.Field{}
	if data.SignUp {
		fields = append(fields,
			huh.NewInput().
				Title("Full name").
				Value(&data.FullName),
			huh.NewInput().
				Title("Username").
				Value(&data.Username),
		)
	}
	fields = append(fields,
		huh.NewInput().
			Title("Email").
			Value(&data.Email).
			Validate(validateEmail),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&data.Password).
			Validate(validatePassword(data.SignUp)),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true)
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func validatePassword(signUp bool) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("password is required")
		}
		if signUp && len(s) < constants.MinPasswordLength {
			return fmt.Errorf("password must be at least %d characters", constants.MinPasswordLength)
		}
		return nil
	}
}
