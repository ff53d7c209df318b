// Package auth signs learners in and out. Accounts live in the local key-value store and
// the active session is a signed token kept in the OS keyring.
package auth

import (
	"github.com/julianstephens/daylearn/internal/models"
)

// Provider is the identity collaborator the app calls into.
type Provider interface {
	// CurrentUser returns the signed-in user, or nil when no valid session exists.
	CurrentUser() (*models.User, error)
	SignIn(email, password string) (*models.User, error)
	SignUp(email, password string, profile models.Profile) (*models.User, error)
	SignOut() error
}

// TokenStore is the slot that holds the session token between runs.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
	IsNotFound(err error) bool
}
