// Package keyring keeps the signed-in session token in the OS keyring.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/daylearn/internal/constants"
)

var (
	// ErrNotFound is returned when no session token is stored
	ErrNotFound = errors.New("session token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetSessionToken returns the stored session token or ErrNotFound.
func GetSessionToken() (string, error) {
	token, err := keyring.Get(constants.KeyringService, constants.KeyringSessionUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetSessionToken replaces the stored session token.
func SetSessionToken(token string) error {
	if token == "" {
		return errors.New("session token cannot be empty")
	}
	if err := keyring.Set(constants.KeyringService, constants.KeyringSessionUser, token); err != nil {
		return fmt.Errorf("failed to store session token in keyring: %w", err)
	}
	return nil
}

// DeleteSessionToken removes the stored session token. Returns ErrNotFound if none is stored.
func DeleteSessionToken() error {
	err := keyring.Delete(constants.KeyringService, constants.KeyringSessionUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session token from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.KeyringService, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// TokenStore adapts the package functions to the token slot interface used by auth.
type TokenStore struct{}

func (TokenStore) Get() (string, error) { return GetSessionToken() }
func (TokenStore) Set(token string) error { return SetSessionToken(token) }
func (TokenStore) Delete() error { return DeleteSessionToken() }

// IsNotFound reports whether err means no token is stored.
func (TokenStore) IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
