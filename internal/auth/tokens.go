package auth

import (
	"errors"
	"sync"
)

var errNoToken = errors.New("no session token")

// MemoryTokens is a process-local token slot for runs that must not touch the OS keyring.
type MemoryTokens struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryTokens) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", errNoToken
	}
	return m.token, nil
}

func (m *MemoryTokens) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokens) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return errNoToken
	}
	m.token = ""
	return nil
}

func (m *MemoryTokens) IsNotFound(err error) bool { return errors.Is(err, errNoToken) }
