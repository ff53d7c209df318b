package storage

import "errors"

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// KV is the string key-value surface the learning session persists through.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value
	KV

	// Utils
	GetConfigPath() string
}
