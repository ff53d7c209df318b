package storage

import (
	"strings"

	"github.com/julianstephens/daylearn/internal/constants"
)

// New picks the provider for a config path: JSON for *.json, SQLite otherwise.
// ephemeral selects the in-memory store regardless of path.
func New(configPath string, ephemeral bool) Provider {
	switch {
	case ephemeral:
		return NewMemoryStore()
	case strings.HasSuffix(strings.ToLower(configPath), constants.JSONStoreExt):
		return NewJSONStore(configPath)
	default:
		return NewSQLiteStore(configPath)
	}
}
