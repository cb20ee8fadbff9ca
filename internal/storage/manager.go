// Package storage provides the top-level StorageManager coordinating the
// storage areas.
package storage

import (
	"fmt"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/storage/memstore"
	"github.com/Pranav-1100/finagent/internal/storage/userdb"
)

// MemoryPath selects the in-memory store instead of BadgerHold. Data is
// lost on restart; intended for development and tests.
const MemoryPath = ":memory:"

// Manager implements interfaces.StorageManager.
type Manager struct {
	user   interfaces.UserStore
	logger *common.Logger
}

// NewManager creates a StorageManager from config.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	var (
		user interfaces.UserStore
		err  error
	)

	path := config.Storage.User.Path
	if path == MemoryPath {
		user = memstore.NewStore()
		logger.Warn().Msg("Using in-memory storage, data will not persist")
	} else {
		user, err = userdb.NewStore(logger, path)
		if err != nil {
			return nil, fmt.Errorf("failed to create user store: %w", err)
		}
	}

	return &Manager{user: user, logger: logger}, nil
}

// NewManagerWithStore wraps an existing UserStore; used by tests.
func NewManagerWithStore(user interfaces.UserStore, logger *common.Logger) *Manager {
	return &Manager{user: user, logger: logger}
}

// UserStorage returns the user data store.
func (m *Manager) UserStorage() interfaces.UserStore {
	return m.user
}

// Close releases all storage resources.
func (m *Manager) Close() error {
	if m.user != nil {
		return m.user.Close()
	}
	return nil
}

// Ensure Manager implements StorageManager
var _ interfaces.StorageManager = (*Manager)(nil)
