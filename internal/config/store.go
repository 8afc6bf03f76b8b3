package config

import (
	"fmt"
	"log/slog"
	"os"

	"task-manager/internal/store"
	"task-manager/internal/store/memory"
	"task-manager/internal/store/sqlite"
)

// CreateStore creates the store instance selected by the configuration.
// The choice is resolved exactly once, before any use case executes; the
// caller owns the returned store and must Close it at shutdown.
func CreateStore(cfg *Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.Storage.Backend {
	case BackendMemory:
		return memory.New(logger), nil
	case BackendSQLite:
		if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		s, err := sqlite.New(cfg.GetDatabasePath(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return s, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend %q", cfg.Storage.Backend)}
	}
}

// CreateTestStore creates an in-memory sqlite store for testing
func CreateTestStore() (store.Store, error) {
	s, err := sqlite.New(":memory:", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return s, nil
}
