package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "tasks.db", cfg.Storage.Filename)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestGetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = "/tmp/tm-test"
	cfg.Storage.Filename = "tasks.db"

	assert.Equal(t, filepath.Join("/tmp/tm-test", "tasks.db"), cfg.GetDatabasePath())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TM_STORAGE_BACKEND", "memory")
	t.Setenv("TM_DB_DIR", "/tmp/envdir")
	t.Setenv("TM_LOG_LEVEL", "debug")
	t.Setenv("TM_APP_TIMEOUT", "30s")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/envdir", cfg.Storage.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Backend = "postgres"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.backend")
}

func TestValidateRejectsEmptyDatabaseDir(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.dir")
}

func TestValidateMemoryBackendIgnoresDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Backend = BackendMemory
	cfg.Storage.Dir = ""
	cfg.Storage.Filename = ""

	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	cfg := NewConfig()
	cfg.Application.Timeout = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application.timeout")
}
