package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backend identifiers.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the task manager application
type Config struct {
	Storage     StorageConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Backend  string `env:"TM_STORAGE_BACKEND"`
	Dir      string `env:"TM_DB_DIR"`
	Filename string `env:"TM_DB_FILENAME"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Dir      string `env:"TM_LOG_DIR"`
	Filename string `env:"TM_LOG_FILENAME"`
	Level    string `env:"TM_LOG_LEVEL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TM_APP_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".tm")

	return &Config{
		Storage: StorageConfig{
			Backend:  BackendSQLite,
			Dir:      defaultDir,
			Filename: "tasks.db",
		},
		Logging: LoggingConfig{
			Dir:      defaultDir,
			Filename: "tm.log",
			Level:    "info",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetLogPath returns the full path to the log file
func (c *Config) GetLogPath() string {
	return filepath.Join(c.Logging.Dir, c.Logging.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TM_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("TM_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TM_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}

	// Logging configuration
	if dir := os.Getenv("TM_LOG_DIR"); dir != "" {
		c.Logging.Dir = dir
	}
	if filename := os.Getenv("TM_LOG_FILENAME"); filename != "" {
		c.Logging.Filename = filename
	}
	if level := os.Getenv("TM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	// Application configuration
	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Backend != BackendMemory && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "backend must be \"memory\" or \"sqlite\""}
	}
	if c.Storage.Backend == BackendSQLite {
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "database directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
		}
	}

	// Validate logging configuration
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "level must be one of debug, info, warn, error"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
