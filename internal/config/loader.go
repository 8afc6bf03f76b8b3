package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the TOML config file looked up in the config directory.
const ConfigFileName = "config.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config  *Config
	confDir string
}

// NewLoader creates a new configuration loader reading the config file
// from the default directory (~/.tm).
func NewLoader() *Loader {
	homeDir, _ := os.UserHomeDir()
	return &Loader{
		config:  NewConfig(),
		confDir: filepath.Join(homeDir, ".tm"),
	}
}

// NewLoaderWithDir creates a new configuration loader with a custom
// config directory. This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{
		config:  NewConfig(),
		confDir: confDir,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (applied separately by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.applyConfigFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// fileConfig mirrors Config for TOML decoding. Pointer fields distinguish
// "absent" from "set to the zero value"; durations are strings.
type fileConfig struct {
	Storage *struct {
		Backend  *string `toml:"backend"`
		Dir      *string `toml:"dir"`
		Filename *string `toml:"filename"`
	} `toml:"storage"`
	Logging *struct {
		Dir      *string `toml:"dir"`
		Filename *string `toml:"filename"`
		Level    *string `toml:"level"`
	} `toml:"logging"`
	Application *struct {
		Timeout *string `toml:"timeout"`
	} `toml:"application"`
}

// applyConfigFile merges the TOML config file into the configuration.
// A missing file is not an error.
func (l *Loader) applyConfigFile() error {
	path := filepath.Join(l.confDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Storage != nil {
		if fc.Storage.Backend != nil {
			l.config.Storage.Backend = *fc.Storage.Backend
		}
		if fc.Storage.Dir != nil {
			l.config.Storage.Dir = *fc.Storage.Dir
		}
		if fc.Storage.Filename != nil {
			l.config.Storage.Filename = *fc.Storage.Filename
		}
	}
	if fc.Logging != nil {
		if fc.Logging.Dir != nil {
			l.config.Logging.Dir = *fc.Logging.Dir
		}
		if fc.Logging.Filename != nil {
			l.config.Logging.Filename = *fc.Logging.Filename
		}
		if fc.Logging.Level != nil {
			l.config.Logging.Level = *fc.Logging.Level
		}
	}
	if fc.Application != nil && fc.Application.Timeout != nil {
		if d, err := time.ParseDuration(*fc.Application.Timeout); err == nil {
			l.config.Application.Timeout = d
		}
	}

	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Backend    *string
	DBDir      *string
	DBFilename *string

	// Logging overrides
	LogLevel *string

	// Application overrides
	Timeout *time.Duration
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}
	if overrides.DBDir != nil {
		config.Storage.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Storage.Filename = *overrides.DBFilename
	}
	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
}
