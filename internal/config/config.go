// Package config loads shoplist settings from a YAML file with environment
// overrides (SHOPLIST_STORAGE_BACKEND, SHOPLIST_LOGGING_LEVEL, ...).
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "shoplist.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SHOPLIST"

// Config holds all shoplist configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// StorageConfig selects the key-value slot backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // json | sqlite | memory
	// Path is a directory for json and a database file for sqlite.
	Path string `yaml:"path"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
	File  string `yaml:"file"`  // empty: stderr (CLI) or discarded (TUI)
}

// UIConfig tunes terminal output.
type UIConfig struct {
	Theme string `yaml:"theme"` // classic | neon | mono
	Color string `yaml:"color"` // auto | always | never
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendJSON},
		Logging: LoggingConfig{Level: "warn"},
		UI:      UIConfig{Theme: "classic", Color: "auto"},
	}
}

// Load reads path (a missing file means defaults), then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects unknown enumerated values.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.UI.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	switch c.UI.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("ui.color: unknown mode %q", c.UI.Color)
	}
	return nil
}

// StoragePath resolves the backend path, filling in per-backend defaults.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == BackendSQLite {
		return "shoplist.db"
	}
	return "."
}
