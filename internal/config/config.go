// ABOUTME: Fittracker configuration management with backend selection.
// ABOUTME: Handles settings, log level, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittracker/internal/kv"
)

// Backend names accepted in the config file.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Backends lists every supported backend.
var Backends = []string{BackendSQLite, BackendBadger, BackendCharm, BackendMemory}

// Config stores fittracker configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger",
	// "charm", or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local backends.
	// SQLite puts fittracker.db here; Badger uses a badger/ subdirectory.
	// Supports ~ expansion. Defaults to ~/.local/share/fittracker.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel controls storage failure logging. Defaults to "warn".
	LogLevel string `json:"log_level,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// DefaultDataDir returns $XDG_DATA_HOME/fittracker.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittracker")
}

// SQLitePath is where the sqlite backend keeps its database.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.GetDataDir(), "fittracker.db")
}

// BadgerDir is where the badger backend keeps its files.
func (c *Config) BadgerDir() string {
	return filepath.Join(c.GetDataDir(), "badger")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenBackend opens the configured storage backend.
func (c *Config) OpenBackend() (kv.Backend, error) {
	return c.OpenNamedBackend(c.GetBackend())
}

// OpenNamedBackend opens a backend by name using this config's data directory.
func (c *Config) OpenNamedBackend(name string) (kv.Backend, error) {
	switch name {
	case BackendSQLite:
		return kv.OpenSQLite(c.SQLitePath())
	case BackendBadger:
		return kv.OpenBadger(c.BadgerDir())
	case BackendCharm:
		return kv.OpenCharm()
	case BackendMemory:
		return kv.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q (want one of %s)", name, strings.Join(Backends, ", "))
	}
}

// Logger builds the storage logger at the configured level.
func (c *Config) Logger(w io.Writer) (*log.Logger, error) {
	logger := kv.DefaultLogger(w)
	if c.LogLevel == "" {
		return logger, nil
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittracker", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
