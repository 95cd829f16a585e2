// ABOUTME: Tests for fittracker configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/fittracker/internal/kv"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "badger"}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want %q", got, "badger")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := &Config{}
	if got := cfg.GetDataDir(); got != "/tmp/xdg-data/fittracker" {
		t.Errorf("GetDataDir() = %q", got)
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/fittracker-test"}
	if got := cfg.GetDataDir(); got != "/tmp/fittracker-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/fittracker-test")
	}
	if got := cfg.SQLitePath(); got != "/tmp/fittracker-test/fittracker.db" {
		t.Errorf("SQLitePath() = %q", got)
	}
	if got := cfg.BadgerDir(); got != "/tmp/fittracker-test/badger" {
		t.Errorf("BadgerDir() = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/fit", filepath.Join(home, "data/fit")},
		{"data/fit", "data/fit"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fit-data"}
	want := filepath.Join(home, "fit-data")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "badger", DataDir: "/tmp/fit-data", LogLevel: "debug"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{Backend: "sqlite"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "fittracker")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "fittracker")
	_ = os.MkdirAll(configDir, 0755)
	_ = os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	want := filepath.Join(tmpDir, "fittracker", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenBackendSQLite(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{Backend: "sqlite", DataDir: tmpDir}

	backend, err := cfg.OpenBackend()
	if err != nil {
		t.Fatalf("OpenBackend() for sqlite failed: %v", err)
	}
	defer backend.Close()

	if _, ok := backend.(*kv.SQLiteBackend); !ok {
		t.Errorf("got %T, want *kv.SQLiteBackend", backend)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "fittracker.db")); os.IsNotExist(err) {
		t.Error("Expected fittracker.db to be created")
	}
}

func TestOpenBackendBadger(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{Backend: "badger", DataDir: tmpDir}

	backend, err := cfg.OpenBackend()
	if err != nil {
		t.Fatalf("OpenBackend() for badger failed: %v", err)
	}
	defer backend.Close()

	if err := backend.Set("fittracker_x", []byte("1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	nonEmpty, _ := kv.IsDirNonEmpty(filepath.Join(tmpDir, "badger"))
	if !nonEmpty {
		t.Error("Expected badger directory to be populated")
	}
}

func TestOpenBackendMemory(t *testing.T) {
	cfg := &Config{Backend: "memory"}

	backend, err := cfg.OpenBackend()
	if err != nil {
		t.Fatalf("OpenBackend() for memory failed: %v", err)
	}
	if _, ok := backend.(*kv.MemoryBackend); !ok {
		t.Errorf("got %T, want *kv.MemoryBackend", backend)
	}
}

func TestOpenBackendInvalid(t *testing.T) {
	cfg := &Config{Backend: "invalid", DataDir: "/tmp"}

	_, err := cfg.OpenBackend()
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("Expected unknown backend error, got %v", err)
	}
}

func TestOpenBackendDefault(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	backend, err := cfg.OpenBackend()
	if err != nil {
		t.Fatalf("OpenBackend() with default backend failed: %v", err)
	}
	defer backend.Close()
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := (&Config{}).Logger(&buf)
	if err != nil {
		t.Fatalf("Logger() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("default level should be warn, got %q", buf.String())
	}

	buf.Reset()
	logger, err = (&Config{LogLevel: "debug"}).Logger(&buf)
	if err != nil {
		t.Fatalf("Logger() failed: %v", err)
	}
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug level not applied, got %q", buf.String())
	}

	if _, err := (&Config{LogLevel: "loud"}).Logger(&buf); err == nil {
		t.Error("Expected error for invalid log level")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
