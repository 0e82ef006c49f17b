package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	herrors "github.com/vango-dev/htmlnode/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if cfg.Site.Title != DefaultTitle {
		t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, DefaultTitle)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultMetricsNamespace)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.Is(err, herrors.Sentinel(herrors.CodeConfigNotFound)) {
		t.Errorf("Load on empty dir = %v, want %s", err, herrors.CodeConfigNotFound)
	}

	configJSON := `{
  "name": "docs",
  "site": {"title": "Docs"},
  "dev": {"port": 8080, "host": "0.0.0.0", "hotReload": false},
  "publish": {"bucket": "site", "prefix": "docs/"}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "docs" {
		t.Errorf("Name = %q, want %q", cfg.Name, "docs")
	}
	if cfg.Site.Title != "Docs" {
		t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "Docs")
	}
	if cfg.Dev.Port != 8080 {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, 8080)
	}
	if cfg.Dev.HotReload {
		t.Error("Dev.HotReload should be false")
	}
	if cfg.Publish.Bucket != "site" || cfg.Publish.Prefix != "docs/" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	// Unset fields keep their defaults.
	if cfg.Publish.Region != DefaultRegion {
		t.Errorf("Publish.Region = %q, want %q", cfg.Publish.Region, DefaultRegion)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	if err := os.WriteFile(configPath, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if code := herrors.CodeOf(err); code != herrors.CodeConfigInvalid {
		t.Errorf("code = %q, want %q", code, herrors.CodeConfigInvalid)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Dev.Port = 9000
	cfg.Metrics.Enabled = false

	if err := cfg.Save(); err == nil {
		t.Error("Expected error when saving without path")
	}

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Dev.Port != 9000 {
		t.Errorf("Dev.Port = %d, want %d", loaded.Dev.Port, 9000)
	}
	if loaded.Metrics.Enabled {
		t.Error("Metrics.Enabled should survive a round trip as false")
	}

	loaded.Dev.Port = 9001
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	reloaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if reloaded.Dev.Port != 9001 {
		t.Errorf("Dev.Port = %d, want %d", reloaded.Dev.Port, 9001)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative port", func(c *Config) { c.Dev.Port = -1 }, false},
		{"port too large", func(c *Config) { c.Dev.Port = 70000 }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"upper-case level", func(c *Config) { c.Log.Level = "DEBUG" }, true},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"json format", func(c *Config) { c.Log.Format = "json" }, true},
		{"absolute prefix", func(c *Config) { c.Publish.Prefix = "/docs/" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && herrors.CodeOf(err) != herrors.CodeConfigInvalid {
				t.Errorf("Validate() = %v, want %s", err, herrors.CodeConfigInvalid)
			}
		})
	}
}

func TestDevAddress(t *testing.T) {
	cfg := New()
	cfg.Dev.Port = 8080
	cfg.Dev.Host = "0.0.0.0"

	if addr := cfg.DevAddress(); addr != "0.0.0.0:8080" {
		t.Errorf("DevAddress = %q, want %q", addr, "0.0.0.0:8080")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(tmpDir) {
		t.Error("Exists should be false for empty directory")
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(tmpDir) {
		t.Error("Exists should be true after creating config")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nestedDir := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindProjectRoot(nestedDir); err == nil {
		t.Error("FindProjectRoot should fail when no config exists")
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, start := range []string{nestedDir, filepath.Join(tmpDir, "a"), tmpDir} {
		root, err := FindProjectRoot(start)
		if err != nil {
			t.Fatalf("FindProjectRoot(%q) error: %v", start, err)
		}
		if root != tmpDir {
			t.Errorf("FindProjectRoot(%q) = %q, want %q", start, root, tmpDir)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Dev.Port != DefaultPort || cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev = %+v", cfg.Dev)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if cfg.Site.Title != DefaultTitle {
		t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, DefaultTitle)
	}
}
