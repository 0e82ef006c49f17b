package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlnode.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultTitle is the site title used when none is configured.
	DefaultTitle = "Welcome!"

	// DefaultMetricsNamespace prefixes every exported metric.
	DefaultMetricsNamespace = "htmlnode"

	// DefaultRegion is the S3 region used for publishing.
	DefaultRegion = "us-east-1"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config represents the complete htmlnode.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Site contains values passed to every page template.
	Site SiteConfig `json:"site,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig contains site-wide template values.
type SiteConfig struct {
	// Title is the default page title.
	Title string `json:"title,omitempty"`

	// Lang is the lang attribute of the html element.
	Lang string `json:"lang,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// HotReload serves the /_reload websocket and injects its client.
	HotReload bool `json:"hotReload"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled serves /metrics and records render metrics.
	Enabled bool `json:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the target bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Site: SiteConfig{
			Title: DefaultTitle,
			Lang:  "en",
		},
		Dev: DevConfig{
			Port:      DefaultPort,
			Host:      DefaultHost,
			HotReload: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultMetricsNamespace,
		},
		Publish: PublishConfig{
			Region: DefaultRegion,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmlnode.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No htmlnode.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'htmlnode init' or create htmlnode.json manually")
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("Failed to parse htmlnode.json: " + err.Error()).
			WithSuggestion("Check that htmlnode.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigWrite).Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigWrite).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = DefaultTitle
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Port must be between 0 and 65535")
	}
	if !contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errors.New(errors.CodeConfigInvalid).
			WithDetailf("Unknown log level %q", c.Log.Level).
			WithSuggestion("Use one of: " + strings.Join(logLevels, ", "))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New(errors.CodeConfigInvalid).
			WithDetailf("Unknown log format %q", c.Log.Format).
			WithSuggestion(`Use "text" or "json"`)
	}
	if strings.HasPrefix(c.Publish.Prefix, "/") {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Publish prefix must not start with a slash").
			WithExample(`"prefix": "docs/"`)
	}
	return nil
}

// DevAddress returns the address string for the server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// SlogLevel returns the configured log level. Unknown levels map to info.
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.Log.Level)
}

// ParseLevel maps a level name to its slog.Level. Unknown names map to
// info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing htmlnode.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No htmlnode.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'htmlnode init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its nearest parent holding htmlnode.json.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
