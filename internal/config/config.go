// Package config provides configuration management for the events service.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingDatabaseURL = errors.New("database.url is required (or set DATABASE_URL)")
	ErrInvalidPort        = errors.New("server.port must be between 1 and 65535")
	ErrMissingAPIKey      = errors.New("ingest.api_key is required when ingest.require_auth is enabled (or set BROWSEAI_API_KEY)")
)

// Config represents the complete service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	Port int    `yaml:"port"`
}

// ListenAddr returns the host:port string the HTTP server binds to.
func (s ServerConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", s.Addr, s.Port)
}

// DatabaseConfig contains Postgres connection settings.
type DatabaseConfig struct {
	URL            string        `yaml:"url"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// IngestConfig controls the webhook ingestion endpoint.
type IngestConfig struct {
	// APIKey is the shared secret expected in the X-BrowseAI-Key header.
	APIKey string `yaml:"api_key"`

	// RequireAuth enforces the shared-secret check. The original deployment
	// shipped with the check commented out; here it is an explicit toggle
	// defaulting to enabled.
	RequireAuth bool `yaml:"require_auth"`

	// CategoryOverride forces every ingested row's category to this value,
	// matching the deployed behavior where all scraped listings were
	// networking events. An empty string restores URL-derived categories.
	CategoryOverride string `yaml:"category_override"`

	// DefaultCity and DefaultCategory are used when the origin URL yields
	// nothing useful.
	DefaultCity     string `yaml:"default_city"`
	DefaultCategory string `yaml:"default_category"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file or overrides are given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr: "",
			Port: 8080,
		},
		Database: DatabaseConfig{
			ConnectTimeout: 30 * time.Second,
		},
		Ingest: IngestConfig{
			RequireAuth:      true,
			CategoryOverride: "networking",
			DefaultCity:      "Seattle",
			DefaultCategory:  "networking",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file, then applies
// environment overrides (DATABASE_URL, BROWSEAI_API_KEY, LISTEN_ADDR),
// then validates the result. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the loaded configuration.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("BROWSEAI_API_KEY"); v != "" {
		c.Ingest.APIKey = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks the configuration for missing or inconsistent values.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Ingest.RequireAuth && c.Ingest.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
