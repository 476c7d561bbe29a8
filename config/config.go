// ABOUTME: Environment-driven configuration with .env and XDG fallbacks
// ABOUTME: Builds the application logger from the configured level
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment.
type Config struct {
	DatabaseURL string `env:"STUDIODESK_DATABASE_URL"`
	LogLevel    string `env:"STUDIODESK_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, after loading .env
// from the working directory and, failing that, from the XDG config
// directory. Real environment variables always win over file values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		xdgEnv := filepath.Join(xdg.ConfigHome, "studiodesk", ".env")
		if _, statErr := os.Stat(xdgEnv); statErr == nil {
			if err := godotenv.Load(xdgEnv); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", xdgEnv, err)
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// RequireDatabaseURL returns the database URL or an error telling the
// user how to set it.
func (c *Config) RequireDatabaseURL() (string, error) {
	if c.DatabaseURL == "" {
		return "", fmt.Errorf("STUDIODESK_DATABASE_URL is not set (export it or add it to .env)")
	}
	return c.DatabaseURL, nil
}

// Logger builds a text slog logger at the configured level.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
