// Package config loads server configuration from an optional TOML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig    `toml:"http"`
	DB      DBConfig      `toml:"db"`
	Logging LoggingConfig `toml:"logging"`
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string        `toml:"host"`
	Port            int           `toml:"port"`
	ReadTimeout     time.Duration `toml:"-"`
	WriteTimeout    time.Duration `toml:"-"`
	IdleTimeout     time.Duration `toml:"-"`
	ShutdownTimeout time.Duration `toml:"-"`
	MetricsEnabled  bool          `toml:"metrics_enabled"`
}

// DBConfig describes the SQLite store and optional seed file.
type DBConfig struct {
	Path     string `toml:"path"`
	SeedPath string `toml:"seed_path"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text|json
}

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultDBPath          = "pospay.db"
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
)

// Load builds the configuration: defaults, then the TOML file named by
// POSPAY_CONFIG (if set), then individual environment variables on top.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("POSPAY_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	cfg.HTTP.Host = valueOrDefault("HOST", cfg.HTTP.Host)
	cfg.DB.Path = valueOrDefault("DB_PATH", cfg.DB.Path)
	cfg.DB.SeedPath = valueOrDefault("SEED_PATH", cfg.DB.SeedPath)
	cfg.Logging.Level = valueOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LOG_FORMAT", cfg.Logging.Format)

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT value %q", v)
		}
		cfg.HTTP.Port = port
	}

	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid METRICS_ENABLED value %q", v)
		}
		cfg.HTTP.MetricsEnabled = enabled
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            defaultHost,
			Port:            defaultPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MetricsEnabled:  true,
		},
		DB: DBConfig{
			Path: defaultDBPath,
		},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
