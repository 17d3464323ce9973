package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`

	// Endpoint is the base URL of the QKart REST API, including the /api/v1 prefix.
	Endpoint string `env:"QKART_ENDPOINT" envDefault:"http://localhost:8082/api/v1" validate:"required,url"`

	// StatePath is the SQLite file holding persisted session state.
	// Empty means <user home>/.qkart/state.db.
	StatePath string `env:"QKART_STATE_PATH"`

	SearchDebounceMS  int `env:"SEARCH_DEBOUNCE_MS" envDefault:"500" validate:"min=1,max=10000"`
	RequestTimeoutSec int `env:"REQUEST_TIMEOUT_SEC" envDefault:"10" validate:"min=1,max=120"`

	// MetricsPort exposes /metrics, /healthz and /readyz when non-empty.
	MetricsPort string `env:"METRICS_PORT"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// Stub backend settings (cmd/stubserver only).
	Port      string `env:"PORT" envDefault:"8082" validate:"required"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"qkart-stub-dev-secret-not-for-production" validate:"min=32"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.SearchDebounceMS) * time.Millisecond
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// ResolveStatePath returns StatePath, defaulting to ~/.qkart/state.db.
func (c *Config) ResolveStatePath() (string, error) {
	if c.StatePath != "" {
		return c.StatePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".qkart", "state.db"), nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
