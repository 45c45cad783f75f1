package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ListenAddr    string        `env:"VOLLEY_LISTEN_ADDR" envDefault:":8000"`
	DatabaseDSN   string        `env:"VOLLEY_DB_DSN"`
	JWTSecret     string        `env:"VOLLEY_JWT_SECRET"`
	TokenTTL      time.Duration `env:"VOLLEY_TOKEN_TTL" envDefault:"24h"`
	RedisAddr     string        `env:"VOLLEY_REDIS_ADDR"`
	RedisPassword string        `env:"VOLLEY_REDIS_PASSWORD"`
	Verbose       bool          `env:"VOLLEY_VERBOSE"`
}

// Load parses the environment. RedisAddr is optional: when empty the server
// runs with the in-process hub only.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.DatabaseDSN == "" {
		return cfg, fmt.Errorf("VOLLEY_DB_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("VOLLEY_JWT_SECRET is required")
	}
	return cfg, nil
}
