package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingDatabaseURL is returned by Validate when DATABASE_URL is unset.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is empty")

const (
	DefaultPort              = "5050"
	DefaultAllowedOrigin     = "http://localhost:3000"
	DefaultSeedRatePerMinute = 0
	DefaultMaxOpenConns      = 20
	DefaultConnMaxLifetime   = 30 * time.Minute
)

// Config holds process configuration for the server and the seed CLI.
type Config struct {
	DatabaseURL string
	Port        string

	// Origins echoed back by the CORS middleware.
	AllowedOrigins []string

	// Requests per minute allowed on the seed route. Zero disables limiting.
	SeedRatePerMinute int

	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// LoadFromEnv loads configuration from environment variables.
//
// Environment variables:
//   - DATABASE_URL: Postgres DSN (required)
//   - PORT: listen port (default: 5050)
//   - ALLOWED_ORIGINS: comma-separated CORS allow-list (default: http://localhost:3000)
//   - SEED_RATE_PER_MINUTE: seed route rate limit (default: 0, disabled)
//   - DB_MAX_OPEN_CONNS: connection pool size (default: 20)
//   - DB_CONN_MAX_LIFETIME: Go duration, e.g. "30m" (default: 30m)
func LoadFromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:              strings.TrimSpace(os.Getenv("PORT")),
		AllowedOrigins:    splitList(os.Getenv("ALLOWED_ORIGINS")),
		SeedRatePerMinute: DefaultSeedRatePerMinute,
		MaxOpenConns:      DefaultMaxOpenConns,
		ConnMaxLifetime:   DefaultConnMaxLifetime,
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{DefaultAllowedOrigin}
	}

	if v := strings.TrimSpace(os.Getenv("SEED_RATE_PER_MINUTE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid SEED_RATE_PER_MINUTE %q", v)
		}
		cfg.SeedRatePerMinute = n
	}

	if v := strings.TrimSpace(os.Getenv("DB_MAX_OPEN_CONNS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS %q", v)
		}
		cfg.MaxOpenConns = n
	}

	if v := strings.TrimSpace(os.Getenv("DB_CONN_MAX_LIFETIME")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME %q: %w", v, err)
		}
		cfg.ConnMaxLifetime = d
	}

	return cfg, nil
}

// Validate checks that the values needed to reach the database are present.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
