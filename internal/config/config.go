// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server and migration runner read.
type Config struct {
	DatabaseURL      string        `env:"DATABASE_URL"       envDefault:"postgres://localhost:5432/bronsonbrode?sslmode=disable"`
	Port             int           `env:"PORT"               envDefault:"3001"`
	FrontendURL      string        `env:"FRONTEND_URL"       envDefault:"http://localhost:5173"`
	LogLevel         string        `env:"LOG_LEVEL"          envDefault:"INFO"`
	ContactRateLimit int           `env:"CONTACT_RATE_LIMIT" envDefault:"10"`
	MigrationsDir    string        `env:"MIGRATIONS_DIR"     envDefault:"migrations"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"   envDefault:"5s"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the given .env files (missing ones are ignored; existing
// environment variables win) and parses the environment into a Config.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse()
}

// Parse reads the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ContactRateLimit < 0 {
		return Config{}, fmt.Errorf("parse env: CONTACT_RATE_LIMIT must be >= 0, got %d", cfg.ContactRateLimit)
	}
	return cfg, nil
}
