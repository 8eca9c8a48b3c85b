// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config maps environment variables onto a typed [Config] using
caarlos0/env.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The loaded value is read-only and handed to constructors; nothing in the
module reads the environment directly.
*/
package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the newsdesk API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Token keys. The API only verifies; the private key is for cmd/token.
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`

	// Content locales
	Locales       []string `env:"NEWS_LOCALES"        envDefault:"en,de" envSeparator:","`
	DefaultLocale string   `env:"NEWS_DEFAULT_LOCALE" envDefault:"en"`

	// RoutePrefix is prepended to route paths generated from titles.
	RoutePrefix string `env:"NEWS_ROUTE_PREFIX" envDefault:"/news"`

	// WebsiteCacheTTL bounds how long a resolved website news stays in Redis.
	WebsiteCacheTTL time.Duration `env:"WEBSITE_CACHE_TTL" envDefault:"5m"`

	// Trash retention
	TrashRetention     time.Duration `env:"TRASH_RETENTION"      envDefault:"720h"`
	TrashPurgeSchedule string        `env:"TRASH_PURGE_SCHEDULE" envDefault:"@daily"`

	// Cross-Origin Resource Sharing
	CORSOriginSuffix string `env:"CORS_ORIGIN_SUFFIX" envDefault:"example.com"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] and checks the values
// that depend on each other.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces cross-field invariants env tags cannot express.
func (c *Config) validate() error {
	if len(c.Locales) == 0 {
		return fmt.Errorf("config: NEWS_LOCALES must list at least one locale")
	}
	if !slices.Contains(c.Locales, c.DefaultLocale) {
		return fmt.Errorf("config: NEWS_DEFAULT_LOCALE %q is not in NEWS_LOCALES %v", c.DefaultLocale, c.Locales)
	}
	if c.TrashRetention <= 0 {
		return fmt.Errorf("config: TRASH_RETENTION must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
