package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"laptopshop/cache"
	"laptopshop/core"
	"laptopshop/db"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	// Infrastructure
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DB          db.Config
	Redis       cache.Config

	// Catalog. SNAPSHOT_TTL=0 disables snapshot caching and, with it, memoised filter results.
	SnapshotTTL     time.Duration `envconfig:"SNAPSHOT_TTL" default:"30s"`
	PageSize        int           `envconfig:"PAGE_SIZE" default:"12"`
	PriceUpperBound int64         `envconfig:"PRICE_UPPER_BOUND" default:"100000000"`
	MemoSize        int           `envconfig:"MEMO_SIZE" default:"256"`
	Currency        string        `envconfig:"CURRENCY" default:"VND"`

	// EnvFile is the .env file that was loaded, empty when none was
	EnvFile string `ignored:"true"`
}

// Load reads .env (outside production) and returns a populated Config.
// Values from .env override the process environment, so local runs behave
// the same regardless of what the shell exported.
func Load() (*Config, error) {
	envFile := ""
	if core.ParseEnvironment(os.Getenv("ENV")) != core.Production {
		if err := godotenv.Overload(".env"); err == nil {
			envFile = ".env"
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	cfg.EnvFile = envFile

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot check by itself
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.PriceUpperBound <= 0 {
		return fmt.Errorf("PRICE_UPPER_BOUND must be positive, got %d", c.PriceUpperBound)
	}
	if c.SnapshotTTL < 0 {
		return fmt.Errorf("SNAPSHOT_TTL must not be negative, got %s", c.SnapshotTTL)
	}
	return nil
}

// Environment returns the parsed deployment environment
func (c *Config) Environment() core.Environment {
	return core.ParseEnvironment(c.Env)
}

// Addr returns the listen address. Listens on all interfaces (required for Docker).
func (c *Config) Addr() string {
	port := c.Port
	// Remove leading colon if present (some platforms export PORT=":8080")
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}
	return "0.0.0.0:" + port
}

// DSN returns the PostgreSQL connection string: DATABASE_URL when set, otherwise
// one built from the DB_* variables.
func (c *Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	return c.DB.DSN()
}
