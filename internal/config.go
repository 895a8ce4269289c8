package internal

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the demo server's settings, read from the environment.
type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Pagination display settings
	PageSize    int
	PagerRadius int

	// Store backend: "memory", "sqlite" or "postgres"
	StoreDriver string
	SQLitePath  string // ":memory:" keeps the demo self-contained
	DatabaseURL string // required for the postgres driver

	// Metrics endpoint authentication.
	// If both are empty the /metrics endpoint is unprotected.
	MetricsUsername string
	MetricsPassword string
}

// NewConfig loads the configuration from the environment, with development
// defaults. A .env file is honored if present.
func NewConfig() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		PageSize:    getEnvInt("PAGE_SIZE", 20),
		PagerRadius: getEnvInt("PAGER_RADIUS", 2),

		StoreDriver: getEnv("STORE_DRIVER", "memory"),
		SQLitePath:  getEnv("SQLITE_PATH", ":memory:"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.PagerRadius < 0 {
		return fmt.Errorf("PAGER_RADIUS must not be negative, got %d", c.PagerRadius)
	}

	switch c.StoreDriver {
	case "memory", "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want memory, sqlite or postgres)", c.StoreDriver)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
