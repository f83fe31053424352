package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	MigrationsPath string
	PublicDir      string
	SessionSecret  string
	DefaultLocale  string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           getenv("ADDR", ":8080"),
		DatabaseURL:    getenv("DATABASE_URL", "postgres://localhost:5432/gather?sslmode=disable"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "migrations"),
		PublicDir:      getenv("PUBLIC_DIR", "public"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DefaultLocale:  getenv("DEFAULT_LOCALE", "pt"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.SessionSecret) == "" {
		return fmt.Errorf("config: SESSION_SECRET is required and cannot be empty")
	}
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("config: SESSION_SECRET must be at least 32 characters")
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		return fmt.Errorf("config: MIGRATIONS_PATH cannot be empty")
	}
	if strings.TrimSpace(c.PublicDir) == "" {
		return fmt.Errorf("config: PUBLIC_DIR cannot be empty")
	}

	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
