package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultSessionSecret is only acceptable in development; Validate rejects it
// anywhere else.
const defaultSessionSecret = "change-me-secret"

type Config struct {
	Addr          string        `yaml:"addr"`
	Env           string        `yaml:"env"`
	DatabaseURL   string        `yaml:"database_url"`
	DatabaseName  string        `yaml:"database_name"`
	AdminPassword string        `yaml:"admin_password"`
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	APITimeout    time.Duration `yaml:"timeout"`
}

// LoadConfig builds a Config from environment variables, then overlays the
// optional YAML file at path. ADMIN_PASSWORD deliberately has no fallback.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          ":" + getEnv("PORT", "8000"),
		Env:           getEnv("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DatabaseName:  os.Getenv("DATABASE_NAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    24 * time.Hour,
		APITimeout:    15 * time.Second,
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that must never reach a running server:
// a missing admin password, or the stock session secret outside development.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set; there is no default")
	}
	if c.SessionSecret == defaultSessionSecret && c.Env != "development" {
		return fmt.Errorf("SESSION_SECRET must be changed outside development")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
