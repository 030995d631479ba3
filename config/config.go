// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application shell.
type Config struct {
	StatePath     string
	RatesBaseURL  string
	RatesTimeout  time.Duration
	RatesCacheTTL time.Duration
	LogLevel      string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		StatePath:    os.Getenv("KAPSA_STATE_PATH"),
		RatesBaseURL: os.Getenv("KAPSA_RATES_URL"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}

	cfg.RatesTimeout = 5 * time.Second
	if timeoutStr := os.Getenv("KAPSA_RATES_TIMEOUT_SECONDS"); timeoutStr != "" {
		if secs, err := strconv.Atoi(timeoutStr); err == nil && secs > 0 {
			cfg.RatesTimeout = time.Duration(secs) * time.Second
		}
	}

	cfg.RatesCacheTTL = 12 * time.Hour
	if ttlStr := os.Getenv("KAPSA_RATES_CACHE_TTL"); ttlStr != "" {
		if ttl, err := time.ParseDuration(ttlStr); err == nil && ttl > 0 {
			cfg.RatesCacheTTL = ttl
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.StatePath == "" {
		errs = append(errs, "KAPSA_STATE_PATH is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
