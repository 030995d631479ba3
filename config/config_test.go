package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KAPSA_STATE_PATH", "/tmp/kapsa.db")
	t.Setenv("KAPSA_RATES_URL", "")
	t.Setenv("KAPSA_RATES_TIMEOUT_SECONDS", "")
	t.Setenv("KAPSA_RATES_CACHE_TTL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/kapsa.db", cfg.StatePath)
	require.Empty(t, cfg.RatesBaseURL)
	require.Equal(t, 5*time.Second, cfg.RatesTimeout)
	require.Equal(t, 12*time.Hour, cfg.RatesCacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KAPSA_STATE_PATH", "/data/kapsa.db")
	t.Setenv("KAPSA_RATES_URL", "https://rates.example.com")
	t.Setenv("KAPSA_RATES_TIMEOUT_SECONDS", "30")
	t.Setenv("KAPSA_RATES_CACHE_TTL", "1h30m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://rates.example.com", cfg.RatesBaseURL)
	require.Equal(t, 30*time.Second, cfg.RatesTimeout)
	require.Equal(t, 90*time.Minute, cfg.RatesCacheTTL)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalidDurationsFallBack(t *testing.T) {
	t.Setenv("KAPSA_STATE_PATH", "/tmp/kapsa.db")
	t.Setenv("KAPSA_RATES_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("KAPSA_RATES_CACHE_TTL", "-5m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, cfg.RatesTimeout)
	require.Equal(t, 12*time.Hour, cfg.RatesCacheTTL)
}

func TestLoadMissingStatePath(t *testing.T) {
	t.Setenv("KAPSA_STATE_PATH", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "KAPSA_STATE_PATH")
}
