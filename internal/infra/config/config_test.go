package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "http://localhost:5000/api", cfg.Backend.BaseURL)
	require.Equal(t, "astro_session", cfg.Session.CookieName)
	require.False(t, cfg.Backend.RateLimit.Enabled)
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := `
http:
  address: ":9090"
backend:
  baseUrl: "http://backend.internal/api"
  timeout: 3s
session:
  ttl: 2h
site:
  publicUrl: "https://example.test"
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("BACKEND_TIMEOUT", "7s")
	t.Setenv("BACKEND_RATE_LIMIT_RPS", "2.5")
	t.Setenv("SESSION_REDIS_ENABLED", "true")
	t.Setenv("SESSION_REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "http://backend.internal/api", cfg.Backend.BaseURL)
	require.Equal(t, 7*time.Second, cfg.Backend.Timeout)
	require.True(t, cfg.Backend.RateLimit.Enabled)
	require.Equal(t, 2.5, cfg.Backend.RateLimit.RequestsPerSecond)
	require.Equal(t, 2*time.Hour, cfg.Session.TTL)
	require.True(t, cfg.Session.Redis.Enabled)
	require.Equal(t, "https://example.test", cfg.Site.PublicURL)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative backend url", func(c *Config) { c.Backend.BaseURL = "/api" }},
		{"zero backend timeout", func(c *Config) { c.Backend.Timeout = 0 }},
		{"redis without addr", func(c *Config) { c.Session.Redis.Enabled = true }},
		{"empty cookie name", func(c *Config) { c.Session.CookieName = " " }},
		{"backend limiter without rate", func(c *Config) {
			c.Backend.RateLimit.Enabled = true
			c.Backend.RateLimit.RequestsPerSecond = 0
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
