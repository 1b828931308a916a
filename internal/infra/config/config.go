package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Backend BackendConfig `yaml:"backend"`
	Session SessionConfig `yaml:"session"`
	Site    SiteConfig    `yaml:"site"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// BackendConfig points at the prediction API.
type BackendConfig struct {
	BaseURL   string                 `yaml:"baseUrl"`
	Timeout   time.Duration          `yaml:"timeout"`
	RateLimit BackendRateLimitConfig `yaml:"rateLimit"`
}

// BackendRateLimitConfig throttles outbound calls across all sessions.
type BackendRateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// SessionConfig controls browser sessions.
type SessionConfig struct {
	CookieName      string        `yaml:"cookieName"`
	TTL             time.Duration `yaml:"ttl"`
	Secure          bool          `yaml:"secure"`
	InFlightTimeout time.Duration `yaml:"inFlightTimeout"`
	Redis           RedisConfig   `yaml:"redis"`
}

// RedisConfig contains connection information for session storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// SiteConfig is used in reports and share messages.
type SiteConfig struct {
	Name      string `yaml:"name"`
	PublicURL string `yaml:"publicUrl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("BACKEND_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Backend.Timeout = parsed
		}
	}
	if v := os.Getenv("BACKEND_RATE_LIMIT_RPS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Backend.RateLimit.RequestsPerSecond = parsed
			cfg.Backend.RateLimit.Enabled = parsed > 0
		}
	}
	if v := os.Getenv("BACKEND_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Backend.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Session.TTL = parsed
		}
	}
	if v := os.Getenv("SESSION_COOKIE_SECURE"); v != "" {
		cfg.Session.Secure = parseBool(v)
	}
	if v := os.Getenv("SESSION_REDIS_ENABLED"); v != "" {
		cfg.Session.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("SESSION_REDIS_ADDR"); v != "" {
		cfg.Session.Redis.Addr = v
	}
	if v := os.Getenv("SITE_PUBLIC_URL"); v != "" {
		cfg.Site.PublicURL = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			AllowedOrigins: []string{"http://localhost:8080"},
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 15 * time.Second,
			RateLimit: BackendRateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 10,
				Burst:             5,
			},
		},
		Session: SessionConfig{
			CookieName:      "astro_session",
			TTL:             24 * time.Hour,
			InFlightTimeout: 30 * time.Second,
			Redis: RedisConfig{
				Enabled: false,
				Prefix:  "astro",
			},
		},
		Site: SiteConfig{
			Name:      "AstroPredict",
			PublicURL: "https://astropredict.com",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return errors.New("backend.baseUrl cannot be empty")
	}
	if u, err := url.Parse(c.Backend.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("backend.baseUrl must be an absolute URL")
	}
	if c.Backend.Timeout <= 0 {
		return errors.New("backend.timeout must be positive")
	}
	if c.Backend.RateLimit.Enabled {
		if c.Backend.RateLimit.RequestsPerSecond <= 0 {
			return errors.New("backend.rateLimit.requestsPerSecond must be positive")
		}
		if c.Backend.RateLimit.Burst <= 0 {
			return errors.New("backend.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		return errors.New("session.cookieName cannot be empty")
	}
	if c.Session.TTL < 0 {
		return errors.New("session.ttl cannot be negative")
	}
	if c.Session.InFlightTimeout <= 0 {
		return errors.New("session.inFlightTimeout must be positive")
	}
	if c.Session.Redis.Enabled && strings.TrimSpace(c.Session.Redis.Addr) == "" {
		return errors.New("session.redis.addr cannot be empty when redis sessions are enabled")
	}
	if strings.TrimSpace(c.Site.PublicURL) == "" {
		return errors.New("site.publicUrl cannot be empty")
	}
	return nil
}
