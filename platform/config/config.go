// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// PhoneConfig provides settings for the phone-number engine.
type PhoneConfig interface {
	// GetDefaultRegion returns the ISO 3166-1 alpha-2 region assumed for
	// numbers entered without an international prefix.
	GetDefaultRegion() string
	// GetMaxInputLength caps the accepted input length; longer bodies are rejected.
	GetMaxInputLength() int
}

// RateLimitConfig provides settings for per-IP request throttling.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// Config holds the full application configuration loaded from the environment.
type Config struct {
	Env            string
	HTTPAddr       string
	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool
	DefaultRegion  string
	MaxInputLength int
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from the environment, with .env file support.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		DefaultRegion:  strings.ToUpper(getEnv("PHONE_DEFAULT_REGION", "UA")),
		MaxInputLength: mustInt(getEnv("PHONE_MAX_INPUT_LENGTH", "64")),
		RateLimitRPS:   mustFloat(getEnv("RATE_LIMIT_RPS", "20")),
		RateLimitBurst: mustInt(getEnv("RATE_LIMIT_BURST", "40")),
	}

	if len(cfg.DefaultRegion) != 2 {
		return nil, fmt.Errorf("PHONE_DEFAULT_REGION must be a 2-letter ISO region code, got %q", cfg.DefaultRegion)
	}
	if cfg.MaxInputLength < 1 {
		return nil, fmt.Errorf("PHONE_MAX_INPUT_LENGTH must be positive, got %d", cfg.MaxInputLength)
	}

	return cfg, nil
}

// GetHTTPAddr returns the HTTP listen address.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetCORSAllowAll reports whether any origin is allowed.
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetCORSAllowCreds reports whether credentialed CORS requests are allowed.
func (c *Config) GetCORSAllowCreds() bool { return c.CORSAllowCreds }

// GetDefaultRegion returns the fallback region for national-format numbers.
func (c *Config) GetDefaultRegion() string { return c.DefaultRegion }

// GetMaxInputLength returns the maximum accepted input length.
func (c *Config) GetMaxInputLength() int { return c.MaxInputLength }

// GetRateLimitRPS returns the sustained per-IP request rate.
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }

// GetRateLimitBurst returns the per-IP burst allowance.
func (c *Config) GetRateLimitBurst() int { return c.RateLimitBurst }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func mustInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func mustFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
