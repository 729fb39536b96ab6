// Package config loads the YAML startup configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort     = 2333
	defaultEnv      = "development"
	defaultDSN      = "root:password@tcp(127.0.0.1:3306)/gratitude_grove?charset=utf8mb4&parseTime=True&loc=Local"
	defaultRedisURL = "redis://localhost:6379/0"
	defaultTimezone = "Asia/Seoul"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int      `yaml:"port"`
	DSN            string   `yaml:"dsn"` // MySQL DSN
	RedisURL       string   `yaml:"redis_url"`
	Env            string   `yaml:"env"` // "development" | "production"
	AllowedOrigins []string `yaml:"allowed_origins"`
	JWTSecret      string   `yaml:"jwt_secret"`
	Timezone       string   `yaml:"timezone"`

	location *time.Location
}

// Load reads and normalizes the config file. A missing file yields defaults,
// so a bare `server` invocation works against a local stack.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.DSN == "" {
		cfg.DSN = defaultDSN
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Location is the service calendar timezone. "Today" for diary entries is
// resolved here, not on the caller's clock.
func (c *AppConfig) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}
