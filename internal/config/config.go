package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment.
type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Log     LogConfig
	App     AppConfig
}

type ServerConfig struct {
	Port           string  `env:"PORT" envDefault:"8080"`
	GinMode        string  `env:"GIN_MODE" envDefault:"release"`
	MetricsEnabled bool    `env:"METRICS_ENABLED" envDefault:"true"`
	ToggleRate     float64 `env:"TOGGLE_RATE" envDefault:"5"`
	ToggleBurst    int     `env:"TOGGLE_BURST" envDefault:"20"`
	// TrustedProxies are the IPs or CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

type ContentConfig struct {
	File  string `env:"CONTENT_FILE"`
	Watch bool   `env:"CONTENT_WATCH" envDefault:"false"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type AppConfig struct {
	Name    string `env:"SERVICE_NAME" envDefault:"portfolio"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects out-of-range or inconsistent values.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a TCP port, got %q", c.Server.Port)
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.Server.GinMode)
	}
	if c.Server.ToggleRate <= 0 {
		return errors.New("TOGGLE_RATE must be positive")
	}
	if c.Server.ToggleBurst < 1 {
		return errors.New("TOGGLE_BURST must be at least 1")
	}
	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", p)
		}
	}
	if c.Content.Watch && c.Content.File == "" {
		return errors.New("CONTENT_WATCH requires CONTENT_FILE")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
