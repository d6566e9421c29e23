package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration. Driver is
// "sqlite" (default) or "postgres".
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// AppConfig holds application-level knobs.
type AppConfig struct {
	// RecentLimit is how many recently created resources the
	// dashboard shows.
	RecentLimit int `yaml:"recent_limit"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			RateLimitPerSec: 10,
			RateLimitBurst:  5,
			CacheTTLSeconds: 60,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "instance/resources.db",
		},
		App: AppConfig{
			RecentLimit: 5,
		},
	}
}

// Load reads the configuration from the given path, filling any
// unset values with defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	def := Default()
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = def.Server.RateLimitPerSec
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = def.Server.RateLimitBurst
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = def.Server.CacheTTLSeconds
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = def.Database.Driver
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = def.Database.DSN
	}
	if cfg.App.RecentLimit <= 0 {
		cfg.App.RecentLimit = def.App.RecentLimit
	}

	return &cfg, nil
}
