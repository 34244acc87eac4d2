package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// http
	AllowedOrigins              []string `toml:"allowed_origins"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	MCPEnabled                  bool     `toml:"mcp_enabled"`

	// identity gate
	SessionTTL       time.Duration `toml:"session_ttl"`
	DemoLoginEnabled bool          `toml:"demo_login_enabled"`
	AuthDelay        time.Duration `toml:"auth_delay"`
	PasswordCost     int           `toml:"password_cost"`

	// workouts
	DraftTTL           time.Duration `toml:"draft_ttl"`
	StatsWindowDays    int           `toml:"stats_window_days"`
	CatalogCacheSizeMB int           `toml:"catalog_cache_size_mb"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with unset values filled with defaults.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config [%s]: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 7 * 24 * time.Hour
	}
	if c.PasswordCost == 0 {
		c.PasswordCost = 14
	}
	if c.DraftTTL == 0 {
		c.DraftTTL = 24 * time.Hour
	}
	if c.StatsWindowDays == 0 {
		c.StatsWindowDays = 30
	}
	if c.CatalogCacheSizeMB == 0 {
		c.CatalogCacheSizeMB = 8
	}
}

func (c *Config) validate() error {
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		return errors.New("postgres host and db name are required")
	}
	if c.RedisHost == "" {
		return errors.New("redis host is required")
	}
	if c.StatsWindowDays < 0 {
		return errors.New("stats window days must be positive")
	}
	if c.AuthDelay < 0 {
		return errors.New("auth delay must not be negative")
	}
	return nil
}

// Secrets are never kept in the TOML file.
type Secrets struct {
	RedisPassword    string `env:"GYM_REDIS_PASS"`
	PostgresPassword string `env:"GYM_POSTGRES_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"gymtracker"`
	MCPSecret        string `env:"GYM_MCP_SECRET"`
}

func LoadSecrets() (Secrets, error) {
	secrets, err := env.ParseAs[Secrets]()
	if err != nil {
		return Secrets{}, fmt.Errorf("parse secrets from env: %w", err)
	}
	return secrets, nil
}
