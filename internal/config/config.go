// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
	_ "time/tzdata" // engine.timezone must resolve on minimal images

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Marketplace   MarketplaceConfig   `yaml:"marketplace"`
	Cache         CacheConfig         `yaml:"cache"`
	Engine        EngineConfig        `yaml:"engine"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings. Persistence is
// disabled when Host is empty.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// Enabled reports whether a database is configured.
func (d *DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// MarketplaceConfig defines the comparable-listing scraper.
type MarketplaceConfig struct {
	Enabled           bool            `yaml:"enabled"`
	BaseURL           string          `yaml:"base_url"`
	UserAgent         string          `yaml:"user_agent"`
	Timeout           time.Duration   `yaml:"timeout"`
	MaxResults        int             `yaml:"max_results"`
	HistoryWindowDays int             `yaml:"history_window_days"`
	RateLimit         RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines scraper rate limiting.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// CacheConfig defines the comparable-price cache.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// EngineConfig defines strategy generation behaviour.
type EngineConfig struct {
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`
	TimingAnalysis    bool          `yaml:"timing_analysis"`
	Timezone          string        `yaml:"timezone"`
	SuccessRateTuning bool          `yaml:"success_rate_tuning"`
	MinOutcomes       int           `yaml:"min_outcomes"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	SuccessRateInterval time.Duration `yaml:"success_rate_interval"`
	CachePurgeInterval  time.Duration `yaml:"cache_purge_interval"`
	PruneInterval       time.Duration `yaml:"prune_interval"`
	ComparableRetention time.Duration `yaml:"comparable_retention"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TelemetryConfig defines OpenTelemetry export.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse builds a Config from raw YAML.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied and no
// database, for commands that run the engine locally.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyMarketplaceDefaults(&cfg.Marketplace)
	applyCacheDefaults(&cfg.Cache)
	applyEngineDefaults(&cfg.Engine)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyMarketplaceDefaults(m *MarketplaceConfig) {
	if m.BaseURL == "" {
		m.BaseURL = "https://www.ebay.co.uk"
	}
	if m.UserAgent == "" {
		m.UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	}
	if m.Timeout == 0 {
		m.Timeout = 8 * time.Second
	}
	if m.MaxResults == 0 {
		m.MaxResults = 50
	}
	if m.HistoryWindowDays == 0 {
		m.HistoryWindowDays = 90
	}
	if m.RateLimit.PerSecond == 0 {
		m.RateLimit.PerSecond = 1.0
	}
	if m.RateLimit.Burst == 0 {
		m.RateLimit.Burst = 3
	}
	if m.RateLimit.DailyLimit == 0 {
		m.RateLimit.DailyLimit = 2000
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.TTL == 0 {
		c.TTL = time.Hour
	}
}

func applyEngineDefaults(e *EngineConfig) {
	if e.FetchTimeout == 0 {
		e.FetchTimeout = 10 * time.Second
	}
	if e.Timezone == "" {
		e.Timezone = "Europe/London"
	}
	if e.MinOutcomes == 0 {
		e.MinOutcomes = 10
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.SuccessRateInterval == 0 {
		s.SuccessRateInterval = time.Hour
	}
	if s.CachePurgeInterval == 0 {
		s.CachePurgeInterval = 15 * time.Minute
	}
	if s.PruneInterval == 0 {
		s.PruneInterval = 24 * time.Hour
	}
	if s.ComparableRetention == 0 {
		s.ComparableRetention = 180 * 24 * time.Hour
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "haggle"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Enabled() {
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when database.host is set"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when database.host is set"))
		}
	}

	if cfg.Marketplace.Enabled {
		u, err := url.Parse(cfg.Marketplace.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("marketplace.base_url must be an absolute URL (got %q)", cfg.Marketplace.BaseURL))
		}
	}
	if cfg.Marketplace.RateLimit.PerSecond < 0 || cfg.Marketplace.RateLimit.Burst < 0 {
		errs = append(errs, fmt.Errorf("marketplace.rate_limit values cannot be negative"))
	}

	if _, err := time.LoadLocation(cfg.Engine.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("engine.timezone %q: %w", cfg.Engine.Timezone, err))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1 (got %v)", cfg.Telemetry.SampleRatio))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
