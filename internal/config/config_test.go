package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty config runs without a database",
			yaml: `{}`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.False(t, cfg.Database.Enabled())
				assert.False(t, cfg.Marketplace.Enabled)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: haggle
  user: haggle
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://www.ebay.co.uk", cfg.Marketplace.BaseURL)
				assert.Equal(t, 50, cfg.Marketplace.MaxResults)
				assert.Equal(t, 90, cfg.Marketplace.HistoryWindowDays)
				assert.InDelta(t, 1.0, cfg.Marketplace.RateLimit.PerSecond, 1e-9)
				assert.Equal(t, 3, cfg.Marketplace.RateLimit.Burst)
				assert.Equal(t, int64(2000), cfg.Marketplace.RateLimit.DailyLimit)
				assert.Equal(t, time.Hour, cfg.Cache.TTL)
				assert.Equal(t, 10*time.Second, cfg.Engine.FetchTimeout)
				assert.Equal(t, "Europe/London", cfg.Engine.Timezone)
				assert.Equal(t, 10, cfg.Engine.MinOutcomes)
				assert.Equal(t, time.Hour, cfg.Schedule.SuccessRateInterval)
				assert.Equal(t, 15*time.Minute, cfg.Schedule.CachePurgeInterval)
				assert.Equal(t, 180*24*time.Hour, cfg.Schedule.ComparableRetention)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "haggle", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: haggle
  user: haggle
  password: "${TEST_DB_PASSWORD}"
notifications:
  discord:
    enabled: true
    webhook_url: "${TEST_DISCORD_WEBHOOK}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD":     "secret123",
				"TEST_DISCORD_WEBHOOK": "https://discord.com/api/webhooks/1",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "https://discord.com/api/webhooks/1", cfg.Notifications.Discord.WebhookURL)
			},
		},
		{
			name: "database host without name",
			yaml: `
database:
  host: localhost
  user: haggle
`,
			wantErr: "database.name is required when database.host is set",
		},
		{
			name: "database host without user",
			yaml: `
database:
  host: localhost
  name: haggle
`,
			wantErr: "database.user is required when database.host is set",
		},
		{
			name: "relative marketplace url",
			yaml: `
marketplace:
  enabled: true
  base_url: "/ebay"
`,
			wantErr: `marketplace.base_url must be an absolute URL (got "/ebay")`,
		},
		{
			name: "discord enabled without webhook",
			yaml: `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required when discord is enabled",
		},
		{
			name: "unknown timezone",
			yaml: `
engine:
  timezone: Mars/Olympus
`,
			wantErr: `engine.timezone "Mars/Olympus"`,
		},
		{
			name: "sample ratio out of range",
			yaml: `
telemetry:
  sample_ratio: 2
`,
			wantErr: "telemetry.sample_ratio must be between 0 and 1",
		},
		{
			name: "unknown log format",
			yaml: `
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: haggle_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
marketplace:
  enabled: true
  base_url: http://localhost:8089
  max_results: 25
  history_window_days: 30
  rate_limit:
    per_second: 2
    burst: 5
    daily_limit: 500
cache:
  ttl: 30m
engine:
  fetch_timeout: 5s
  timing_analysis: true
  timezone: UTC
  success_rate_tuning: true
  min_outcomes: 25
schedule:
  success_rate_interval: 2h
  cache_purge_interval: 5m
telemetry:
  enabled: true
  endpoint: otel:4317
  insecure: true
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.True(t, cfg.Marketplace.Enabled)
				assert.Equal(t, "http://localhost:8089", cfg.Marketplace.BaseURL)
				assert.Equal(t, 25, cfg.Marketplace.MaxResults)
				assert.Equal(t, int64(500), cfg.Marketplace.RateLimit.DailyLimit)
				assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
				assert.Equal(t, 5*time.Second, cfg.Engine.FetchTimeout)
				assert.True(t, cfg.Engine.TimingAnalysis)
				assert.True(t, cfg.Engine.SuccessRateTuning)
				assert.Equal(t, 25, cfg.Engine.MinOutcomes)
				assert.Equal(t, 2*time.Hour, cfg.Schedule.SuccessRateInterval)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 1e-9)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, 10*time.Second, cfg.Engine.FetchTimeout)
	require.NoError(t, validate(cfg))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "haggle",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 dbname=haggle user=admin password=s3cret sslmode=require",
		cfg.DSN(),
	)
}
