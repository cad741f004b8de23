// Package config loads the tgbind configuration from YAML or TOML, expands
// environment variables and validates the result.
package config

import "time"

// Update intake modes.
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Config is the top-level configuration structure.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version" toml:"version"`

	Bot       BotConfig      `yaml:"bot" toml:"bot"`
	Log       LogConfig      `yaml:"log" toml:"log"`
	Updates   UpdatesConfig  `yaml:"updates" toml:"updates"`
	Metrics   MetricsConfig  `yaml:"metrics" toml:"metrics"`
	Tracing   TracingConfig  `yaml:"tracing" toml:"tracing"`
	Schedules []ScheduleSpec `yaml:"schedules,omitempty" toml:"schedules,omitempty"`
}

// BotConfig holds the Bot API credential and endpoint.
type BotConfig struct {
	Token string `yaml:"token" toml:"token"`

	// APIURL points at a self-hosted Bot API server. Defaults to the public one.
	APIURL  string        `yaml:"api_url,omitempty" toml:"api_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
}

// LogConfig selects the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level,omitempty" toml:"level,omitempty"`
}

// UpdatesConfig controls how the listen command receives updates.
type UpdatesConfig struct {
	Mode string `yaml:"mode,omitempty" toml:"mode,omitempty"`

	// PollingTimeout is the getUpdates long polling timeout in seconds.
	PollingTimeout int      `yaml:"polling_timeout,omitempty" toml:"polling_timeout,omitempty"`
	AllowedUpdates []string `yaml:"allowed_updates,omitempty" toml:"allowed_updates,omitempty"`

	WebhookURL    string `yaml:"webhook_url,omitempty" toml:"webhook_url,omitempty"`
	WebhookSecret string `yaml:"webhook_secret,omitempty" toml:"webhook_secret,omitempty"`

	// Listen is the address the HTTP server binds, e.g. ":8080".
	Listen string `yaml:"listen,omitempty" toml:"listen,omitempty"`
}

// MetricsConfig exposes Prometheus metrics on the listen server.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path,omitempty" toml:"path,omitempty"`
}

// TracingConfig exports request spans over OTLP/HTTP when Endpoint is set.
type TracingConfig struct {
	Endpoint string `yaml:"endpoint,omitempty" toml:"endpoint,omitempty"`
	Insecure bool   `yaml:"insecure,omitempty" toml:"insecure,omitempty"`
}

// ScheduleSpec is a Bot API call sent on a cron schedule.
type ScheduleSpec struct {
	Name string `yaml:"name" toml:"name"`

	// Cron is a standard five-field expression or a descriptor such as "@hourly".
	Cron   string         `yaml:"cron" toml:"cron"`
	Method string         `yaml:"method" toml:"method"`
	Params map[string]any `yaml:"params,omitempty" toml:"params,omitempty"`
}

// Defaults applied by Load.
const (
	DefaultTimeout        = 60 * time.Second
	DefaultLogLevel       = "info"
	DefaultPollingTimeout = 30
	DefaultListen         = ":8080"
	DefaultMetricsPath    = "/metrics"
)

// ApplyDefaults fills unset optional fields.
func (c *Config) ApplyDefaults() {
	if c.Bot.Timeout == 0 {
		c.Bot.Timeout = DefaultTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Updates.Mode == "" {
		c.Updates.Mode = ModePolling
	}
	if c.Updates.PollingTimeout == 0 {
		c.Updates.PollingTimeout = DefaultPollingTimeout
	}
	if c.Updates.Listen == "" {
		c.Updates.Listen = DefaultListen
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
