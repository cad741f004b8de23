package gateway

import "time"

// Config holds the update server configuration.
type Config struct {
	Bind string

	// WebhookPath receives Telegram updates. Empty disables the route.
	WebhookPath   string
	WebhookSecret string

	// MetricsPath serves Prometheus metrics. Empty disables the route.
	MetricsPath string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// defaults fills zero values with sensible defaults.
func (c *Config) defaults() {
	if c.Bind == "" {
		c.Bind = "127.0.0.1:8080"
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 30 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
}
