package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/flemzord/tgbind/internal/config"
	"github.com/flemzord/tgbind/internal/security"
	"github.com/flemzord/tgbind/pkg/bot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// appEnv is what every command that talks to the Bot API needs.
type appEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	bot      *bot.Bot
	registry *prometheus.Registry
	shutdown func(context.Context) error
}

// setup loads the configuration named by --config and builds the logger,
// tracer and bot from it.
func setup(cmd *cobra.Command) (*appEnv, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		resolved, err := resolveConfigPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)

	shutdown, err := setupTracing(cmd.Context(), cfg.Tracing)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	opts := []bot.Option{
		bot.WithLogger(logger),
		bot.WithMetrics(bot.NewMetrics(reg)),
	}
	if cfg.Bot.APIURL != "" {
		opts = append(opts, bot.WithAPIURL(cfg.Bot.APIURL))
	}
	opts = append(opts, bot.WithHTTPClient(&http.Client{Timeout: clientTimeout(cfg)}))

	return &appEnv{
		cfg:      cfg,
		logger:   logger,
		bot:      bot.New(cfg.Bot.Token, opts...),
		registry: reg,
		shutdown: shutdown,
	}, nil
}

// clientTimeout is the configured request timeout, stretched so that a
// long poll always ends on the server side first.
func clientTimeout(cfg *config.Config) time.Duration {
	poll := time.Duration(cfg.Updates.PollingTimeout)*time.Second + 10*time.Second
	return max(cfg.Bot.Timeout, poll)
}

// newLogger builds a text logger that never prints the bot token or the
// webhook secret.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}

	redactor := security.NewRedactor()
	redactor.AddLiteral(cfg.Bot.Token)
	redactor.AddLiteral(cfg.Updates.WebhookSecret)

	inner := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(security.NewRedactingHandler(inner, redactor))
}

// setupTracing installs an OTLP/HTTP exporter as the global tracer
// provider when an endpoint is configured.
func setupTracing(ctx context.Context, cfg config.TracingConfig) (func(context.Context) error, error) {
	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("tracing: creating exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "tgbind"),
			attribute.String("service.version", version),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// resolveConfigPath searches for a config file in standard locations.
// Search order: $XDG_CONFIG_HOME/tgbind/tgbind.{yaml,toml} then ./tgbind.{yaml,toml}
func resolveConfigPath() (string, error) {
	var dirs []string
	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		dirs = append(dirs, filepath.Join(xdg, "tgbind"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "tgbind"))
	}
	dirs = append(dirs, ".")

	var candidates []string
	for _, dir := range dirs {
		for _, name := range []string{"tgbind.yaml", "tgbind.yml", "tgbind.toml"} {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no configuration file found (searched: %v)", candidates)
}
