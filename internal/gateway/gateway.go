// Package gateway serves the HTTP side of a bot: the webhook that Telegram
// posts updates to, a health probe and Prometheus metrics.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/flemzord/tgbind/pkg/bot"
	"github.com/prometheus/client_golang/prometheus"
)

// Gateway is the HTTP server for webhook updates and metrics.
type Gateway struct {
	config   Config
	logger   *slog.Logger
	handler  bot.UpdateHandler
	gatherer prometheus.Gatherer
	metrics  *Metrics

	mu        sync.Mutex
	server    *http.Server
	listener  net.Listener
	startedAt time.Time
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithUpdateHandler receives updates posted to the webhook path.
func WithUpdateHandler(h bot.UpdateHandler) Option {
	return func(g *Gateway) { g.handler = h }
}

// WithRegistry serves metrics from reg and registers the webhook counters
// with it.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(g *Gateway) {
		g.gatherer = reg
		g.metrics = NewMetrics(reg)
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) { g.logger = logger }
}

// New creates a Gateway. Call Start to begin serving.
func New(cfg Config, opts ...Option) *Gateway {
	cfg.defaults()
	g := &Gateway{config: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.gatherer == nil {
		g.gatherer = prometheus.DefaultGatherer
	}
	return g
}

// Start binds the configured address and serves in a goroutine.
func (g *Gateway) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.server != nil {
		return errors.New("gateway: already started")
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", g.config.Bind)
	if err != nil {
		return fmt.Errorf("gateway: listen failed: %w", err)
	}

	g.startedAt = time.Now()
	g.listener = ln
	g.server = &http.Server{
		Handler:      g.Handler(),
		ReadTimeout:  g.config.ReadTimeout,
		WriteTimeout: g.config.WriteTimeout,
	}

	srv := g.server
	go func() {
		g.logger.Info("gateway listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			g.logger.Error("gateway serve error", "error", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or "" before Start.
func (g *Gateway) Addr() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.listener == nil {
		return ""
	}
	return g.listener.Addr().String()
}

// Stop shuts the server down gracefully within the configured timeout.
func (g *Gateway) Stop(ctx context.Context) error {
	g.mu.Lock()
	srv := g.server
	g.server, g.listener = nil, nil
	g.mu.Unlock()

	if srv == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, g.config.ShutdownTimeout)
	defer cancel()

	g.logger.Info("gateway shutting down")
	return srv.Shutdown(shutdownCtx)
}
