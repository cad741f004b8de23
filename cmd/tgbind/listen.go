package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os/signal"
	"sync"
	"syscall"

	"github.com/flemzord/tgbind/internal/config"
	"github.com/flemzord/tgbind/internal/gateway"
	"github.com/flemzord/tgbind/pkg/bot"
	"github.com/flemzord/tgbind/pkg/types"
	"github.com/spf13/cobra"
)

func listenCmd() *cobra.Command {
	var deleteOnExit bool

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Receive updates and print them as JSON lines",
		Long: `Receive updates with long polling or a webhook, as configured under
"updates", and print each one to stdout as a JSON line. The HTTP server also
serves /health and, when enabled, Prometheus metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = env.shutdown(context.WithoutCancel(cmd.Context())) }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := printUpdates(cmd.OutOrStdout())
			return runListener(ctx, env, handler, deleteOnExit)
		},
	}
	cmd.Flags().BoolVar(&deleteOnExit, "delete-webhook", false, "Remove the webhook when the listener stops (webhook mode)")
	return cmd
}

// runListener serves until ctx ends.
func runListener(ctx context.Context, env *appEnv, handler bot.UpdateHandler, deleteOnExit bool) error {
	cfg := env.cfg
	gwCfg := gateway.Config{Bind: cfg.Updates.Listen}
	if cfg.Metrics.Enabled {
		gwCfg.MetricsPath = cfg.Metrics.Path
	}

	var poller *bot.Poller
	switch cfg.Updates.Mode {
	case config.ModeWebhook:
		path, err := webhookPath(cfg.Updates.WebhookURL)
		if err != nil {
			return err
		}
		gwCfg.WebhookPath = path
		gwCfg.WebhookSecret = cfg.Updates.WebhookSecret

		req := env.bot.SetWebhook(cfg.Updates.WebhookURL)
		if cfg.Updates.WebhookSecret != "" {
			req.SecretToken(cfg.Updates.WebhookSecret)
		}
		if len(cfg.Updates.AllowedUpdates) > 0 {
			req.AllowedUpdates(cfg.Updates.AllowedUpdates)
		}
		if _, err := req.Send(ctx); err != nil {
			return fmt.Errorf("setWebhook: %w", err)
		}
		env.logger.Info("webhook registered", "path", path)

	default:
		// getUpdates is refused while a webhook is set.
		if _, err := env.bot.DeleteWebhook().Send(ctx); err != nil {
			return fmt.Errorf("deleteWebhook: %w", err)
		}
		poller = bot.NewPoller(env.bot, handler, bot.PollerConfig{
			Timeout:        cfg.Updates.PollingTimeout,
			AllowedUpdates: cfg.Updates.AllowedUpdates,
			Logger:         env.logger,
		})
	}

	gw := gateway.New(gwCfg,
		gateway.WithUpdateHandler(handler),
		gateway.WithRegistry(env.registry),
		gateway.WithLogger(env.logger),
	)
	if err := gw.Start(ctx); err != nil {
		return err
	}
	if poller != nil {
		poller.Start(ctx)
		env.logger.Info("polling for updates", "timeout", cfg.Updates.PollingTimeout)
	}

	<-ctx.Done()

	shutdownCtx := context.WithoutCancel(ctx)
	if poller != nil {
		poller.Stop()
	}
	if deleteOnExit && cfg.Updates.Mode == config.ModeWebhook {
		if _, err := env.bot.DeleteWebhook().Send(shutdownCtx); err != nil {
			env.logger.Warn("deleteWebhook failed", "error", err)
		}
	}
	return gw.Stop(shutdownCtx)
}

// printUpdates writes each update as one JSON line. Webhook deliveries can
// arrive concurrently, hence the lock.
func printUpdates(w io.Writer) bot.UpdateHandler {
	var mu sync.Mutex
	enc := json.NewEncoder(w)
	return func(_ context.Context, u types.Update) error {
		mu.Lock()
		defer mu.Unlock()
		return enc.Encode(u)
	}
}

// webhookPath is the local route for a public webhook URL; a reverse proxy
// is expected to forward the path unchanged.
func webhookPath(webhookURL string) (string, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return "", fmt.Errorf("updates.webhook_url: %w", err)
	}
	if u.Path == "" {
		return "/", nil
	}
	return u.Path, nil
}
