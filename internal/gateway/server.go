package gateway

import (
	"net/http"

	"github.com/flemzord/tgbind/pkg/bot"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns the router with every configured route.
func (g *Gateway) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", g.handleHealth())

	if g.config.WebhookPath != "" && g.handler != nil {
		webhook := bot.NewWebhookHandler(g.countUpdates(g.handler), g.config.WebhookSecret, g.logger)
		r.Method(http.MethodPost, g.config.WebhookPath, webhook)
	}

	if g.config.MetricsPath != "" {
		r.Method(http.MethodGet, g.config.MetricsPath, promhttp.HandlerFor(g.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
