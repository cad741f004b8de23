package gateway

import (
	"context"
	"sync/atomic"

	"github.com/flemzord/tgbind/pkg/bot"
	"github.com/flemzord/tgbind/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts webhook updates.
type Metrics struct {
	updates *prometheus.CounterVec

	handled atomic.Int64
	failed  atomic.Int64
}

// NewMetrics creates the webhook counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telegram",
			Subsystem: "webhook",
			Name:      "updates_total",
			Help:      "Webhook updates by handler outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.updates)
	return m
}

func (m *Metrics) record(err error) {
	m.handled.Add(1)
	outcome := "ok"
	if err != nil {
		m.failed.Add(1)
		outcome = "error"
	}
	m.updates.WithLabelValues(outcome).Inc()
}

func (m *Metrics) counts() (handled, failed int64) {
	return m.handled.Load(), m.failed.Load()
}

// countUpdates wraps h so every update is recorded.
func (g *Gateway) countUpdates(h bot.UpdateHandler) bot.UpdateHandler {
	if g.metrics == nil {
		return h
	}
	return func(ctx context.Context, u types.Update) error {
		err := h(ctx, u)
		g.metrics.record(err)
		return err
	}
}
