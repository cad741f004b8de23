package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flemzord/tgbind/pkg/bot"
	"github.com/flemzord/tgbind/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestGateway(t *testing.T, handler bot.UpdateHandler) (*Gateway, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	g := New(Config{
		Bind:          "127.0.0.1:0",
		WebhookPath:   "/telegram",
		WebhookSecret: "s3cret",
		MetricsPath:   "/metrics",
	}, WithUpdateHandler(handler), WithRegistry(reg))
	return g, reg
}

func post(t *testing.T, h http.Handler, path, secret, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if secret != "" {
		req.Header.Set(bot.SecretTokenHeader, secret)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	g := New(Config{})
	if g.config.Bind != "127.0.0.1:8080" {
		t.Errorf("Bind = %q, want default", g.config.Bind)
	}
	if g.config.ReadTimeout != 10*time.Second || g.config.WriteTimeout != 30*time.Second {
		t.Errorf("timeouts = %v/%v", g.config.ReadTimeout, g.config.WriteTimeout)
	}
	if g.config.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", g.config.ShutdownTimeout)
	}
}

func TestWebhookRoute(t *testing.T) {
	t.Parallel()

	var got []int
	g, _ := newTestGateway(t, func(_ context.Context, u types.Update) error {
		got = append(got, u.UpdateID)
		return nil
	})
	h := g.Handler()

	if rec := post(t, h, "/telegram", "s3cret", `{"update_id":7}`); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec := post(t, h, "/telegram", "wrong", `{"update_id":8}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret status = %d, want 401", rec.Code)
	}
	if rec := post(t, h, "/elsewhere", "s3cret", `{"update_id":9}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("updates = %v, want [7]", got)
	}
}

func TestWebhookCountsOutcomes(t *testing.T) {
	t.Parallel()

	g, _ := newTestGateway(t, func(_ context.Context, u types.Update) error {
		if u.UpdateID%2 == 0 {
			return errors.New("handler failed")
		}
		return nil
	})
	h := g.Handler()
	for _, body := range []string{`{"update_id":1}`, `{"update_id":2}`, `{"update_id":3}`} {
		post(t, h, "/telegram", "s3cret", body)
	}

	if got := testutil.ToFloat64(g.metrics.updates.WithLabelValues("ok")); got != 2 {
		t.Errorf("ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(g.metrics.updates.WithLabelValues("error")); got != 1 {
		t.Errorf("error = %v, want 1", got)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" || health.Updates != 3 || health.Failed != 1 {
		t.Errorf("health = %+v", health)
	}
}

func TestMetricsRoute(t *testing.T) {
	t.Parallel()

	g, reg := newTestGateway(t, func(context.Context, types.Update) error { return nil })
	bot.NewMetrics(reg)
	h := g.Handler()
	post(t, h, "/telegram", "s3cret", `{"update_id":1}`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `telegram_webhook_updates_total{outcome="ok"} 1`) {
		t.Errorf("metrics output missing webhook counter:\n%s", body)
	}
}

func TestRoutesDisabled(t *testing.T) {
	t.Parallel()

	h := New(Config{}).Handler()
	for _, path := range []string{"/telegram", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}")))
		if rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s status = %d, want route absent", path, rec.Code)
		}
	}
}

func TestStartStop(t *testing.T) {
	t.Parallel()

	g, _ := newTestGateway(t, func(context.Context, types.Update) error { return nil })
	if err := g.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := g.Start(context.Background()); err == nil {
		t.Error("second Start() should fail")
	}

	resp, err := http.Get("http://" + g.Addr() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	if err := g.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if g.Addr() != "" {
		t.Errorf("Addr() after Stop = %q", g.Addr())
	}
	if err := g.Stop(context.Background()); err != nil {
		t.Errorf("second Stop() error: %v", err)
	}
}
