package bot

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

// okResult wraps result in a successful envelope.
func okResult(result any) map[string]any {
	return map[string]any{"ok": true, "result": result}
}

// newTestBot starts a server for handler and returns a Bot pointed at it.
func newTestBot(t *testing.T, handler http.HandlerFunc, opts ...Option) *Bot {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithAPIURL(srv.URL), WithLogger(discardLogger())}, opts...)
	return New("TOKEN", opts...)
}
