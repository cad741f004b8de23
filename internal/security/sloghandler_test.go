package security

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, r *Redactor) *slog.Logger {
	inner := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewRedactingHandler(inner, r))
}

func TestRedactingHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		log  func(*slog.Logger)
	}{
		{name: "message", log: func(l *slog.Logger) { l.Info("calling bot" + testToken) }},
		{name: "string attr", log: func(l *slog.Logger) { l.Info("request", "url", "/bot"+testToken+"/getMe") }},
		{name: "error attr", log: func(l *slog.Logger) {
			l.Error("failed", "error", fmt.Errorf("post /bot%s/getMe: %w", testToken, errors.New("EOF")))
		}},
		{name: "group", log: func(l *slog.Logger) {
			l.Info("config", slog.Group("bot", slog.String("token", testToken)))
		}},
		{name: "with attrs", log: func(l *slog.Logger) { l.With("token", testToken).Info("ready") }},
		{name: "with group", log: func(l *slog.Logger) { l.WithGroup("bot").Info("ready", "token", testToken) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(newTestLogger(&buf, NewRedactor()))

			out := buf.String()
			if strings.Contains(out, testToken) {
				t.Errorf("token leaked: %s", out)
			}
			if !strings.Contains(out, RedactPlaceholder) {
				t.Errorf("placeholder missing: %s", out)
			}
		})
	}
}

func TestRedactingHandler_KeepsSafeValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestLogger(&buf, NewRedactor()).Info("telegram request", "method", "sendMessage", "status", 200)

	out := buf.String()
	for _, want := range []string{"method=sendMessage", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestRedactingHandler_Enabled(t *testing.T) {
	t.Parallel()

	inner := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := NewRedactingHandler(inner, NewRedactor())
	if h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("Info should be disabled")
	}
	if !h.Enabled(t.Context(), slog.LevelError) {
		t.Error("Error should be enabled")
	}
}
