package bot

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultAPIURL is the public Bot API endpoint.
const DefaultAPIURL = "https://api.telegram.org"

const tracerName = "github.com/flemzord/tgbind/pkg/bot"

// Bot is the connection context shared by every request: the credential,
// the API endpoint and the transport. It is immutable after New and safe
// for concurrent use.
type Bot struct {
	token     string
	apiURL    string
	transport Transport
	logger    *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer
}

// Option configures a Bot.
type Option func(*Bot)

// WithAPIURL points the client at a different Bot API server, such as a
// self-hosted telegram-bot-api instance.
func WithAPIURL(apiURL string) Option {
	return func(b *Bot) { b.apiURL = strings.TrimRight(apiURL, "/") }
}

// WithTransport replaces the HTTP transport.
func WithTransport(t Transport) Option {
	return func(b *Bot) { b.transport = t }
}

// WithHTTPClient uses client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(b *Bot) { b.transport = NewHTTPTransport(client) }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) { b.logger = logger }
}

// WithMetrics records request counts and latencies into m.
func WithMetrics(m *Metrics) Option {
	return func(b *Bot) { b.metrics = m }
}

// WithTracer sets the tracer used for request spans. The global tracer
// provider is used by default.
func WithTracer(tracer trace.Tracer) Option {
	return func(b *Bot) { b.tracer = tracer }
}

// New creates a Bot for the given token.
func New(token string, opts ...Option) *Bot {
	b := &Bot{
		token:  token,
		apiURL: DefaultAPIURL,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.transport == nil {
		b.transport = NewHTTPTransport(nil)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if b.tracer == nil {
		b.tracer = otel.Tracer(tracerName)
	}
	return b
}

// methodURL returns the endpoint for a method. The result embeds the
// token and must never be logged or put in an error.
func (b *Bot) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", b.apiURL, b.token, method)
}

// FileURL returns the download URL for a path returned by GetFile.
func (b *Bot) FileURL(filePath string) string {
	return fmt.Sprintf("%s/file/bot%s/%s", b.apiURL, b.token, filePath)
}
