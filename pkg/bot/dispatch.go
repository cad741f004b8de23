package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flemzord/tgbind/pkg/form"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// dispatch sends params to method with one HTTP exchange and decodes the
// envelope into T. It never retries.
func dispatch[T any](ctx context.Context, b *Bot, method string, params *form.Params) (T, error) {
	var zero T

	ctx, span := b.tracer.Start(ctx, "telegram."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("telegram.method", method),
			attribute.String("telegram.transport", params.Mode().String()),
			attribute.Int("telegram.params", params.Len()),
		),
	)
	defer span.End()

	start := time.Now()
	ex, err := newExchange(b.methodURL(method), params)
	if err != nil {
		err = fmt.Errorf("telegram: encode %s request: %w", method, err)
		b.finish(span, method, params.Mode(), 0, start, err)
		return zero, err
	}

	status, body, err := b.transport.Execute(ctx, ex)
	if err != nil {
		err = &NetworkError{Method: method, Status: status, Err: err}
		b.finish(span, method, params.Mode(), status, start, err)
		return zero, err
	}

	result, err := decodeEnvelope[T](method, status, body)
	b.finish(span, method, params.Mode(), status, start, err)
	return result, err
}

// newExchange encodes params with the body encoding their mode requires.
func newExchange(url string, params *form.Params) (*Exchange, error) {
	ex := &Exchange{URL: url, Header: make(http.Header)}
	switch params.Mode() {
	case form.ModeMultipart:
		var buf bytes.Buffer
		contentType, err := params.WriteMultipart(&buf)
		if err != nil {
			return nil, err
		}
		ex.Header.Set("Content-Type", contentType)
		ex.Body = buf.Bytes()
	default:
		body, err := params.EncodeJSON()
		if err != nil {
			return nil, err
		}
		ex.Header.Set("Content-Type", "application/json")
		ex.Body = body
	}
	return ex, nil
}

func (b *Bot) finish(span trace.Span, method string, mode form.Mode, status int, start time.Time, err error) {
	elapsed := time.Since(start)
	result := outcome(err)

	b.metrics.observe(method, result, elapsed)

	span.SetAttributes(
		attribute.Int("http.response.status_code", status),
		attribute.String("telegram.outcome", result),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
	}

	b.logger.Debug("telegram request",
		"method", method,
		"transport", mode.String(),
		"status", status,
		"outcome", result,
		"duration", elapsed,
	)
}

// Outcome labels for metrics and spans.
const (
	outcomeOK          = "ok"
	outcomeAPIError    = "api_error"
	outcomeNetwork     = "network_error"
	outcomeDecodeError = "decode_error"
	outcomeEncodeError = "encode_error"
)

func outcome(err error) string {
	var (
		apiErr    *APIError
		netErr    *NetworkError
		decodeErr *DecodeError
	)
	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &apiErr):
		return outcomeAPIError
	case errors.As(err, &netErr):
		return outcomeNetwork
	case errors.As(err, &decodeErr):
		return outcomeDecodeError
	default:
		return outcomeEncodeError
	}
}
