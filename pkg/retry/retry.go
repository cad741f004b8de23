// Package retry re-sends Bot API calls that failed for transient reasons.
//
// The bot package performs exactly one HTTP exchange per Send. Callers that
// want rate-limit handling wrap a request factory with Do:
//
//	msg, err := retry.Do(ctx, func(ctx context.Context) (types.Message, error) {
//		return b.SendMessage(chat, "hi").Send(ctx)
//	})
//
// A fresh request must be built on every attempt since a sent request
// cannot be sent again.
package retry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/flemzord/tgbind/pkg/bot"
)

const (
	defaultMaxTries       = 3
	defaultInitialBackoff = time.Second
	defaultMaxElapsed     = 2 * time.Minute
)

// Option configures Do.
type Option func(*options)

type options struct {
	maxTries   uint
	initial    time.Duration
	maxElapsed time.Duration
	notify     func(err error, wait time.Duration)
}

// WithMaxTries caps the number of attempts, the first one included.
func WithMaxTries(n uint) Option {
	return func(o *options) { o.maxTries = n }
}

// WithInitialBackoff sets the first exponential backoff interval.
func WithInitialBackoff(d time.Duration) Option {
	return func(o *options) { o.initial = d }
}

// WithMaxElapsedTime bounds the total time spent retrying.
func WithMaxElapsedTime(d time.Duration) Option {
	return func(o *options) { o.maxElapsed = d }
}

// WithNotify calls fn with the failed attempt's error before each wait.
func WithNotify(fn func(err error, wait time.Duration)) Option {
	return func(o *options) { o.notify = fn }
}

// Do runs op until it succeeds, fails permanently or runs out of attempts.
// A 429 waits for the retry_after the server asked for; 5xx responses and
// network failures back off exponentially; anything else is returned at
// once. Unless ctx ends first, the returned error is the last error op
// produced.
func Do[T any](ctx context.Context, op func(context.Context) (T, error), opts ...Option) (T, error) {
	o := options{
		maxTries:   defaultMaxTries,
		initial:    defaultInitialBackoff,
		maxElapsed: defaultMaxElapsed,
	}
	for _, opt := range opts {
		opt(&o)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = o.initial

	var last error
	attempt := func() (T, error) {
		res, err := op(ctx)
		last = err
		if err == nil {
			return res, nil
		}
		return res, classify(err)
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(eb),
		backoff.WithMaxTries(o.maxTries),
		backoff.WithMaxElapsedTime(o.maxElapsed),
	}
	if o.notify != nil {
		retryOpts = append(retryOpts, backoff.WithNotify(func(_ error, wait time.Duration) {
			o.notify(last, wait)
		}))
	}

	res, err := backoff.Retry(ctx, attempt, retryOpts...)
	if err != nil && ctx.Err() != nil {
		return res, ctx.Err()
	}
	if err != nil && last != nil {
		return res, last
	}
	return res, err
}

// classify maps a Bot API error onto backoff's retry decisions.
func classify(err error) error {
	var apiErr *bot.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.RetryAfter > 0:
			return backoff.RetryAfter(apiErr.RetryAfter)
		case apiErr.Code >= http.StatusInternalServerError:
			return err
		default:
			return backoff.Permanent(err)
		}
	}

	var netErr *bot.NetworkError
	if errors.As(err, &netErr) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		if netErr.Status != 0 && netErr.Status < http.StatusInternalServerError && netErr.Status != http.StatusTooManyRequests {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Permanent(err)
}
