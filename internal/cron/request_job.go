package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/flemzord/tgbind/pkg/bot"
	"github.com/flemzord/tgbind/pkg/retry"
)

// RequestJob calls a Bot API method with fixed parameters, retrying
// rate-limited and transient failures.
type RequestJob struct {
	JobName string
	Expr    string
	Bot     *bot.Bot
	Method  string
	Params  map[string]any
	Logger  *slog.Logger

	// RetryOptions tune the retry around each call.
	RetryOptions []retry.Option
}

var _ Job = (*RequestJob)(nil)

func (j *RequestJob) Name() string     { return j.JobName }
func (j *RequestJob) Schedule() string { return j.Expr }

// Run builds a fresh request per attempt since a sent request is consumed.
func (j *RequestJob) Run(ctx context.Context) error {
	result, err := retry.Do(ctx, func(ctx context.Context) (json.RawMessage, error) {
		return j.request().Send(ctx)
	}, j.RetryOptions...)
	if err != nil {
		return fmt.Errorf("cron: %s: %w", j.Method, err)
	}
	if j.Logger != nil {
		j.Logger.Info("cron: request sent",
			"job", j.JobName,
			"method", j.Method,
			"result_bytes", len(result),
		)
	}
	return nil
}

// request sets parameters in sorted key order so every run sends the same
// body.
func (j *RequestJob) request() *bot.RawRequest[json.RawMessage] {
	req := bot.Raw[json.RawMessage](j.Bot, j.Method)
	keys := make([]string, 0, len(j.Params))
	for k := range j.Params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		req.Param(k, j.Params[k])
	}
	return req
}
