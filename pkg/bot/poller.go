package bot

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/flemzord/tgbind/pkg/types"
)

const (
	maxConsecutivePollingErrors = 5
	errorPauseDuration          = 30 * time.Second
)

// UpdateHandler receives updates from a Poller or a WebhookHandler.
type UpdateHandler func(ctx context.Context, update types.Update) error

// PollerConfig tunes a Poller.
type PollerConfig struct {
	// Timeout is the long polling timeout in seconds.
	Timeout        int
	AllowedUpdates []string
	Logger         *slog.Logger
}

// Poller receives updates with getUpdates long polling and hands them to a
// handler one at a time, in update_id order.
type Poller struct {
	bot     *Bot
	handler UpdateHandler
	config  PollerConfig
	logger  *slog.Logger

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	pause    time.Duration
}

// NewPoller creates a Poller. Call Start to begin polling.
func NewPoller(b *Bot, handler UpdateHandler, config PollerConfig) *Poller {
	logger := config.Logger
	if logger == nil {
		logger = b.logger
	}
	return &Poller{
		bot:     b,
		handler: handler,
		config:  config,
		logger:  logger,
		done:    make(chan struct{}),
		pause:   errorPauseDuration,
	}
}

// Start launches the polling loop in a goroutine.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	go p.loop(ctx)
}

// Stop cancels the in-flight poll and waits for the loop to exit.
// It is safe to call Stop multiple times, and before Start.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.stopOnce.Do(p.cancel)
	<-p.done
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	var offset int
	var consecutiveErrors int

	for ctx.Err() == nil {
		req := p.bot.GetUpdates().Timeout(p.config.Timeout)
		if offset > 0 {
			req.Offset(offset)
		}
		if len(p.config.AllowedUpdates) > 0 {
			req.AllowedUpdates(p.config.AllowedUpdates)
		}

		updates, err := req.Send(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			consecutiveErrors++
			p.logger.Error("polling getUpdates failed",
				"error", err,
				"consecutive_errors", consecutiveErrors,
			)

			wait := time.Duration(0)
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
				wait = time.Duration(apiErr.RetryAfter) * time.Second
			}
			if consecutiveErrors >= maxConsecutivePollingErrors {
				p.logger.Warn("polling paused after consecutive errors", "pause", p.pause)
				wait = p.pause
				consecutiveErrors = 0
			}
			if wait > 0 && !sleep(ctx, wait) {
				return
			}
			continue
		}

		consecutiveErrors = 0
		for _, update := range updates {
			offset = update.UpdateID + 1
			if err := p.handler(ctx, update); err != nil {
				p.logger.Error("update handler failed",
					"update_id", update.UpdateID,
					"error", err,
				)
			}
		}
	}
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
