package retry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/flemzord/tgbind/pkg/bot"
)

func TestDo(t *testing.T) {
	t.Parallel()

	serverErr := &bot.APIError{Code: 502, Description: "Bad Gateway"}
	badRequest := &bot.APIError{Code: 400, Description: "Bad Request: chat not found"}
	netErr := &bot.NetworkError{Method: "getMe", Err: errors.New("connection refused")}
	notFound := &bot.NetworkError{Method: "getMe", Status: http.StatusNotFound, Err: errors.New("no envelope")}

	tests := []struct {
		name      string
		errs      []error
		maxTries  uint
		wantCalls int
		wantErr   error
	}{
		{name: "success first try", errs: []error{nil}, wantCalls: 1},
		{name: "server error then success", errs: []error{serverErr, nil}, wantCalls: 2},
		{name: "network error then success", errs: []error{netErr, nil}, wantCalls: 2},
		{name: "client error is permanent", errs: []error{badRequest, nil}, wantCalls: 1, wantErr: badRequest},
		{name: "non-2xx without envelope is permanent", errs: []error{notFound, nil}, wantCalls: 1, wantErr: notFound},
		{name: "gives up after max tries", errs: []error{serverErr, serverErr, serverErr, nil}, maxTries: 3, wantCalls: 3, wantErr: serverErr},
		{name: "decode error is permanent", errs: []error{&bot.DecodeError{Method: "getMe", Err: errors.New("bad")}}, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			opts := []Option{WithInitialBackoff(time.Millisecond)}
			if tt.maxTries > 0 {
				opts = append(opts, WithMaxTries(tt.maxTries))
			}
			got, err := Do(context.Background(), func(context.Context) (int, error) {
				err := tt.errs[calls]
				calls++
				if err != nil {
					return 0, err
				}
				return 42, nil
			}, opts...)

			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			last := tt.errs[tt.wantCalls-1]
			if last == nil {
				if err != nil || got != 42 {
					t.Errorf("Do() = %d, %v; want 42, nil", got, err)
				}
				return
			}
			if err != last {
				t.Errorf("Do() error = %v, want %v", err, last)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Do() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDoHonorsRetryAfter(t *testing.T) {
	t.Parallel()

	var waits []time.Duration
	calls := 0
	start := time.Now()
	_, err := Do(context.Background(), func(context.Context) (bool, error) {
		calls++
		if calls == 1 {
			return false, &bot.APIError{Code: 429, Description: "Too Many Requests: retry after 1", RetryAfter: 1}
		}
		return true, nil
	}, WithNotify(func(_ error, wait time.Duration) { waits = append(waits, wait) }))
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if len(waits) != 1 || waits[0] != time.Second {
		t.Errorf("waits = %v, want [1s]", waits)
	}
	if elapsed := time.Since(start); elapsed < time.Second {
		t.Errorf("elapsed = %v, want at least 1s", elapsed)
	}
}

func TestDoStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Do(ctx, func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, &bot.APIError{Code: 429, RetryAfter: 30}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
