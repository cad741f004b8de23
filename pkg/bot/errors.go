package bot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadySent is returned when Send is called on a consumed request.
var ErrAlreadySent = errors.New("telegram: request already sent")

// NetworkError is a transport-level failure: connection errors, timeouts,
// cancellation, or a non-2xx reply without a readable envelope.
type NetworkError struct {
	Method string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("telegram: %s request failed with status %d: %v", e.Method, e.Status, e.Err)
	}
	return fmt.Sprintf("telegram: %s request failed: %v", e.Method, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a failure reported by the Bot API in its response envelope.
type APIError struct {
	Code            int    `json:"error_code"`
	Description     string `json:"description"`
	RetryAfter      int    `json:"retry_after,omitempty"`
	MigrateToChatID int64  `json:"migrate_to_chat_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "telegram: %d %s", e.Code, e.Description)
	if e.RetryAfter > 0 {
		fmt.Fprintf(&b, " (retry after %ds)", e.RetryAfter)
	}
	if e.MigrateToChatID != 0 {
		fmt.Fprintf(&b, " (migrated to chat %d)", e.MigrateToChatID)
	}
	return b.String()
}

// DecodeError means the envelope reported success but the result did not
// match the type the method is declared to return.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("telegram: decode %s response: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
