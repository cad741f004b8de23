package bot

import (
	"encoding/json"
	"errors"
	"fmt"
)

// envelope is the wrapper around every Bot API response.
type envelope struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	Description string              `json:"description,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// ResponseParameters explains why a request was unsuccessful.
type ResponseParameters struct {
	RetryAfter      int   `json:"retry_after,omitempty"`
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
}

// decodeEnvelope turns a raw response into T or one of NetworkError,
// APIError and DecodeError.
func decodeEnvelope[T any](method string, status int, body []byte) (T, error) {
	var zero T

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status < 200 || status > 299 {
			return zero, &NetworkError{Method: method, Status: status, Err: errors.New("response carries no API envelope")}
		}
		return zero, &DecodeError{Method: method, Err: err}
	}

	if !env.OK {
		apiErr := &APIError{
			Code:        env.ErrorCode,
			Description: env.Description,
		}
		if env.Parameters != nil {
			apiErr.RetryAfter = env.Parameters.RetryAfter
			apiErr.MigrateToChatID = env.Parameters.MigrateToChatID
		}
		return zero, apiErr
	}

	if len(env.Result) == 0 {
		return zero, &DecodeError{Method: method, Err: errors.New("envelope has ok=true but no result")}
	}
	var result T
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return zero, &DecodeError{Method: method, Err: fmt.Errorf("result: %w", err)}
	}
	return result, nil
}
