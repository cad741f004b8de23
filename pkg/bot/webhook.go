package bot

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/flemzord/tgbind/pkg/types"
)

// SecretTokenHeader carries the secret_token configured with setWebhook.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

const maxWebhookBody = 1 << 20

// WebhookHandler is an http.Handler that decodes webhook updates and hands
// them to an UpdateHandler.
type WebhookHandler struct {
	handler UpdateHandler
	secret  string
	logger  *slog.Logger
}

var _ http.Handler = (*WebhookHandler)(nil)

// NewWebhookHandler creates a WebhookHandler. When secret is not empty,
// requests without the matching secret token header are rejected.
func NewWebhookHandler(handler UpdateHandler, secret string, logger *slog.Logger) *WebhookHandler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &WebhookHandler{handler: handler, secret: secret, logger: logger}
}

// ServeHTTP implements http.Handler.
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.secret != "" {
		token := r.Header.Get(SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(h.secret), []byte(token)) != 1 {
			http.Error(w, "invalid secret token", http.StatusUnauthorized)
			return
		}
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	var update types.Update
	if err := json.Unmarshal(body, &update); err != nil {
		http.Error(w, "invalid update", http.StatusBadRequest)
		return
	}

	// Any non-2xx reply makes Telegram redeliver the update.
	if err := h.handler(r.Context(), update); err != nil {
		h.logger.Error("webhook update handler failed",
			"update_id", update.UpdateID,
			"error", err,
		)
	}
	w.WriteHeader(http.StatusOK)
}
