package bot

import "github.com/flemzord/tgbind/pkg/types"

// GetMe returns basic information about the bot.
type GetMe struct{ Request[types.User] }

var getMeSchema = newSchema("getMe")

// GetMe builds a getMe request.
func (b *Bot) GetMe() *GetMe {
	return &GetMe{newRequest[types.User](b, getMeSchema)}
}

// GetUpdates receives incoming updates using long polling.
type GetUpdates struct{ Request[[]types.Update] }

var getUpdatesSchema = newSchema("getUpdates").
	optional("offset", "limit", "timeout", "allowed_updates")

// GetUpdates builds a getUpdates request.
func (b *Bot) GetUpdates() *GetUpdates {
	return &GetUpdates{newRequest[[]types.Update](b, getUpdatesSchema)}
}

// Offset is the identifier of the first update to return.
func (r *GetUpdates) Offset(offset int) *GetUpdates { r.set("offset", offset); return r }

// Limit caps the number of returned updates (1-100).
func (r *GetUpdates) Limit(limit int) *GetUpdates { r.set("limit", limit); return r }

// Timeout is the long polling timeout in seconds.
func (r *GetUpdates) Timeout(seconds int) *GetUpdates { r.set("timeout", seconds); return r }

// AllowedUpdates limits delivery to the listed update types.
func (r *GetUpdates) AllowedUpdates(kinds []string) *GetUpdates {
	r.set("allowed_updates", kinds)
	return r
}

// SetWebhook registers an HTTPS URL that receives updates.
type SetWebhook struct{ Request[bool] }

var setWebhookSchema = newSchema("setWebhook").
	required("url").
	optional("certificate", "ip_address", "max_connections", "allowed_updates",
		"drop_pending_updates", "secret_token")

// SetWebhook builds a setWebhook request.
func (b *Bot) SetWebhook(url string) *SetWebhook {
	r := &SetWebhook{newRequest[bool](b, setWebhookSchema)}
	r.set("url", url)
	return r
}

// Certificate uploads a self-signed public key certificate.
func (r *SetWebhook) Certificate(cert types.InputFile) *SetWebhook {
	r.set("certificate", &cert)
	return r
}

// IPAddress sets the fixed IP address Telegram sends webhook requests to.
func (r *SetWebhook) IPAddress(ip string) *SetWebhook { r.set("ip_address", ip); return r }

// MaxConnections caps simultaneous webhook connections (1-100).
func (r *SetWebhook) MaxConnections(n int) *SetWebhook { r.set("max_connections", n); return r }

// AllowedUpdates limits delivery to the listed update types.
func (r *SetWebhook) AllowedUpdates(kinds []string) *SetWebhook {
	r.set("allowed_updates", kinds)
	return r
}

// DropPendingUpdates drops updates that are still queued.
func (r *SetWebhook) DropPendingUpdates(drop bool) *SetWebhook {
	r.set("drop_pending_updates", drop)
	return r
}

// SecretToken is echoed in the X-Telegram-Bot-Api-Secret-Token header of
// every webhook call.
func (r *SetWebhook) SecretToken(token string) *SetWebhook {
	r.set("secret_token", token)
	return r
}

// DeleteWebhook removes the webhook integration.
type DeleteWebhook struct{ Request[bool] }

var deleteWebhookSchema = newSchema("deleteWebhook").optional("drop_pending_updates")

// DeleteWebhook builds a deleteWebhook request.
func (b *Bot) DeleteWebhook() *DeleteWebhook {
	return &DeleteWebhook{newRequest[bool](b, deleteWebhookSchema)}
}

// DropPendingUpdates drops updates that are still queued.
func (r *DeleteWebhook) DropPendingUpdates(drop bool) *DeleteWebhook {
	r.set("drop_pending_updates", drop)
	return r
}

// GetFile prepares a file for download through Bot.FileURL.
type GetFile struct{ Request[types.File] }

var getFileSchema = newSchema("getFile").required("file_id")

// GetFile builds a getFile request.
func (b *Bot) GetFile(fileID string) *GetFile {
	r := &GetFile{newRequest[types.File](b, getFileSchema)}
	r.set("file_id", fileID)
	return r
}
