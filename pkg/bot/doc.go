// Package bot is a typed client for the Telegram Bot API.
//
// Every remote method has its own request type built from a *Bot:
//
//	b := bot.New(token)
//	msg, err := b.SendVenue(types.ChatIDFromInt(42), 52.37, 4.89, "Rijksmuseum", "Museumstraat 1").
//		FoursquareID("4a2706e3f964a52080871fe3").
//		DisableNotification(true).
//		Send(ctx)
//
// Setters only record values; Send encodes the fields, performs exactly one
// HTTP exchange and decodes the response envelope. A request value is
// consumed by Send and cannot be sent twice.
//
// Failures are reported as *NetworkError (transport), *APIError (reported
// by Telegram, with retry_after and migrate_to_chat_id when present) or
// *DecodeError (the result did not match the expected type). The client
// never retries on its own; see package retry for a caller-side policy.
package bot
