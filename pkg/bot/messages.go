package bot

import (
	"github.com/flemzord/tgbind/pkg/form"
	"github.com/flemzord/tgbind/pkg/types"
)

// SendMessage sends a text message.
type SendMessage struct{ Request[types.Message] }

var sendMessageSchema = newSchema("sendMessage").
	required("chat_id").
	optional("message_thread_id").
	required("text").
	optional("parse_mode", "entities", "disable_web_page_preview", "disable_notification",
		"protect_content", "reply_to_message_id", "reply_markup")

// SendMessage builds a sendMessage request.
func (b *Bot) SendMessage(chatID types.ChatID, text string) *SendMessage {
	r := &SendMessage{newRequest[types.Message](b, sendMessageSchema)}
	r.set("chat_id", chatID)
	r.set("text", text)
	return r
}

// ChatID sets the target chat.
func (r *SendMessage) ChatID(id types.ChatID) *SendMessage { r.set("chat_id", id); return r }

// Text sets the message text.
func (r *SendMessage) Text(text string) *SendMessage { r.set("text", text); return r }

// MessageThreadID targets a forum topic.
func (r *SendMessage) MessageThreadID(id int) *SendMessage {
	r.set("message_thread_id", id)
	return r
}

// ParseMode is one of "MarkdownV2", "HTML" or "Markdown".
func (r *SendMessage) ParseMode(mode string) *SendMessage { r.set("parse_mode", mode); return r }

// Entities sets the special entities of the text, replacing parse mode.
func (r *SendMessage) Entities(entities []types.MessageEntity) *SendMessage {
	r.set("entities", entities)
	return r
}

// DisableWebPagePreview turns off link previews.
func (r *SendMessage) DisableWebPagePreview(disable bool) *SendMessage {
	r.set("disable_web_page_preview", disable)
	return r
}

// DisableNotification sends the message silently.
func (r *SendMessage) DisableNotification(disable bool) *SendMessage {
	r.set("disable_notification", disable)
	return r
}

// ProtectContent protects the content from forwarding and saving.
func (r *SendMessage) ProtectContent(protect bool) *SendMessage {
	r.set("protect_content", protect)
	return r
}

// ReplyToMessageID sends the message as a reply.
func (r *SendMessage) ReplyToMessageID(id int) *SendMessage {
	r.set("reply_to_message_id", id)
	return r
}

// ReplyMarkup attaches a keyboard or reply instruction.
func (r *SendMessage) ReplyMarkup(markup types.ReplyMarkup) *SendMessage {
	r.set("reply_markup", markup)
	return r
}

// ForwardMessage forwards a message of any kind.
type ForwardMessage struct{ Request[types.Message] }

var forwardMessageSchema = newSchema("forwardMessage").
	required("chat_id").
	optional("message_thread_id").
	required("from_chat_id").
	optional("disable_notification", "protect_content").
	required("message_id")

// ForwardMessage builds a forwardMessage request.
func (b *Bot) ForwardMessage(chatID, fromChatID types.ChatID, messageID int) *ForwardMessage {
	r := &ForwardMessage{newRequest[types.Message](b, forwardMessageSchema)}
	r.set("chat_id", chatID)
	r.set("from_chat_id", fromChatID)
	r.set("message_id", messageID)
	return r
}

// ChatID sets the target chat.
func (r *ForwardMessage) ChatID(id types.ChatID) *ForwardMessage { r.set("chat_id", id); return r }

// FromChatID sets the chat the message is forwarded from.
func (r *ForwardMessage) FromChatID(id types.ChatID) *ForwardMessage {
	r.set("from_chat_id", id)
	return r
}

// MessageID sets the message to act on.
func (r *ForwardMessage) MessageID(id int) *ForwardMessage { r.set("message_id", id); return r }

// MessageThreadID targets a forum topic.
func (r *ForwardMessage) MessageThreadID(id int) *ForwardMessage {
	r.set("message_thread_id", id)
	return r
}

// DisableNotification sends the message silently.
func (r *ForwardMessage) DisableNotification(disable bool) *ForwardMessage {
	r.set("disable_notification", disable)
	return r
}

// ProtectContent protects the content from forwarding and saving.
func (r *ForwardMessage) ProtectContent(protect bool) *ForwardMessage {
	r.set("protect_content", protect)
	return r
}

// EditMessageText edits the text of a message sent by the bot.
type EditMessageText struct{ Request[types.Message] }

var editMessageTextSchema = newSchema("editMessageText").
	required("chat_id", "message_id", "text").
	optional("parse_mode", "entities", "disable_web_page_preview", "reply_markup")

// EditMessageText builds an editMessageText request.
func (b *Bot) EditMessageText(chatID types.ChatID, messageID int, text string) *EditMessageText {
	r := &EditMessageText{newRequest[types.Message](b, editMessageTextSchema)}
	r.set("chat_id", chatID)
	r.set("message_id", messageID)
	r.set("text", text)
	return r
}

// Text replaces the message text.
func (r *EditMessageText) Text(text string) *EditMessageText { r.set("text", text); return r }

// ParseMode sets the text formatting mode, e.g. MarkdownV2 or HTML.
func (r *EditMessageText) ParseMode(mode string) *EditMessageText {
	r.set("parse_mode", mode)
	return r
}

// Entities sets the special entities of the text, replacing parse mode.
func (r *EditMessageText) Entities(entities []types.MessageEntity) *EditMessageText {
	r.set("entities", entities)
	return r
}

// DisableWebPagePreview turns off link previews.
func (r *EditMessageText) DisableWebPagePreview(disable bool) *EditMessageText {
	r.set("disable_web_page_preview", disable)
	return r
}

// ReplyMarkup only accepts an inline keyboard for edits.
func (r *EditMessageText) ReplyMarkup(markup types.InlineKeyboardMarkup) *EditMessageText {
	r.set("reply_markup", markup)
	return r
}

// EditMessageCaption edits or removes the caption of a message.
type EditMessageCaption struct{ Request[types.Message] }

var editMessageCaptionSchema = newSchema("editMessageCaption").
	required("chat_id", "message_id").
	optional("caption", "parse_mode", "caption_entities", "reply_markup").
	nullable("caption")

// EditMessageCaption builds an editMessageCaption request. Without a call
// to Caption or ClearCaption the request leaves the caption untouched.
func (b *Bot) EditMessageCaption(chatID types.ChatID, messageID int) *EditMessageCaption {
	r := &EditMessageCaption{newRequest[types.Message](b, editMessageCaptionSchema)}
	r.set("chat_id", chatID)
	r.set("message_id", messageID)
	return r
}

// Caption replaces the caption of the message.
func (r *EditMessageCaption) Caption(caption string) *EditMessageCaption {
	r.set("caption", caption)
	return r
}

// ClearCaption removes the caption by sending an explicit null.
func (r *EditMessageCaption) ClearCaption() *EditMessageCaption {
	r.set("caption", form.Null)
	return r
}

// ParseMode sets the text formatting mode, e.g. MarkdownV2 or HTML.
func (r *EditMessageCaption) ParseMode(mode string) *EditMessageCaption {
	r.set("parse_mode", mode)
	return r
}

// CaptionEntities sets the special entities of the caption, replacing parse mode.
func (r *EditMessageCaption) CaptionEntities(entities []types.MessageEntity) *EditMessageCaption {
	r.set("caption_entities", entities)
	return r
}

// ReplyMarkup attaches a keyboard or reply instruction.
func (r *EditMessageCaption) ReplyMarkup(markup types.InlineKeyboardMarkup) *EditMessageCaption {
	r.set("reply_markup", markup)
	return r
}

// SendLocation sends a point on the map.
type SendLocation struct{ Request[types.Message] }

var sendLocationSchema = newSchema("sendLocation").
	required("chat_id").
	optional("message_thread_id").
	required("latitude", "longitude").
	optional("horizontal_accuracy", "live_period", "disable_notification",
		"reply_to_message_id", "reply_markup")

// SendLocation builds a sendLocation request.
func (b *Bot) SendLocation(chatID types.ChatID, latitude, longitude float64) *SendLocation {
	r := &SendLocation{newRequest[types.Message](b, sendLocationSchema)}
	r.set("chat_id", chatID)
	r.set("latitude", latitude)
	r.set("longitude", longitude)
	return r
}

// MessageThreadID targets a forum topic.
func (r *SendLocation) MessageThreadID(id int) *SendLocation {
	r.set("message_thread_id", id)
	return r
}

// HorizontalAccuracy is the uncertainty radius in meters (0-1500).
func (r *SendLocation) HorizontalAccuracy(meters float64) *SendLocation {
	r.set("horizontal_accuracy", meters)
	return r
}

// LivePeriod makes the location live for the given number of seconds.
func (r *SendLocation) LivePeriod(seconds int) *SendLocation {
	r.set("live_period", seconds)
	return r
}

// DisableNotification sends the message silently.
func (r *SendLocation) DisableNotification(disable bool) *SendLocation {
	r.set("disable_notification", disable)
	return r
}

// ReplyToMessageID sends the message as a reply.
func (r *SendLocation) ReplyToMessageID(id int) *SendLocation {
	r.set("reply_to_message_id", id)
	return r
}

// ReplyMarkup attaches a keyboard or reply instruction.
func (r *SendLocation) ReplyMarkup(markup types.ReplyMarkup) *SendLocation {
	r.set("reply_markup", markup)
	return r
}

// SendVenue sends information about a venue.
type SendVenue struct{ Request[types.Message] }

var sendVenueSchema = newSchema("sendVenue").
	required("chat_id").
	optional("message_thread_id").
	required("latitude", "longitude", "title", "address").
	optional("foursquare_id", "foursquare_type", "disable_notification",
		"reply_to_message_id", "reply_markup")

// SendVenue builds a sendVenue request.
func (b *Bot) SendVenue(chatID types.ChatID, latitude, longitude float64, title, address string) *SendVenue {
	r := &SendVenue{newRequest[types.Message](b, sendVenueSchema)}
	r.set("chat_id", chatID)
	r.set("latitude", latitude)
	r.set("longitude", longitude)
	r.set("title", title)
	r.set("address", address)
	return r
}

// ChatID sets the target chat.
func (r *SendVenue) ChatID(id types.ChatID) *SendVenue { r.set("chat_id", id); return r }

// Latitude sets the latitude.
func (r *SendVenue) Latitude(lat float64) *SendVenue { r.set("latitude", lat); return r }

// Longitude sets the longitude.
func (r *SendVenue) Longitude(lon float64) *SendVenue { r.set("longitude", lon); return r }

// Title sets the name of the venue.
func (r *SendVenue) Title(title string) *SendVenue { r.set("title", title); return r }

// Address sets the address of the venue.
func (r *SendVenue) Address(address string) *SendVenue { r.set("address", address); return r }

// MessageThreadID targets a forum topic.
func (r *SendVenue) MessageThreadID(id int) *SendVenue {
	r.set("message_thread_id", id)
	return r
}

// FoursquareID sets the Foursquare identifier of the venue.
func (r *SendVenue) FoursquareID(id string) *SendVenue { r.set("foursquare_id", id); return r }

// FoursquareType is the Foursquare category, for example
// "arts_entertainment/aquarium" or "food/icecream".
func (r *SendVenue) FoursquareType(kind string) *SendVenue {
	r.set("foursquare_type", kind)
	return r
}

// DisableNotification sends the message silently.
func (r *SendVenue) DisableNotification(disable bool) *SendVenue {
	r.set("disable_notification", disable)
	return r
}

// ReplyToMessageID sends the message as a reply.
func (r *SendVenue) ReplyToMessageID(id int) *SendVenue {
	r.set("reply_to_message_id", id)
	return r
}

// ReplyMarkup attaches a keyboard or reply instruction.
func (r *SendVenue) ReplyMarkup(markup types.ReplyMarkup) *SendVenue {
	r.set("reply_markup", markup)
	return r
}

// SendChatAction shows a status such as "typing" in the chat.
type SendChatAction struct{ Request[bool] }

var sendChatActionSchema = newSchema("sendChatAction").
	required("chat_id").
	optional("message_thread_id").
	required("action")

// SendChatAction builds a sendChatAction request.
func (b *Bot) SendChatAction(chatID types.ChatID, action string) *SendChatAction {
	r := &SendChatAction{newRequest[bool](b, sendChatActionSchema)}
	r.set("chat_id", chatID)
	r.set("action", action)
	return r
}

// MessageThreadID targets a forum topic.
func (r *SendChatAction) MessageThreadID(id int) *SendChatAction {
	r.set("message_thread_id", id)
	return r
}
