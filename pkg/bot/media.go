package bot

import "github.com/flemzord/tgbind/pkg/types"

// SendPhoto sends a photo.
type SendPhoto struct{ Request[types.Message] }

var sendPhotoSchema = newSchema("sendPhoto").
	required("chat_id").
	optional("message_thread_id").
	required("photo").
	optional("caption", "parse_mode", "caption_entities", "has_spoiler",
		"disable_notification", "reply_to_message_id", "reply_markup")

// SendPhoto builds a sendPhoto request.
func (b *Bot) SendPhoto(chatID types.ChatID, photo types.InputFile) *SendPhoto {
	r := &SendPhoto{newRequest[types.Message](b, sendPhotoSchema)}
	r.set("chat_id", chatID)
	r.set("photo", &photo)
	return r
}

// MessageThreadID targets a forum topic.
func (r *SendPhoto) MessageThreadID(id int) *SendPhoto {
	r.set("message_thread_id", id)
	return r
}

// Caption sets the media caption.
func (r *SendPhoto) Caption(caption string) *SendPhoto { r.set("caption", caption); return r }

// ParseMode sets the text formatting mode, e.g. MarkdownV2 or HTML.
func (r *SendPhoto) ParseMode(mode string) *SendPhoto { r.set("parse_mode", mode); return r }

// CaptionEntities sets the special entities of the caption, replacing parse mode.
func (r *SendPhoto) CaptionEntities(entities []types.MessageEntity) *SendPhoto {
	r.set("caption_entities", entities)
	return r
}

// HasSpoiler covers the media with a spoiler animation.
func (r *SendPhoto) HasSpoiler(spoiler bool) *SendPhoto { r.set("has_spoiler", spoiler); return r }

// DisableNotification sends the message silently.
func (r *SendPhoto) DisableNotification(disable bool) *SendPhoto {
	r.set("disable_notification", disable)
	return r
}

// ReplyToMessageID sends the message as a reply.
func (r *SendPhoto) ReplyToMessageID(id int) *SendPhoto {
	r.set("reply_to_message_id", id)
	return r
}

// ReplyMarkup attaches a keyboard or reply instruction.
func (r *SendPhoto) ReplyMarkup(markup types.ReplyMarkup) *SendPhoto {
	r.set("reply_markup", markup)
	return r
}

// SendDocument sends a general file.
type SendDocument struct{ Request[types.Message] }

var sendDocumentSchema = newSchema("sendDocument").
	required("chat_id").
	optional("message_thread_id").
	required("document").
	optional("thumbnail", "caption", "parse_mode", "caption_entities",
		"disable_content_type_detection", "disable_notification", "reply_to_message_id", "reply_markup")

// SendDocument builds a sendDocument request.
func (b *Bot) SendDocument(chatID types.ChatID, document types.InputFile) *SendDocument {
	r := &SendDocument{newRequest[types.Message](b, sendDocumentSchema)}
	r.set("chat_id", chatID)
	r.set("document", &document)
	return r
}

// MessageThreadID targets a forum topic.
func (r *SendDocument) MessageThreadID(id int) *SendDocument {
	r.set("message_thread_id", id)
	return r
}

// Thumbnail must be an inline JPEG; Telegram ignores thumbnails passed
// by file ID.
func (r *SendDocument) Thumbnail(thumb types.InputFile) *SendDocument {
	r.set("thumbnail", &thumb)
	return r
}

// Caption sets the media caption.
func (r *SendDocument) Caption(caption string) *SendDocument { r.set("caption", caption); return r }

// ParseMode sets the text formatting mode, e.g. MarkdownV2 or HTML.
func (r *SendDocument) ParseMode(mode string) *SendDocument { r.set("parse_mode", mode); return r }

// CaptionEntities sets the special entities of the caption, replacing parse mode.
func (r *SendDocument) CaptionEntities(entities []types.MessageEntity) *SendDocument {
	r.set("caption_entities", entities)
	return r
}

// DisableContentTypeDetection turns off server-side content type detection for uploaded files.
func (r *SendDocument) DisableContentTypeDetection(disable bool) *SendDocument {
	r.set("disable_content_type_detection", disable)
	return r
}

// DisableNotification sends the message silently.
func (r *SendDocument) DisableNotification(disable bool) *SendDocument {
	r.set("disable_notification", disable)
	return r
}

// ReplyToMessageID sends the message as a reply.
func (r *SendDocument) ReplyToMessageID(id int) *SendDocument {
	r.set("reply_to_message_id", id)
	return r
}

// ReplyMarkup attaches a keyboard or reply instruction.
func (r *SendDocument) ReplyMarkup(markup types.ReplyMarkup) *SendDocument {
	r.set("reply_markup", markup)
	return r
}

// SendAudio sends an audio file to be displayed in the music player.
type SendAudio struct{ Request[types.Message] }

var sendAudioSchema = newSchema("sendAudio").
	required("chat_id").
	optional("message_thread_id").
	required("audio").
	optional("caption", "parse_mode", "duration", "performer", "title", "thumbnail",
		"disable_notification", "reply_to_message_id", "reply_markup")

// SendAudio builds a sendAudio request.
func (b *Bot) SendAudio(chatID types.ChatID, audio types.InputFile) *SendAudio {
	r := &SendAudio{newRequest[types.Message](b, sendAudioSchema)}
	r.set("chat_id", chatID)
	r.set("audio", &audio)
	return r
}

// MessageThreadID targets a forum topic.
func (r *SendAudio) MessageThreadID(id int) *SendAudio {
	r.set("message_thread_id", id)
	return r
}

// Caption sets the media caption.
func (r *SendAudio) Caption(caption string) *SendAudio { r.set("caption", caption); return r }

// ParseMode sets the text formatting mode, e.g. MarkdownV2 or HTML.
func (r *SendAudio) ParseMode(mode string) *SendAudio { r.set("parse_mode", mode); return r }

// Duration sets the duration in seconds.
func (r *SendAudio) Duration(seconds int) *SendAudio { r.set("duration", seconds); return r }

// Performer sets the audio performer.
func (r *SendAudio) Performer(performer string) *SendAudio { r.set("performer", performer); return r }

// Title sets the track name.
func (r *SendAudio) Title(title string) *SendAudio { r.set("title", title); return r }

// Thumbnail sets the thumbnail of the file.
func (r *SendAudio) Thumbnail(thumb types.InputFile) *SendAudio {
	r.set("thumbnail", &thumb)
	return r
}

// DisableNotification sends the message silently.
func (r *SendAudio) DisableNotification(disable bool) *SendAudio {
	r.set("disable_notification", disable)
	return r
}

// ReplyToMessageID sends the message as a reply.
func (r *SendAudio) ReplyToMessageID(id int) *SendAudio {
	r.set("reply_to_message_id", id)
	return r
}

// ReplyMarkup attaches a keyboard or reply instruction.
func (r *SendAudio) ReplyMarkup(markup types.ReplyMarkup) *SendAudio {
	r.set("reply_markup", markup)
	return r
}

// SendMediaGroup sends two to ten photos, videos, documents or audios as
// an album. Documents and audios can only be grouped with their own kind.
type SendMediaGroup struct{ Request[[]types.Message] }

var sendMediaGroupSchema = newSchema("sendMediaGroup").
	required("chat_id").
	optional("message_thread_id").
	required("media").
	optional("disable_notification", "protect_content", "reply_to_message_id")

// SendMediaGroup builds a sendMediaGroup request. Inline files inside the
// media items are uploaded as separate parts of one multipart body.
func (b *Bot) SendMediaGroup(chatID types.ChatID, media []types.InputMedia) *SendMediaGroup {
	r := &SendMediaGroup{newRequest[[]types.Message](b, sendMediaGroupSchema)}
	r.set("chat_id", chatID)
	r.set("media", types.MediaGroup(media))
	return r
}

// ChatID sets the target chat.
func (r *SendMediaGroup) ChatID(id types.ChatID) *SendMediaGroup { r.set("chat_id", id); return r }

// Media replaces the media items.
func (r *SendMediaGroup) Media(media []types.InputMedia) *SendMediaGroup {
	r.set("media", types.MediaGroup(media))
	return r
}

// MessageThreadID targets a forum topic.
func (r *SendMediaGroup) MessageThreadID(id int) *SendMediaGroup {
	r.set("message_thread_id", id)
	return r
}

// DisableNotification sends the message silently.
func (r *SendMediaGroup) DisableNotification(disable bool) *SendMediaGroup {
	r.set("disable_notification", disable)
	return r
}

// ProtectContent protects the content from forwarding and saving.
func (r *SendMediaGroup) ProtectContent(protect bool) *SendMediaGroup {
	r.set("protect_content", protect)
	return r
}

// ReplyToMessageID sends the message as a reply.
func (r *SendMediaGroup) ReplyToMessageID(id int) *SendMediaGroup {
	r.set("reply_to_message_id", id)
	return r
}
