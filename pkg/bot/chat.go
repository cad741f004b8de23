package bot

import "github.com/flemzord/tgbind/pkg/types"

// GetChat returns up-to-date information about a chat.
type GetChat struct{ Request[types.Chat] }

var getChatSchema = newSchema("getChat").required("chat_id")

// GetChat builds a getChat request.
func (b *Bot) GetChat(chatID types.ChatID) *GetChat {
	r := &GetChat{newRequest[types.Chat](b, getChatSchema)}
	r.set("chat_id", chatID)
	return r
}

// SetChatTitle changes the title of a group, supergroup or channel.
type SetChatTitle struct{ Request[bool] }

var setChatTitleSchema = newSchema("setChatTitle").required("chat_id", "title")

// SetChatTitle builds a setChatTitle request.
func (b *Bot) SetChatTitle(chatID types.ChatID, title string) *SetChatTitle {
	r := &SetChatTitle{newRequest[bool](b, setChatTitleSchema)}
	r.set("chat_id", chatID)
	r.set("title", title)
	return r
}

// SetChatPhoto sets a new profile photo for a non-private chat. The photo
// must be uploaded inline.
type SetChatPhoto struct{ Request[bool] }

var setChatPhotoSchema = newSchema("setChatPhoto").required("chat_id", "photo")

// SetChatPhoto builds a setChatPhoto request.
func (b *Bot) SetChatPhoto(chatID types.ChatID, photo types.InputFile) *SetChatPhoto {
	r := &SetChatPhoto{newRequest[bool](b, setChatPhotoSchema)}
	r.set("chat_id", chatID)
	r.set("photo", &photo)
	return r
}

// DeleteChatPhoto deletes a chat photo. Photos can't be changed for
// private chats; the bot must be an administrator with the matching rights.
type DeleteChatPhoto struct{ Request[bool] }

var deleteChatPhotoSchema = newSchema("deleteChatPhoto").required("chat_id")

// DeleteChatPhoto builds a deleteChatPhoto request.
func (b *Bot) DeleteChatPhoto(chatID types.ChatID) *DeleteChatPhoto {
	r := &DeleteChatPhoto{newRequest[bool](b, deleteChatPhotoSchema)}
	r.set("chat_id", chatID)
	return r
}

// ChatID sets the target chat.
func (r *DeleteChatPhoto) ChatID(id types.ChatID) *DeleteChatPhoto {
	r.set("chat_id", id)
	return r
}

// CreateForumTopic creates a topic in a forum supergroup.
type CreateForumTopic struct{ Request[types.ForumTopic] }

var createForumTopicSchema = newSchema("createForumTopic").
	required("chat_id", "name").
	optional("icon_color", "icon_custom_emoji_id")

// Topic icon colors accepted by createForumTopic.
var (
	TopicBlue   = types.RgbFromUint32(0x6FB9F0)
	TopicYellow = types.RgbFromUint32(0xFFD67E)
	TopicViolet = types.RgbFromUint32(0xCB86DB)
	TopicGreen  = types.RgbFromUint32(0x8EEE98)
	TopicRose   = types.RgbFromUint32(0xFF93B2)
	TopicRed    = types.RgbFromUint32(0xFB6F5F)
)

// CreateForumTopic builds a createForumTopic request.
func (b *Bot) CreateForumTopic(chatID types.ChatID, name string) *CreateForumTopic {
	r := &CreateForumTopic{newRequest[types.ForumTopic](b, createForumTopicSchema)}
	r.set("chat_id", chatID)
	r.set("name", name)
	return r
}

// IconColor must be one of the Topic* colors; it cannot be changed later.
func (r *CreateForumTopic) IconColor(color types.Rgb) *CreateForumTopic {
	r.set("icon_color", color)
	return r
}

// IconCustomEmojiID sets a custom emoji as the topic icon.
func (r *CreateForumTopic) IconCustomEmojiID(id string) *CreateForumTopic {
	r.set("icon_custom_emoji_id", id)
	return r
}
