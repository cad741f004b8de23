package types

// Input media types accepted by sendMediaGroup and editMessageMedia.
const (
	MediaPhoto    = "photo"
	MediaVideo    = "video"
	MediaAudio    = "audio"
	MediaDocument = "document"
)

// InputMedia is one item of a media group.
type InputMedia struct {
	Type              string          `json:"type"`
	Media             *InputFile      `json:"media"`
	Thumbnail         *InputFile      `json:"thumbnail,omitempty"`
	Caption           string          `json:"caption,omitempty"`
	ParseMode         string          `json:"parse_mode,omitempty"`
	CaptionEntities   []MessageEntity `json:"caption_entities,omitempty"`
	HasSpoiler        bool            `json:"has_spoiler,omitempty"`
	Width             int             `json:"width,omitempty"`
	Height            int             `json:"height,omitempty"`
	Duration          int             `json:"duration,omitempty"`
	SupportsStreaming bool            `json:"supports_streaming,omitempty"`
	Performer         string          `json:"performer,omitempty"`
	Title             string          `json:"title,omitempty"`
}

// NewInputMediaPhoto returns a photo item.
func NewInputMediaPhoto(media InputFile) InputMedia {
	return InputMedia{Type: MediaPhoto, Media: &media}
}

// NewInputMediaVideo returns a video item.
func NewInputMediaVideo(media InputFile) InputMedia {
	return InputMedia{Type: MediaVideo, Media: &media}
}

// NewInputMediaAudio returns an audio item.
func NewInputMediaAudio(media InputFile) InputMedia {
	return InputMedia{Type: MediaAudio, Media: &media}
}

// NewInputMediaDocument returns a document item.
func NewInputMediaDocument(media InputFile) InputMedia {
	return InputMedia{Type: MediaDocument, Media: &media}
}

// InputFiles implements FileCarrier.
func (m InputMedia) InputFiles() []*InputFile {
	files := make([]*InputFile, 0, 2)
	if m.Media != nil {
		files = append(files, m.Media)
	}
	if m.Thumbnail != nil {
		files = append(files, m.Thumbnail)
	}
	return files
}

// MediaGroup is the media field of sendMediaGroup.
type MediaGroup []InputMedia

// InputFiles implements FileCarrier.
func (g MediaGroup) InputFiles() []*InputFile {
	var files []*InputFile
	for _, m := range g {
		files = append(files, m.InputFiles()...)
	}
	return files
}
