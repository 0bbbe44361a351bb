package telegram

// InlineQuery represents an incoming inline query.
type InlineQuery struct {
	ID       string    `json:"id"`
	From     *User     `json:"from"`
	Location *Location `json:"location,omitempty"`
	Query    string    `json:"query"`
	Offset   string    `json:"offset"`
}

// ChosenInlineResult represents an inline query result chosen by a user.
type ChosenInlineResult struct {
	ResultID        string    `json:"result_id"`
	From            *User     `json:"from"`
	Location        *Location `json:"location,omitempty"`
	InlineMessageID string    `json:"inline_message_id,omitempty"`
	Query           string    `json:"query"`
}

// InputMessageContent is the closed set of content shapes an inline
// query result may send instead of its default content.
type InputMessageContent interface {
	inputMessageContent()
}

func (*InputTextMessageContent) inputMessageContent()     {}
func (*InputLocationMessageContent) inputMessageContent() {}
func (*InputVenueMessageContent) inputMessageContent()    {}
func (*InputContactMessageContent) inputMessageContent()  {}

// InputTextMessageContent represents the content of a text message.
type InputTextMessageContent struct {
	MessageText           string `json:"message_text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

// InputLocationMessageContent represents the content of a location
// message.
type InputLocationMessageContent struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	LivePeriod int     `json:"live_period,omitempty"`
}

// InputVenueMessageContent represents the content of a venue message.
type InputVenueMessageContent struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Title          string  `json:"title"`
	Address        string  `json:"address"`
	FoursquareID   string  `json:"foursquare_id,omitempty"`
	FoursquareType string  `json:"foursquare_type,omitempty"`
}

// InputContactMessageContent represents the content of a contact
// message.
type InputContactMessageContent struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	VCard       string `json:"vcard,omitempty"`
}

// inputMessageContentCandidates carries no "type" discriminant on the
// wire, so matching is by shape alone. The location shape's required
// fields are a subset of the venue shape's, so a venue payload decodes
// as a location: the untagged wire format cannot tell them apart and
// first match wins.
var inputMessageContentCandidates = []candidate[InputMessageContent]{
	{"InputTextMessageContent", "", "", []string{"message_text"}, func() InputMessageContent { return new(InputTextMessageContent) }},
	{"InputLocationMessageContent", "", "", []string{"latitude", "longitude"}, func() InputMessageContent { return new(InputLocationMessageContent) }},
	{"InputVenueMessageContent", "", "", []string{"latitude", "longitude", "title", "address"}, func() InputMessageContent { return new(InputVenueMessageContent) }},
	{"InputContactMessageContent", "", "", []string{"phone_number", "first_name"}, func() InputMessageContent { return new(InputContactMessageContent) }},
}

// DecodeInputMessageContent decodes a JSON payload into the matching
// InputMessageContent shape.
func DecodeInputMessageContent(data []byte) (InputMessageContent, error) {
	return decodeUnion("InputMessageContent", data, inputMessageContentCandidates)
}

// MessageContent adapts an InputMessageContent for use as a struct
// field: it marshals flat and decodes through the union's first-match
// rules.
type MessageContent struct {
	Content InputMessageContent
}

// NewMessageContent wraps content for use in an inline query result.
func NewMessageContent(content InputMessageContent) *MessageContent {
	return &MessageContent{Content: content}
}

func (m MessageContent) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(m.Content)
}

func (m *MessageContent) UnmarshalJSON(data []byte) error {
	content, err := DecodeInputMessageContent(data)
	if err != nil {
		return err
	}

	m.Content = content

	return nil
}

// InlineQueryResult is the closed set of result shapes accepted by
// answerInlineQuery.
type InlineQueryResult interface {
	// ResultType returns the value of the shape's "type" field.
	ResultType() string
}

// Result type values of the InlineQueryResult shapes.
const (
	ResultTypeArticle  = "article"
	ResultTypeAudio    = "audio"
	ResultTypeContact  = "contact"
	ResultTypeDocument = "document"
	ResultTypeGif      = "gif"
	ResultTypeLocation = "location"
	ResultTypeMpeg4Gif = "mpeg4_gif"
	ResultTypePhoto    = "photo"
	ResultTypeSticker  = "sticker"
	ResultTypeVenue    = "venue"
	ResultTypeVideo    = "video"
	ResultTypeVoice    = "voice"
)

// InlineQueryResultCachedAudio links to an audio file stored on the
// Telegram servers.
type InlineQueryResultCachedAudio struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	AudioFileID         string                `json:"audio_file_id"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "audio".
func (*InlineQueryResultCachedAudio) ResultType() string { return ResultTypeAudio }

// InlineQueryResultCachedDocument links to a file stored on the Telegram
// servers.
type InlineQueryResultCachedDocument struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	DocumentFileID      string                `json:"document_file_id"`
	Description         string                `json:"description,omitempty"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "document".
func (*InlineQueryResultCachedDocument) ResultType() string { return ResultTypeDocument }

// InlineQueryResultCachedGif links to an animated GIF stored on the
// Telegram servers.
type InlineQueryResultCachedGif struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	GifFileID           string                `json:"gif_file_id"`
	Title               string                `json:"title,omitempty"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "gif".
func (*InlineQueryResultCachedGif) ResultType() string { return ResultTypeGif }

// InlineQueryResultCachedMpeg4Gif links to a video animation stored on
// the Telegram servers.
type InlineQueryResultCachedMpeg4Gif struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	Mpeg4FileID         string                `json:"mpeg4_file_id"`
	Title               string                `json:"title,omitempty"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "mpeg4_gif".
func (*InlineQueryResultCachedMpeg4Gif) ResultType() string { return ResultTypeMpeg4Gif }

// InlineQueryResultCachedPhoto links to a photo stored on the Telegram
// servers.
type InlineQueryResultCachedPhoto struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	PhotoFileID         string                `json:"photo_file_id"`
	Title               string                `json:"title,omitempty"`
	Description         string                `json:"description,omitempty"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "photo".
func (*InlineQueryResultCachedPhoto) ResultType() string { return ResultTypePhoto }

// InlineQueryResultCachedSticker links to a sticker stored on the
// Telegram servers.
type InlineQueryResultCachedSticker struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	StickerFileID       string                `json:"sticker_file_id"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "sticker".
func (*InlineQueryResultCachedSticker) ResultType() string { return ResultTypeSticker }

// InlineQueryResultCachedVideo links to a video file stored on the
// Telegram servers.
type InlineQueryResultCachedVideo struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	VideoFileID         string                `json:"video_file_id"`
	Title               string                `json:"title"`
	Description         string                `json:"description,omitempty"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "video".
func (*InlineQueryResultCachedVideo) ResultType() string { return ResultTypeVideo }

// InlineQueryResultCachedVoice links to a voice message stored on the
// Telegram servers.
type InlineQueryResultCachedVoice struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	VoiceFileID         string                `json:"voice_file_id"`
	Title               string                `json:"title"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "voice".
func (*InlineQueryResultCachedVoice) ResultType() string { return ResultTypeVoice }

// InlineQueryResultArticle links to an article or web page.
type InlineQueryResultArticle struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	InputMessageContent *MessageContent       `json:"input_message_content"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	URL                 string                `json:"url,omitempty"`
	HideURL             bool                  `json:"hide_url,omitempty"`
	Description         string                `json:"description,omitempty"`
	ThumbURL            string                `json:"thumb_url,omitempty"`
	ThumbWidth          int                   `json:"thumb_width,omitempty"`
	ThumbHeight         int                   `json:"thumb_height,omitempty"`
}

// ResultType returns "article".
func (*InlineQueryResultArticle) ResultType() string { return ResultTypeArticle }

// InlineQueryResultAudio links to an MP3 audio file.
type InlineQueryResultAudio struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	AudioURL            string                `json:"audio_url"`
	Title               string                `json:"title"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	Performer           string                `json:"performer,omitempty"`
	AudioDuration       int                   `json:"audio_duration,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "audio".
func (*InlineQueryResultAudio) ResultType() string { return ResultTypeAudio }

// InlineQueryResultContact represents a contact with a phone number.
type InlineQueryResultContact struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	PhoneNumber         string                `json:"phone_number"`
	FirstName           string                `json:"first_name"`
	LastName            string                `json:"last_name,omitempty"`
	VCard               string                `json:"vcard,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
	ThumbURL            string                `json:"thumb_url,omitempty"`
	ThumbWidth          int                   `json:"thumb_width,omitempty"`
	ThumbHeight         int                   `json:"thumb_height,omitempty"`
}

// ResultType returns "contact".
func (*InlineQueryResultContact) ResultType() string { return ResultTypeContact }

// InlineQueryResultDocument links to a file.
type InlineQueryResultDocument struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	DocumentURL         string                `json:"document_url"`
	MimeType            string                `json:"mime_type"`
	Description         string                `json:"description,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
	ThumbURL            string                `json:"thumb_url,omitempty"`
	ThumbWidth          int                   `json:"thumb_width,omitempty"`
	ThumbHeight         int                   `json:"thumb_height,omitempty"`
}

// ResultType returns "document".
func (*InlineQueryResultDocument) ResultType() string { return ResultTypeDocument }

// InlineQueryResultGif links to an animated GIF.
type InlineQueryResultGif struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	GifURL              string                `json:"gif_url"`
	GifWidth            int                   `json:"gif_width,omitempty"`
	GifHeight           int                   `json:"gif_height,omitempty"`
	GifDuration         int                   `json:"gif_duration,omitempty"`
	ThumbURL            string                `json:"thumb_url"`
	Title               string                `json:"title,omitempty"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "gif".
func (*InlineQueryResultGif) ResultType() string { return ResultTypeGif }

// InlineQueryResultLocation represents a location on a map.
type InlineQueryResultLocation struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	Latitude            float64               `json:"latitude"`
	Longitude           float64               `json:"longitude"`
	Title               string                `json:"title"`
	LivePeriod          int                   `json:"live_period,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
	ThumbURL            string                `json:"thumb_url,omitempty"`
	ThumbWidth          int                   `json:"thumb_width,omitempty"`
	ThumbHeight         int                   `json:"thumb_height,omitempty"`
}

// ResultType returns "location".
func (*InlineQueryResultLocation) ResultType() string { return ResultTypeLocation }

// InlineQueryResultMpeg4Gif links to a video animation (H.264/MPEG-4 AVC
// video without sound).
type InlineQueryResultMpeg4Gif struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	Mpeg4URL            string                `json:"mpeg4_url"`
	Mpeg4Width          int                   `json:"mpeg4_width,omitempty"`
	Mpeg4Height         int                   `json:"mpeg4_height,omitempty"`
	Mpeg4Duration       int                   `json:"mpeg4_duration,omitempty"`
	ThumbURL            string                `json:"thumb_url"`
	Title               string                `json:"title,omitempty"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "mpeg4_gif".
func (*InlineQueryResultMpeg4Gif) ResultType() string { return ResultTypeMpeg4Gif }

// InlineQueryResultPhoto links to a photo.
type InlineQueryResultPhoto struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	PhotoURL            string                `json:"photo_url"`
	ThumbURL            string                `json:"thumb_url"`
	PhotoWidth          int                   `json:"photo_width,omitempty"`
	PhotoHeight         int                   `json:"photo_height,omitempty"`
	Title               string                `json:"title,omitempty"`
	Description         string                `json:"description,omitempty"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "photo".
func (*InlineQueryResultPhoto) ResultType() string { return ResultTypePhoto }

// InlineQueryResultVenue represents a venue.
type InlineQueryResultVenue struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	Latitude            float64               `json:"latitude"`
	Longitude           float64               `json:"longitude"`
	Title               string                `json:"title"`
	Address             string                `json:"address"`
	FoursquareID        string                `json:"foursquare_id,omitempty"`
	FoursquareType      string                `json:"foursquare_type,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
	ThumbURL            string                `json:"thumb_url,omitempty"`
	ThumbWidth          int                   `json:"thumb_width,omitempty"`
	ThumbHeight         int                   `json:"thumb_height,omitempty"`
}

// ResultType returns "venue".
func (*InlineQueryResultVenue) ResultType() string { return ResultTypeVenue }

// InlineQueryResultVideo links to a page containing an embedded video
// player or a video file.
type InlineQueryResultVideo struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	VideoURL            string                `json:"video_url"`
	MimeType            string                `json:"mime_type"`
	ThumbURL            string                `json:"thumb_url"`
	Title               string                `json:"title"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	VideoWidth          int                   `json:"video_width,omitempty"`
	VideoHeight         int                   `json:"video_height,omitempty"`
	VideoDuration       int                   `json:"video_duration,omitempty"`
	Description         string                `json:"description,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "video".
func (*InlineQueryResultVideo) ResultType() string { return ResultTypeVideo }

// InlineQueryResultVoice links to a voice recording in an OGG container
// encoded with OPUS.
type InlineQueryResultVoice struct {
	Type                string                `json:"type"`
	ID                  string                `json:"id"`
	VoiceURL            string                `json:"voice_url"`
	Title               string                `json:"title"`
	Caption             string                `json:"caption,omitempty"`
	ParseMode           string                `json:"parse_mode,omitempty"`
	VoiceDuration       int                   `json:"voice_duration,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent *MessageContent       `json:"input_message_content,omitempty"`
}

// ResultType returns "voice".
func (*InlineQueryResultVoice) ResultType() string { return ResultTypeVoice }

// inlineQueryResultCandidates is ordered the way the Bot API documents
// the shapes: the eight cached shapes first, then the URL-based ones.
// The wire format is untagged beyond the shared "type" field, whose
// values collide between cached and URL-based variants, so matching is
// by shape.
var inlineQueryResultCandidates = []candidate[InlineQueryResult]{
	{"InlineQueryResultCachedAudio", "", "", []string{"type", "id", "audio_file_id"}, func() InlineQueryResult { return new(InlineQueryResultCachedAudio) }},
	{"InlineQueryResultCachedDocument", "", "", []string{"type", "id", "title", "document_file_id"}, func() InlineQueryResult { return new(InlineQueryResultCachedDocument) }},
	{"InlineQueryResultCachedGif", "", "", []string{"type", "id", "gif_file_id"}, func() InlineQueryResult { return new(InlineQueryResultCachedGif) }},
	{"InlineQueryResultCachedMpeg4Gif", "", "", []string{"type", "id", "mpeg4_file_id"}, func() InlineQueryResult { return new(InlineQueryResultCachedMpeg4Gif) }},
	{"InlineQueryResultCachedPhoto", "", "", []string{"type", "id", "photo_file_id"}, func() InlineQueryResult { return new(InlineQueryResultCachedPhoto) }},
	{"InlineQueryResultCachedSticker", "", "", []string{"type", "id", "sticker_file_id"}, func() InlineQueryResult { return new(InlineQueryResultCachedSticker) }},
	{"InlineQueryResultCachedVideo", "", "", []string{"type", "id", "video_file_id", "title"}, func() InlineQueryResult { return new(InlineQueryResultCachedVideo) }},
	{"InlineQueryResultCachedVoice", "", "", []string{"type", "id", "voice_file_id", "title"}, func() InlineQueryResult { return new(InlineQueryResultCachedVoice) }},
	{"InlineQueryResultArticle", "", "", []string{"type", "id", "title", "input_message_content"}, func() InlineQueryResult { return new(InlineQueryResultArticle) }},
	{"InlineQueryResultAudio", "", "", []string{"type", "id", "audio_url", "title"}, func() InlineQueryResult { return new(InlineQueryResultAudio) }},
	{"InlineQueryResultContact", "", "", []string{"type", "id", "phone_number", "first_name"}, func() InlineQueryResult { return new(InlineQueryResultContact) }},
	{"InlineQueryResultDocument", "", "", []string{"type", "id", "title", "document_url", "mime_type"}, func() InlineQueryResult { return new(InlineQueryResultDocument) }},
	{"InlineQueryResultGif", "", "", []string{"type", "id", "gif_url", "thumb_url"}, func() InlineQueryResult { return new(InlineQueryResultGif) }},
	{"InlineQueryResultLocation", "", "", []string{"type", "id", "latitude", "longitude", "title"}, func() InlineQueryResult { return new(InlineQueryResultLocation) }},
	{"InlineQueryResultMpeg4Gif", "", "", []string{"type", "id", "mpeg4_url", "thumb_url"}, func() InlineQueryResult { return new(InlineQueryResultMpeg4Gif) }},
	{"InlineQueryResultPhoto", "", "", []string{"type", "id", "photo_url", "thumb_url"}, func() InlineQueryResult { return new(InlineQueryResultPhoto) }},
	{"InlineQueryResultVenue", "", "", []string{"type", "id", "latitude", "longitude", "title", "address"}, func() InlineQueryResult { return new(InlineQueryResultVenue) }},
	{"InlineQueryResultVideo", "", "", []string{"type", "id", "video_url", "mime_type", "thumb_url", "title"}, func() InlineQueryResult { return new(InlineQueryResultVideo) }},
	{"InlineQueryResultVoice", "", "", []string{"type", "id", "voice_url", "title"}, func() InlineQueryResult { return new(InlineQueryResultVoice) }},
}

// DecodeInlineQueryResult decodes a JSON payload into the matching
// InlineQueryResult shape.
func DecodeInlineQueryResult(data []byte) (InlineQueryResult, error) {
	return decodeUnion("InlineQueryResult", data, inlineQueryResultCandidates)
}
