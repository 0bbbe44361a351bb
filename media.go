package telegram

import (
	"encoding/json"
	"fmt"
	"strings"
)

// InputFile references the contents of a file to be sent: an existing
// file_id on Telegram servers, an HTTP URL for Telegram to fetch, or the
// name of an upload attached to the request by the transport
// ("attach://<name>"). Exactly one field should be set.
//
// The wire form is flat: InputFile marshals to a single JSON string.
type InputFile struct {
	FileID string
	URL    string
	Name   string
}

const attachPrefix = "attach://"

var (
	_ json.Marshaler   = InputFile{}
	_ json.Unmarshaler = (*InputFile)(nil)
)

func (f InputFile) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(f.String())
}

func (f *InputFile) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsonCodec.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode InputFile: %w", err)
	}

	*f = InputFile{}
	switch {
	case strings.HasPrefix(s, attachPrefix):
		f.Name = strings.TrimPrefix(s, attachPrefix)
	case strings.Contains(s, "://"):
		f.URL = s
	default:
		f.FileID = s
	}

	return nil
}

// String returns the wire representation of the file reference.
func (f InputFile) String() string {
	switch {
	case f.Name != "":
		return attachPrefix + f.Name
	case f.URL != "":
		return f.URL
	default:
		return f.FileID
	}
}

// FileOrString is a file reference that may be a structured InputFile or
// a plain string, used for thumbnails and media fields.
type FileOrString = Either[InputFile, string]

// InputMedia is the closed set of media shapes accepted by
// sendMediaGroup and editMessageMedia.
type InputMedia interface {
	// MediaType returns the value of the shape's "type" field.
	MediaType() string
}

// Media type values of the InputMedia shapes.
const (
	MediaTypePhoto     = "photo"
	MediaTypeVideo     = "video"
	MediaTypeAnimation = "animation"
	MediaTypeAudio     = "audio"
	MediaTypeDocument  = "document"
)

// MediaType returns "photo".
func (*InputMediaPhoto) MediaType() string { return MediaTypePhoto }

// MediaType returns "video".
func (*InputMediaVideo) MediaType() string { return MediaTypeVideo }

// MediaType returns "animation".
func (*InputMediaAnimation) MediaType() string { return MediaTypeAnimation }

// MediaType returns "audio".
func (*InputMediaAudio) MediaType() string { return MediaTypeAudio }

// MediaType returns "document".
func (*InputMediaDocument) MediaType() string { return MediaTypeDocument }

// InputMediaPhoto represents a photo to be sent.
type InputMediaPhoto struct {
	Type      string       `json:"type"`
	Media     FileOrString `json:"media"`
	Caption   string       `json:"caption,omitempty"`
	ParseMode string       `json:"parse_mode,omitempty"`
}

// InputMediaVideo represents a video to be sent.
type InputMediaVideo struct {
	Type              string        `json:"type"`
	Media             FileOrString  `json:"media"`
	Thumb             *FileOrString `json:"thumb,omitempty"`
	Caption           string        `json:"caption,omitempty"`
	ParseMode         string        `json:"parse_mode,omitempty"`
	Width             int           `json:"width,omitempty"`
	Height            int           `json:"height,omitempty"`
	Duration          int           `json:"duration,omitempty"`
	SupportsStreaming bool          `json:"supports_streaming,omitempty"`
}

// InputMediaAnimation represents an animation to be sent.
type InputMediaAnimation struct {
	Type      string        `json:"type"`
	Media     FileOrString  `json:"media"`
	Thumb     *FileOrString `json:"thumb,omitempty"`
	Caption   string        `json:"caption,omitempty"`
	ParseMode string        `json:"parse_mode,omitempty"`
	Width     int           `json:"width,omitempty"`
	Height    int           `json:"height,omitempty"`
	Duration  int           `json:"duration,omitempty"`
}

// InputMediaAudio represents an audio file to be sent.
type InputMediaAudio struct {
	Type      string        `json:"type"`
	Media     FileOrString  `json:"media"`
	Thumb     *FileOrString `json:"thumb,omitempty"`
	Caption   string        `json:"caption,omitempty"`
	ParseMode string        `json:"parse_mode,omitempty"`
	Duration  int           `json:"duration,omitempty"`
	Performer string        `json:"performer,omitempty"`
	Title     string        `json:"title,omitempty"`
}

// InputMediaDocument represents a general file to be sent.
type InputMediaDocument struct {
	Type      string        `json:"type"`
	Media     FileOrString  `json:"media"`
	Thumb     *FileOrString `json:"thumb,omitempty"`
	Caption   string        `json:"caption,omitempty"`
	ParseMode string        `json:"parse_mode,omitempty"`
}

// inputMediaCandidates is ordered the way the Bot API documents the
// shapes. All five share the same required fields, so the "type"
// discriminant carried by the payload is what tells them apart.
var inputMediaCandidates = []candidate[InputMedia]{
	{"InputMediaAnimation", "type", MediaTypeAnimation, []string{"type", "media"}, func() InputMedia { return new(InputMediaAnimation) }},
	{"InputMediaDocument", "type", MediaTypeDocument, []string{"type", "media"}, func() InputMedia { return new(InputMediaDocument) }},
	{"InputMediaAudio", "type", MediaTypeAudio, []string{"type", "media"}, func() InputMedia { return new(InputMediaAudio) }},
	{"InputMediaPhoto", "type", MediaTypePhoto, []string{"type", "media"}, func() InputMedia { return new(InputMediaPhoto) }},
	{"InputMediaVideo", "type", MediaTypeVideo, []string{"type", "media"}, func() InputMedia { return new(InputMediaVideo) }},
}

// DecodeInputMedia decodes a JSON payload into the matching InputMedia
// shape.
func DecodeInputMedia(data []byte) (InputMedia, error) {
	return decodeUnion("InputMedia", data, inputMediaCandidates)
}
