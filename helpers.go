package telegram

import (
	"github.com/google/uuid"
)

// String returns a pointer to the given string, for use in Options
// structs.
func String(v string) *string { return &v }

// Int returns a pointer to the given int, for use in Options structs.
func Int(v int) *int { return &v }

// Int64 returns a pointer to the given int64, for use in Options
// structs.
func Int64(v int64) *int64 { return &v }

// Float returns a pointer to the given float64, for use in Options
// structs.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to the given bool, for use in Options structs.
func Bool(v bool) *bool { return &v }

// NewResultID generates a unique id for an inline query result. Result
// ids must be unique within one answerInlineQuery call and fit in 64
// bytes; a UUID satisfies both.
func NewResultID() string {
	return uuid.NewString()
}

// FileID wraps an existing Telegram file id for a media parameter.
func FileID(id string) FileOrString {
	return EitherLeft[InputFile, string](InputFile{FileID: id})
}

// FileURL wraps an HTTP URL for Telegram to fetch a media file from.
func FileURL(url string) FileOrString {
	return EitherLeft[InputFile, string](InputFile{URL: url})
}

// FileUpload references a file the transport attaches to the request
// under the given name.
func FileUpload(name string) FileOrString {
	return EitherLeft[InputFile, string](InputFile{Name: name})
}

// NewInputMediaPhoto creates an InputMediaPhoto with its type set.
func NewInputMediaPhoto(media FileOrString) *InputMediaPhoto {
	return &InputMediaPhoto{Type: MediaTypePhoto, Media: media}
}

// NewInputMediaVideo creates an InputMediaVideo with its type set.
func NewInputMediaVideo(media FileOrString) *InputMediaVideo {
	return &InputMediaVideo{Type: MediaTypeVideo, Media: media}
}

// NewInputMediaAnimation creates an InputMediaAnimation with its type
// set.
func NewInputMediaAnimation(media FileOrString) *InputMediaAnimation {
	return &InputMediaAnimation{Type: MediaTypeAnimation, Media: media}
}

// NewInputMediaAudio creates an InputMediaAudio with its type set.
func NewInputMediaAudio(media FileOrString) *InputMediaAudio {
	return &InputMediaAudio{Type: MediaTypeAudio, Media: media}
}

// NewInputMediaDocument creates an InputMediaDocument with its type set.
func NewInputMediaDocument(media FileOrString) *InputMediaDocument {
	return &InputMediaDocument{Type: MediaTypeDocument, Media: media}
}

// Keyboard creates a reply keyboard from the given button rows.
func Keyboard(rows ...[]KeyboardButton) *ReplyKeyboardMarkup {
	return &ReplyKeyboardMarkup{Keyboard: rows}
}

// KeyboardRow creates one row of reply keyboard buttons.
func KeyboardRow(buttons ...KeyboardButton) []KeyboardButton {
	return buttons
}

// NewKeyboardButton creates a reply keyboard button with the given text.
func NewKeyboardButton(text string) KeyboardButton {
	return KeyboardButton{Text: text}
}

// WithResizeKeyboard asks clients to resize the keyboard vertically for
// an optimal fit.
func (m *ReplyKeyboardMarkup) WithResizeKeyboard() *ReplyKeyboardMarkup {
	m.ResizeKeyboard = true
	return m
}

// WithOneTimeKeyboard asks clients to hide the keyboard after one use.
func (m *ReplyKeyboardMarkup) WithOneTimeKeyboard() *ReplyKeyboardMarkup {
	m.OneTimeKeyboard = true
	return m
}

// InlineKeyboard creates an inline keyboard from the given button rows.
func InlineKeyboard(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// InlineKeyboardRow creates one row of inline keyboard buttons.
func InlineKeyboardRow(buttons ...InlineKeyboardButton) []InlineKeyboardButton {
	return buttons
}

// NewInlineKeyboardButton creates an inline keyboard button with the
// given text.
func NewInlineKeyboardButton(text string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text}
}

// WithCallbackData returns a copy of the button carrying callback data.
func (b InlineKeyboardButton) WithCallbackData(data string) InlineKeyboardButton {
	b.CallbackData = data
	return b
}

// WithURL returns a copy of the button opening the given URL.
func (b InlineKeyboardButton) WithURL(url string) InlineKeyboardButton {
	b.URL = url
	return b
}

// WithSwitchInlineQuery returns a copy of the button that prompts the
// user to select a chat and insert an inline query there.
func (b InlineKeyboardButton) WithSwitchInlineQuery(query string) InlineKeyboardButton {
	b.SwitchInlineQuery = &query
	return b
}

// SplitInlineKeyboardRows splits inline keyboard rows into several
// keyboards of at most maxButtons buttons each, never breaking a row in
// the middle. Useful when a keyboard outgrows what one message can
// carry.
func SplitInlineKeyboardRows(rows [][]InlineKeyboardButton, maxButtons int) []*InlineKeyboardMarkup {
	var total int
	for _, row := range rows {
		total += len(row)
	}
	if total <= maxButtons {
		return []*InlineKeyboardMarkup{InlineKeyboard(rows...)}
	}

	var (
		buttonsCount        int
		lastProcessedRowIdx int
	)

	result := make([]*InlineKeyboardMarkup, 0, 2)

	for rowIdx, row := range rows {
		for btnIdx := range row {
			if buttonsCount == maxButtons {
				splitIndex := rowIdx

				// Ensure the split doesn't occur in the middle of a row
				if btnIdx > 0 {
					splitIndex--
				}

				result = append(result, InlineKeyboard(rows[lastProcessedRowIdx:splitIndex]...))

				// Reset counters
				buttonsCount = 0
				lastProcessedRowIdx = splitIndex
			}

			buttonsCount++
		}
	}

	// Append the remaining buttons
	if lastProcessedRowIdx < len(rows) {
		result = append(result, InlineKeyboard(rows[lastProcessedRowIdx:]...))
	}

	return result
}
