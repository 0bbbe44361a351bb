package telegram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VladPetriv/telegram"
)

func TestDecodeInlineQueryResult(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		input    string
		expected telegram.InlineQueryResult
	}{
		{
			desc:  "photo result decodes as the first shape with photo_url and thumb_url satisfied",
			input: `{"type":"photo","id":"1","photo_url":"http://x/p.jpg","thumb_url":"http://x/t.jpg"}`,
			expected: &telegram.InlineQueryResultPhoto{
				Type:     "photo",
				ID:       "1",
				PhotoURL: "http://x/p.jpg",
				ThumbURL: "http://x/t.jpg",
			},
		},
		{
			desc:  "cached photo wins over url photo by shape",
			input: `{"type":"photo","id":"2","photo_file_id":"abc"}`,
			expected: &telegram.InlineQueryResultCachedPhoto{
				Type:        "photo",
				ID:          "2",
				PhotoFileID: "abc",
			},
		},
		{
			desc:  "article decodes through its wrapped message content",
			input: `{"type":"article","id":"3","title":"hello","input_message_content":{"message_text":"hi"}}`,
			expected: &telegram.InlineQueryResultArticle{
				Type:                "article",
				ID:                  "3",
				Title:               "hello",
				InputMessageContent: telegram.NewMessageContent(&telegram.InputTextMessageContent{MessageText: "hi"}),
			},
		},
		{
			desc:  "venue payload is shadowed by the earlier location shape",
			input: `{"type":"venue","id":"4","latitude":1.5,"longitude":2.5,"title":"place","address":"street 1"}`,
			expected: &telegram.InlineQueryResultLocation{
				Type:      "venue",
				ID:        "4",
				Latitude:  1.5,
				Longitude: 2.5,
				Title:     "place",
			},
		},
		{
			desc:  "voice result requires voice_url and title",
			input: `{"type":"voice","id":"5","voice_url":"http://x/v.ogg","title":"note"}`,
			expected: &telegram.InlineQueryResultVoice{
				Type:     "voice",
				ID:       "5",
				VoiceURL: "http://x/v.ogg",
				Title:    "note",
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := telegram.DecodeInlineQueryResult([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeInlineQueryResult_NoMatch(t *testing.T) {
	t.Parallel()

	input := `{"type":"photo","id":"1"}`

	actual, err := telegram.DecodeInlineQueryResult([]byte(input))
	require.Error(t, err)
	assert.Nil(t, actual)
	assert.True(t, telegram.IsDecodeError(err))

	var decodeErr *telegram.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "InlineQueryResult", decodeErr.Union)
	assert.Len(t, decodeErr.Candidates, 19)
	assert.Contains(t, decodeErr.Candidates, "InlineQueryResultPhoto")
	assert.JSONEq(t, input, string(decodeErr.Input))
	assert.Contains(t, err.Error(), "InlineQueryResult")
}

func TestDecodeInputMessageContent(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		input    string
		expected telegram.InputMessageContent
	}{
		{
			desc:     "text content",
			input:    `{"message_text":"hi","parse_mode":"HTML"}`,
			expected: &telegram.InputTextMessageContent{MessageText: "hi", ParseMode: "HTML"},
		},
		{
			desc:     "location content wins over venue when only coordinates are present",
			input:    `{"latitude":1.5,"longitude":2.5}`,
			expected: &telegram.InputLocationMessageContent{Latitude: 1.5, Longitude: 2.5},
		},
		{
			desc:     "contact content",
			input:    `{"phone_number":"+123","first_name":"Ann"}`,
			expected: &telegram.InputContactMessageContent{PhoneNumber: "+123", FirstName: "Ann"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := telegram.DecodeInputMessageContent([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeInputMessageContent_WrongPrimitiveType(t *testing.T) {
	t.Parallel()

	// message_text is present but holds a number, so the text shape must
	// be rejected rather than coerced.
	_, err := telegram.DecodeInputMessageContent([]byte(`{"message_text":5}`))
	require.Error(t, err)
	assert.True(t, telegram.IsDecodeError(err))
}

func TestDecodeInputMedia(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		input    string
		expected telegram.InputMedia
		wantErr  bool
	}{
		{
			desc:     "video is selected by its type tag",
			input:    `{"type":"video","media":"file-id","supports_streaming":true}`,
			expected: &telegram.InputMediaVideo{Type: "video", Media: telegram.FileID("file-id"), SupportsStreaming: true},
		},
		{
			desc:     "photo is selected by its type tag",
			input:    `{"type":"photo","media":"http://x/p.jpg","caption":"pic"}`,
			expected: &telegram.InputMediaPhoto{Type: "photo", Media: telegram.FileURL("http://x/p.jpg"), Caption: "pic"},
		},
		{
			desc:    "unknown type tag matches nothing",
			input:   `{"type":"hologram","media":"file-id"}`,
			wantErr: true,
		},
		{
			desc:    "missing media matches nothing",
			input:   `{"type":"photo"}`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := telegram.DecodeInputMedia([]byte(tc.input))
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, telegram.IsDecodeError(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
