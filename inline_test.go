package telegram_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VladPetriv/telegram"
)

func TestInlineQueryResult_RoundTrip(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc   string
		result telegram.InlineQueryResult
	}{
		{
			desc: "article with text content",
			result: &telegram.InlineQueryResultArticle{
				Type:  telegram.ResultTypeArticle,
				ID:    "r1",
				Title: "First",
				InputMessageContent: telegram.NewMessageContent(&telegram.InputTextMessageContent{
					MessageText: "hello",
					ParseMode:   "HTML",
				}),
				Description: "greeting",
			},
		},
		{
			desc: "photo with url and thumbnail",
			result: &telegram.InlineQueryResultPhoto{
				Type:     telegram.ResultTypePhoto,
				ID:       "r2",
				PhotoURL: "https://example.com/cat.png",
				ThumbURL: "https://example.com/cat_small.png",
				Caption:  "a cat",
			},
		},
		{
			desc: "cached sticker",
			result: &telegram.InlineQueryResultCachedSticker{
				Type:          telegram.ResultTypeSticker,
				ID:            "r3",
				StickerFileID: "CAAD-1",
			},
		},
		{
			desc: "contact with contact content",
			result: &telegram.InlineQueryResultContact{
				Type:        telegram.ResultTypeContact,
				ID:          "r4",
				PhoneNumber: "+380000000000",
				FirstName:   "Ann",
				InputMessageContent: telegram.NewMessageContent(&telegram.InputContactMessageContent{
					PhoneNumber: "+380000000000",
					FirstName:   "Ann",
				}),
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			encoded, err := json.Marshal(tc.result)
			require.NoError(t, err)

			decoded, err := telegram.DecodeInlineQueryResult(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.result, decoded)
		})
	}
}

func TestInlineQueryResult_EncodeFlat(t *testing.T) {
	t.Parallel()

	// The encoded form carries the shape's own fields only: no wrapper
	// object and no synthetic discriminant.
	result := &telegram.InlineQueryResultCachedGif{
		Type:      telegram.ResultTypeGif,
		ID:        "r1",
		GifFileID: "GIF-1",
	}

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"gif","id":"r1","gif_file_id":"GIF-1"}`, string(encoded))
}

func TestMessageContent_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals the wrapped content flat", func(t *testing.T) {
		t.Parallel()

		content := telegram.NewMessageContent(&telegram.InputVenueMessageContent{
			Latitude:  50.45,
			Longitude: 30.52,
			Title:     "Office",
			Address:   "Khreshchatyk 1",
		})

		encoded, err := json.Marshal(content)
		require.NoError(t, err)
		assert.JSONEq(t, `{"latitude":50.45,"longitude":30.52,"title":"Office","address":"Khreshchatyk 1"}`, string(encoded))
	})

	t.Run("decode failure surfaces the union error", func(t *testing.T) {
		t.Parallel()

		var content telegram.MessageContent
		err := json.Unmarshal([]byte(`{"unrelated":true}`), &content)
		require.Error(t, err)
		assert.True(t, telegram.IsDecodeError(err))
	})
}

func TestInlineQuery_RoundTrip(t *testing.T) {
	t.Parallel()

	query := telegram.InlineQuery{
		ID:     "q1",
		From:   &telegram.User{ID: 7, FirstName: "Ann"},
		Query:  "cats",
		Offset: "10",
	}

	encoded, err := json.Marshal(query)
	require.NoError(t, err)

	var decoded telegram.InlineQuery
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, query, decoded)
}
