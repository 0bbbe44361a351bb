package telegram_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VladPetriv/telegram"
)

func TestSendMessage(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		chatID   telegram.ChatID
		text     string
		opts     *telegram.SendMessageOptions
		expected string
	}{
		{
			desc:     "nil options produce only the required parameters",
			chatID:   telegram.ID(123),
			text:     "hello",
			expected: `{"chat_id":123,"text":"hello"}`,
		},
		{
			desc:   "set options are carried, unset ones are dropped",
			chatID: telegram.Name("@channel"),
			text:   "hello",
			opts: &telegram.SendMessageOptions{
				ParseMode:        telegram.String("HTML"),
				ReplyToMessageID: telegram.Int64(42),
			},
			expected: `{"chat_id":"@channel","text":"hello","parse_mode":"HTML","reply_to_message_id":42}`,
		},
		{
			desc:   "reply markup is attached when present",
			chatID: telegram.ID(1),
			text:   "pick",
			opts: &telegram.SendMessageOptions{
				ReplyMarkup: telegram.InlineKeyboard(
					telegram.InlineKeyboardRow(telegram.NewInlineKeyboardButton("Yes").WithCallbackData("yes")),
				),
			},
			expected: `{"chat_id":1,"text":"pick","reply_markup":{"inline_keyboard":[[{"text":"Yes","callback_data":"yes"}]]}}`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			req := telegram.SendMessage(tc.chatID, tc.text, tc.opts)
			assert.Equal(t, "sendMessage", req.Method)
			assertParamsJSON(t, req, tc.expected)
		})
	}
}

func TestRequest_NoNullParameters(t *testing.T) {
	t.Parallel()

	// Options structs with every field unset must leave no trace in the
	// parameter map.
	requests := []telegram.Request{
		telegram.GetUpdates(&telegram.GetUpdatesOptions{}),
		telegram.SendMessage(telegram.ID(1), "x", &telegram.SendMessageOptions{}),
		telegram.SendPhoto(telegram.ID(1), telegram.FileID("f"), &telegram.SendPhotoOptions{}),
		telegram.SendPoll(telegram.ID(1), "q", []string{"a", "b"}, &telegram.SendPollOptions{}),
		telegram.AnswerInlineQuery("q1", []telegram.InlineQueryResult{}, &telegram.AnswerInlineQueryOptions{}),
	}

	for _, req := range requests {
		for key, value := range req.Params {
			assert.NotNil(t, value, "%s: parameter %q is nil", req.Method, key)
		}
	}

	assert.Empty(t, telegram.GetUpdates(&telegram.GetUpdatesOptions{}).Params)
	assert.Len(t, telegram.SendMessage(telegram.ID(1), "x", &telegram.SendMessageOptions{}).Params, 2)
}

func TestSendPhoto(t *testing.T) {
	t.Parallel()

	req := telegram.SendPhoto(telegram.ID(5), telegram.FileURL("https://example.com/cat.png"), nil)
	assert.Equal(t, "sendPhoto", req.Method)
	assertParamsJSON(t, req, `{"chat_id":5,"photo":"https://example.com/cat.png"}`)
}

func TestSendMediaGroup(t *testing.T) {
	t.Parallel()

	media := []telegram.InputMedia{
		telegram.NewInputMediaPhoto(telegram.FileID("p1")),
		telegram.NewInputMediaVideo(telegram.FileUpload("clip")),
	}

	req := telegram.SendMediaGroup(telegram.ID(9), media, nil)
	assert.Equal(t, "sendMediaGroup", req.Method)
	assertParamsJSON(t, req, `{
		"chat_id": 9,
		"media": [
			{"type":"photo","media":"p1"},
			{"type":"video","media":"attach://clip"}
		]
	}`)
}

func TestEditMessageText(t *testing.T) {
	t.Parallel()

	t.Run("chat message reference", func(t *testing.T) {
		t.Parallel()

		req := telegram.EditMessageText(telegram.ChatMessage(telegram.ID(1), 2), "edited", nil)
		assert.Equal(t, "editMessageText", req.Method)
		assertParamsJSON(t, req, `{"chat_id":1,"message_id":2,"text":"edited"}`)
	})

	t.Run("inline message reference", func(t *testing.T) {
		t.Parallel()

		req := telegram.EditMessageText(telegram.InlineMessage("im1"), "edited", nil)
		assertParamsJSON(t, req, `{"inline_message_id":"im1","text":"edited"}`)
	})
}

func TestAnswerInlineQuery(t *testing.T) {
	t.Parallel()

	results := []telegram.InlineQueryResult{
		&telegram.InlineQueryResultArticle{
			Type:                telegram.ResultTypeArticle,
			ID:                  "r1",
			Title:               "First",
			InputMessageContent: telegram.NewMessageContent(&telegram.InputTextMessageContent{MessageText: "hi"}),
		},
	}

	req := telegram.AnswerInlineQuery("q7", results, &telegram.AnswerInlineQueryOptions{
		CacheTime: telegram.Int(30),
	})
	assert.Equal(t, "answerInlineQuery", req.Method)
	assertParamsJSON(t, req, `{
		"inline_query_id": "q7",
		"cache_time": 30,
		"results": [
			{"type":"article","id":"r1","title":"First","input_message_content":{"message_text":"hi"}}
		]
	}`)
}

func TestSetPassportDataErrors(t *testing.T) {
	t.Parallel()

	req := telegram.SetPassportDataErrors(7, []telegram.PassportElementError{
		&telegram.PassportElementErrorSelfie{
			Source:   telegram.ErrorSourceSelfie,
			Type:     "passport",
			FileHash: "h",
			Message:  "m",
		},
	})
	assert.Equal(t, "setPassportDataErrors", req.Method)
	assertParamsJSON(t, req, `{
		"user_id": 7,
		"errors": [{"source":"selfie","type":"passport","file_hash":"h","message":"m"}]
	}`)
}

func TestGetMe(t *testing.T) {
	t.Parallel()

	req := telegram.GetMe()
	assert.Equal(t, "getMe", req.Method)
	assert.Empty(t, req.Params)
}

// assertParamsJSON marshals the request parameters and compares them
// against the expected wire form, the way a transport would serialize
// them.
func assertParamsJSON(t *testing.T, req telegram.Request, expected string) {
	t.Helper()

	encoded, err := json.Marshal(req.Params)
	require.NoError(t, err)
	assert.JSONEq(t, expected, string(encoded))
}
