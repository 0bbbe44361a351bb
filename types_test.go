package telegram_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VladPetriv/telegram"
)

func TestMessage_RoundTrip(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc    string
		message telegram.Message
	}{
		{
			desc: "text message with optionals absent",
			message: telegram.Message{
				MessageID: 10,
				Date:      1_585_000_000,
				Chat:      telegram.Chat{ID: 1, Type: telegram.ChatTypePrivate},
				Text:      "hello",
			},
		},
		{
			desc: "message with optionals present",
			message: telegram.Message{
				MessageID: 11,
				From:      &telegram.User{ID: 7, FirstName: "Ann", Username: "ann"},
				Date:      1_585_000_100,
				Chat:      telegram.Chat{ID: -100, Type: telegram.ChatTypeSupergroup, Title: "dev"},
				Text:      "/start@samplebot now",
				Entities:  []telegram.MessageEntity{{Type: "bot_command", Offset: 0, Length: 16}},
				ReplyToMessage: &telegram.Message{
					MessageID: 9,
					Date:      1_585_000_000,
					Chat:      telegram.Chat{ID: -100, Type: telegram.ChatTypeSupergroup, Title: "dev"},
					Text:      "hi",
				},
				Poll: &telegram.Poll{
					ID:              "p1",
					Question:        "ok?",
					Options:         []telegram.PollOption{{Text: "yes", VoterCount: 2}},
					TotalVoterCount: 2,
					Type:            "quiz",
					CorrectOptionID: telegram.Int(0),
				},
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			encoded, err := json.Marshal(tc.message)
			require.NoError(t, err)

			var decoded telegram.Message
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.Empty(t, cmp.Diff(tc.message, decoded))
		})
	}
}

func TestMessage_Command(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc      string
		message   telegram.Message
		isCommand bool
		command   string
	}{
		{
			desc: "plain command",
			message: telegram.Message{
				Text:     "/balance",
				Entities: []telegram.MessageEntity{{Type: "bot_command", Offset: 0, Length: 8}},
			},
			isCommand: true,
			command:   "balance",
		},
		{
			desc: "command with a bot mention",
			message: telegram.Message{
				Text:     "/start@samplebot now",
				Entities: []telegram.MessageEntity{{Type: "bot_command", Offset: 0, Length: 16}},
			},
			isCommand: true,
			command:   "start",
		},
		{
			desc: "command entity not at the start",
			message: telegram.Message{
				Text:     "try /help",
				Entities: []telegram.MessageEntity{{Type: "bot_command", Offset: 4, Length: 5}},
			},
		},
		{
			desc:    "plain text",
			message: telegram.Message{Text: "hello"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.isCommand, tc.message.IsCommand())
			assert.Equal(t, tc.command, tc.message.Command())
		})
	}
}

func TestUpdate_Accessors(t *testing.T) {
	t.Parallel()

	from := &telegram.User{ID: 7, FirstName: "Ann"}

	t.Run("message update", func(t *testing.T) {
		t.Parallel()

		update := telegram.Update{
			UpdateID: 1,
			Message: &telegram.Message{
				MessageID: 2,
				From:      from,
				Chat:      telegram.Chat{ID: 42, Type: telegram.ChatTypePrivate},
				Text:      "hello",
			},
		}

		assert.Equal(t, int64(42), update.ChatID())
		assert.Equal(t, "hello", update.Text())
		assert.Equal(t, from, update.Sender())
	})

	t.Run("callback query update", func(t *testing.T) {
		t.Parallel()

		update := telegram.Update{
			UpdateID: 2,
			CallbackQuery: &telegram.CallbackQuery{
				ID:   "cb1",
				From: from,
				Message: &telegram.Message{
					MessageID: 3,
					Chat:      telegram.Chat{ID: 43, Type: telegram.ChatTypePrivate},
				},
				Data: "page:2",
			},
		}

		assert.Equal(t, int64(43), update.ChatID())
		assert.Equal(t, "page:2", update.Text())
		assert.Equal(t, from, update.Sender())
	})

	t.Run("empty update", func(t *testing.T) {
		t.Parallel()

		var update telegram.Update

		assert.Zero(t, update.ChatID())
		assert.Empty(t, update.Text())
		assert.Nil(t, update.Sender())
	})
}

func TestChatID_JSON(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc   string
		chatID telegram.ChatID
		wire   string
	}{
		{
			desc:   "numeric id marshals to a number",
			chatID: telegram.ID(123),
			wire:   `123`,
		},
		{
			desc:   "username marshals to a string",
			chatID: telegram.Name("@channel"),
			wire:   `"@channel"`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			encoded, err := json.Marshal(tc.chatID)
			require.NoError(t, err)
			assert.Equal(t, tc.wire, string(encoded))

			var decoded telegram.ChatID
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.Equal(t, tc.chatID, decoded)
		})
	}
}

func TestAPIResponse(t *testing.T) {
	t.Parallel()

	t.Run("successful response decodes its result", func(t *testing.T) {
		t.Parallel()

		var response telegram.APIResponse
		require.NoError(t, json.Unmarshal([]byte(`{"ok":true,"result":{"id":7,"is_bot":true,"first_name":"sample"}}`), &response))
		require.NoError(t, response.Err())

		var me telegram.User
		require.NoError(t, response.DecodeResult(&me))
		assert.Equal(t, telegram.User{ID: 7, IsBot: true, FirstName: "sample"}, me)
	})

	t.Run("failed response carries the api error", func(t *testing.T) {
		t.Parallel()

		var response telegram.APIResponse
		require.NoError(t, json.Unmarshal([]byte(`{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 5","parameters":{"retry_after":5}}`), &response))

		err := response.Err()
		require.Error(t, err)

		var apiErr *telegram.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 429, apiErr.Code)
		require.NotNil(t, apiErr.Parameters)
		assert.Equal(t, 5, apiErr.Parameters.RetryAfter)
		assert.Equal(t, "telegram: 429 Too Many Requests: retry after 5", err.Error())

		var ignored telegram.User
		assert.Error(t, response.DecodeResult(&ignored))
	})
}

func TestChat_TypePredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, telegram.Chat{Type: telegram.ChatTypePrivate}.IsPrivate())
	assert.True(t, telegram.Chat{Type: telegram.ChatTypeGroup}.IsGroup())
	assert.True(t, telegram.Chat{Type: telegram.ChatTypeSupergroup}.IsSupergroup())
	assert.True(t, telegram.Chat{Type: telegram.ChatTypeChannel}.IsChannel())
	assert.False(t, telegram.Chat{Type: telegram.ChatTypeChannel}.IsPrivate())
}
