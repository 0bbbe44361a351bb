package telegram_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VladPetriv/telegram"
)

func TestEither_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("held value is emitted flat, without a wrapper", func(t *testing.T) {
		t.Parallel()

		file := telegram.InputFile{FileID: "abc"}

		wrapped, err := json.Marshal(telegram.EitherLeft[telegram.InputFile, string](file))
		require.NoError(t, err)

		plain, err := json.Marshal(file)
		require.NoError(t, err)

		assert.Equal(t, plain, wrapped)
	})

	t.Run("right value is emitted flat as well", func(t *testing.T) {
		t.Parallel()

		actual, err := json.Marshal(telegram.EitherRight[telegram.InputFile, string]("hello"))
		require.NoError(t, err)
		assert.Equal(t, `"hello"`, string(actual))
	})

	t.Run("empty either cannot be marshaled", func(t *testing.T) {
		t.Parallel()

		var e telegram.Either[int, string]

		_, err := json.Marshal(e)
		require.Error(t, err)
	})
}

func TestEither_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("first candidate wins when both would match", func(t *testing.T) {
		t.Parallel()

		// Any JSON string satisfies both InputFile and string, so the
		// earlier shape must be selected.
		var e telegram.FileOrString
		require.NoError(t, json.Unmarshal([]byte(`"file-id"`), &e))

		file, ok := e.Left()
		require.True(t, ok)
		assert.Equal(t, "file-id", file.FileID)

		_, ok = e.Right()
		assert.False(t, ok)
	})

	t.Run("second candidate is tried after the first fails", func(t *testing.T) {
		t.Parallel()

		var e telegram.Either[int, string]
		require.NoError(t, json.Unmarshal([]byte(`"abc"`), &e))

		s, ok := e.Right()
		require.True(t, ok)
		assert.Equal(t, "abc", s)
	})

	t.Run("no candidate matching yields a decode error", func(t *testing.T) {
		t.Parallel()

		var e telegram.Either[int, bool]
		err := json.Unmarshal([]byte(`"abc"`), &e)
		require.Error(t, err)
		assert.True(t, telegram.IsDecodeError(err))

		var decodeErr *telegram.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "Either[int, bool]", decodeErr.Union)
		assert.Equal(t, []string{"int", "bool"}, decodeErr.Candidates)
	})

	t.Run("decoding replaces the previously held value", func(t *testing.T) {
		t.Parallel()

		e := telegram.EitherRight[int, string]("old")
		require.NoError(t, json.Unmarshal([]byte(`42`), &e))

		n, ok := e.Left()
		require.True(t, ok)
		assert.Equal(t, 42, n)

		_, ok = e.Right()
		assert.False(t, ok)
	})
}

func TestInputFile_WireForms(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc string
		file telegram.InputFile
		wire string
	}{
		{
			desc: "file id",
			file: telegram.InputFile{FileID: "BAAC-123"},
			wire: `"BAAC-123"`,
		},
		{
			desc: "http url",
			file: telegram.InputFile{URL: "https://example.com/cat.png"},
			wire: `"https://example.com/cat.png"`,
		},
		{
			desc: "upload attachment",
			file: telegram.InputFile{Name: "report"},
			wire: `"attach://report"`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			encoded, err := json.Marshal(tc.file)
			require.NoError(t, err)
			assert.Equal(t, tc.wire, string(encoded))

			var decoded telegram.InputFile
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.Equal(t, tc.file, decoded)
		})
	}
}
