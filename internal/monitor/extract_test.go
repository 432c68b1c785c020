package monitor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestExtract(t *testing.T) {
	t.Run("returns the content list", func(t *testing.T) {
		entries, err := Extract(decode(t, sampleBoard))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "天气预报", entries[0]["word"])
		assert.Equal(t, "股市", entries[1]["word"])
	})

	t.Run("empty content is not an error", func(t *testing.T) {
		entries, err := Extract(decode(t, `{"data": {"cards": [{"content": []}]}}`))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	shapeCases := []struct {
		name string
		body string
	}{
		{"not an object", `[1, 2, 3]`},
		{"scalar body", `"hello"`},
		{"null body", `null`},
		{"missing data", `{"success": false}`},
		{"data wrong type", `{"data": "oops"}`},
		{"missing cards", `{"data": {}}`},
		{"cards wrong type", `{"data": {"cards": {"content": []}}}`},
		{"empty cards", `{"data": {"cards": []}}`},
		{"first card wrong type", `{"data": {"cards": ["x"]}}`},
		{"missing content", `{"data": {"cards": [{}]}}`},
		{"content wrong type", `{"data": {"cards": [{"content": "x"}]}}`},
		{"content item wrong type", `{"data": {"cards": [{"content": [1]}]}}`},
	}

	for _, tc := range shapeCases {
		t.Run(tc.name, func(t *testing.T) {
			var entries []RawEntry
			var err error
			assert.NotPanics(t, func() {
				entries, err = Extract(decode(t, tc.body))
			})
			assert.Nil(t, entries)
			assert.ErrorIs(t, err, ErrShape)
			assert.Contains(t, err.Error(), "unexpected data format or no data")
		})
	}

	t.Run("nil body", func(t *testing.T) {
		_, err := Extract(nil)
		assert.ErrorIs(t, err, ErrShape)
	})
}
