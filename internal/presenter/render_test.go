package presenter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abdulachik/hotboard/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []monitor.TrendingEntry {
	return monitor.Project([]monitor.RawEntry{
		{"index": float64(1), "word": "测试", "desc": "", "hotScore": float64(500), "hotChange": "up"},
		{"word": "<b>天气</b>", "desc": "今天 & 明天"},
	})
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleEntries()))
	out := buf.String()

	t.Run("writes non-ascii literally", func(t *testing.T) {
		assert.Contains(t, out, "测试")
		assert.Contains(t, out, monitor.NoDescription)
		assert.NotContains(t, out, `\u`)
	})

	t.Run("does not escape html", func(t *testing.T) {
		assert.Contains(t, out, "<b>天气</b>")
		assert.Contains(t, out, "今天 & 明天")
	})

	t.Run("indents with four spaces", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(out, "[\n    {\n        \"rank\": 1,"), out)
	})

	t.Run("is valid json", func(t *testing.T) {
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "N/A", decoded[1]["rank"])
		assert.Equal(t, float64(500), decoded[0]["score"])
	})
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, sampleEntries())
	out := buf.String()

	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "KEYWORD")
	assert.Contains(t, out, "测试")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "up")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"TABLE", FormatTable, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "一二三…", clip("一二三四五六", 4))
	assert.Equal(t, "ab…", clip("ab cdef", 4))
}
