package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBoard = `{
  "data": {
    "cards": [
      {
        "content": [
          {"index": 0, "word": "天气预报", "desc": "明日降温", "hotScore": "4999999", "hotChange": "same"},
          {"index": 1, "word": "股市", "desc": "", "hotScore": 4800000, "hotChange": "up"}
        ]
      }
    ]
  },
  "success": true
}`

func TestNewBaiduMonitor(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		m := NewBaiduMonitor(BaiduConfig{})
		assert.Equal(t, baiduBoardURL, m.url)
		assert.Equal(t, baiduTimeout, m.httpClient.Timeout)
		assert.Equal(t, DefaultLimit, m.limit)
		assert.Equal(t, baiduReferer, m.headers["Referer"])
		assert.Equal(t, baiduAccept, m.headers["Accept"])
		assert.Equal(t, baiduUserAgent, m.headers["User-Agent"])
	})

	t.Run("uses custom values", func(t *testing.T) {
		m := NewBaiduMonitor(BaiduConfig{
			URL:     "http://localhost/board",
			Timeout: time.Second,
			Limit:   3,
			Headers: map[string]string{"Referer": "http://localhost"},
		})
		assert.Equal(t, "http://localhost/board", m.URL())
		assert.Equal(t, time.Second, m.httpClient.Timeout)
		assert.Equal(t, 3, m.limit)
		assert.Equal(t, "http://localhost", m.headers["Referer"])
		assert.Equal(t, baiduAccept, m.headers["Accept"])
	})

	t.Run("does not share default headers", func(t *testing.T) {
		m := NewBaiduMonitor(BaiduConfig{Headers: map[string]string{"Accept": "text/plain"}})
		assert.Equal(t, "text/plain", m.headers["Accept"])
		assert.Equal(t, baiduAccept, DefaultHeaders()["Accept"])
	})
}

func TestBaiduMonitor_Name(t *testing.T) {
	m := NewBaiduMonitor(BaiduConfig{})
	assert.Equal(t, "baidu", m.Name())
}

func TestBaiduMonitor_Fetch(t *testing.T) {
	t.Run("sends fixed headers and decodes body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "realtime", r.URL.Query().Get("tab"))
			assert.Equal(t, baiduUserAgent, r.Header.Get("User-Agent"))
			assert.Equal(t, baiduReferer, r.Header.Get("Referer"))
			assert.Equal(t, baiduAccept, r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(sampleBoard))
		}))
		defer server.Close()

		m := NewBaiduMonitor(BaiduConfig{URL: server.URL + "/api/board?tab=realtime"})
		body, err := m.Fetch(context.Background())
		require.NoError(t, err)

		root, ok := body.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, root["success"])
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("not json at all"))
		}))
		defer server.Close()

		m := NewBaiduMonitor(BaiduConfig{URL: server.URL})
		_, err := m.Fetch(context.Background())
		require.Error(t, err)

		assert.Contains(t, err.Error(), "503")
		assert.Equal(t, "status code 503", err.Error())
		assert.ErrorIs(t, err, ErrStatus)
		assert.NotErrorIs(t, err, ErrDecode)

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": [`))
		}))
		defer server.Close()

		m := NewBaiduMonitor(BaiduConfig{URL: server.URL})
		_, err := m.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecode)
		assert.True(t, strings.HasPrefix(err.Error(), "decode failure: "))
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		m := NewBaiduMonitor(BaiduConfig{URL: url})
		_, err := m.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRequest)
		assert.True(t, strings.HasPrefix(err.Error(), "request failed: "))
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		m := NewBaiduMonitor(BaiduConfig{URL: server.URL, Timeout: 50 * time.Millisecond})
		_, err := m.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRequest)
	})

	t.Run("invalid URL", func(t *testing.T) {
		m := NewBaiduMonitor(BaiduConfig{URL: "http://[::1]:namedport"})
		_, err := m.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpected)
		assert.True(t, strings.HasPrefix(err.Error(), "unexpected: "))
	})
}

func TestBaiduMonitor_FetchTrends(t *testing.T) {
	t.Run("extracts entries", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(sampleBoard))
		}))
		defer server.Close()

		m := NewBaiduMonitor(BaiduConfig{URL: server.URL})
		entries, err := m.FetchTrends(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "天气预报", entries[0]["word"])

		top := m.Top(entries)
		require.Len(t, top, 2)
		assert.Equal(t, NewRank(0), top[0].Rank)
		assert.Equal(t, "4999999", top[0].Score.String())
		assert.Equal(t, NoDescription, top[1].Description)
	})

	t.Run("shape error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {"cards": []}}`))
		}))
		defer server.Close()

		m := NewBaiduMonitor(BaiduConfig{URL: server.URL})
		_, err := m.FetchTrends(context.Background())
		assert.ErrorIs(t, err, ErrShape)
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10c", 10, "exactly10c"},
		{"this is a longer string", 10, "this is..."},
		{"百度热搜实时榜单数据", 6, "百度热..."},
		{"", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.input, tt.maxLen))
		})
	}
}
