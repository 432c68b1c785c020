package monitor

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"time"
)

const (
	baiduBoardURL     = "https://top.baidu.com/api/board?tab=realtime"
	baiduReferer      = "https://top.baidu.com/board"
	baiduUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	baiduAccept       = "application/json, text/plain, */*"
	baiduTimeout      = 10 * time.Second
	bodyPreviewLength = 200
)

// DefaultHeaders returns the static header set sent with every board request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent": baiduUserAgent,
		"Referer":    baiduReferer,
		"Accept":     baiduAccept,
	}
}

var _ Monitor = (*BaiduMonitor)(nil)

// BaiduMonitor fetches the Baidu realtime hot-search board.
type BaiduMonitor struct {
	httpClient *http.Client
	url        string
	headers    map[string]string
	limit      int
}

// BaiduConfig holds configuration for the Baidu monitor.
type BaiduConfig struct {
	URL     string
	Headers map[string]string
	Timeout time.Duration
	// Limit is the projection size used by Top.
	Limit int
}

// NewBaiduMonitor creates a new Baidu board monitor.
func NewBaiduMonitor(cfg BaiduConfig) *BaiduMonitor {
	url := cfg.URL
	if url == "" {
		url = baiduBoardURL
	}

	headers := DefaultHeaders()
	maps.Copy(headers, cfg.Headers)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = baiduTimeout
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &BaiduMonitor{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:     url,
		headers: headers,
		limit:   limit,
	}
}

// Name returns the monitor name.
func (b *BaiduMonitor) Name() string {
	return "baidu"
}

// URL returns the board endpoint.
func (b *BaiduMonitor) URL() string {
	return b.url
}

// Fetch sends one GET to the board endpoint and decodes the JSON body.
// There are no retries.
func (b *BaiduMonitor) Fetch(ctx context.Context) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, &FetchError{Kind: ErrUnexpected, Err: err}
	}
	for key, val := range b.headers {
		req.Header.Set(key, val)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: ErrRequest, Err: err}
	}
	defer resp.Body.Close()

	slog.Info("board response received", "source", b.Name(), "status", resp.StatusCode)
	slog.Debug("board response headers", "source", b.Name(), "headers", resp.Header)

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4*bodyPreviewLength))
		slog.Debug("board response body", "source", b.Name(), "preview", truncate(string(snippet), bodyPreviewLength))
		return nil, &FetchError{Kind: ErrStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: ErrRequest, Err: err}
	}
	slog.Debug("board response body", "source", b.Name(), "preview", truncate(string(body), bodyPreviewLength))

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &FetchError{Kind: ErrDecode, Err: err}
	}

	return parsed, nil
}

// FetchTrends fetches the board and extracts the untruncated entry list.
func (b *BaiduMonitor) FetchTrends(ctx context.Context) ([]RawEntry, error) {
	body, err := b.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := Extract(body)
	if err != nil {
		return nil, err
	}

	slog.Debug("fetched board entries", "source", b.Name(), "count", len(entries))
	return entries, nil
}

// Top projects the first entries up to the monitor's limit.
func (b *BaiduMonitor) Top(entries []RawEntry) []TrendingEntry {
	return ProjectN(entries, b.limit)
}

// TopStrict is Top with required-field checking.
func (b *BaiduMonitor) TopStrict(entries []RawEntry) ([]TrendingEntry, error) {
	return ProjectStrictN(entries, b.limit)
}

// truncate shortens s to at most maxLen runes, adding an ellipsis if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
