package monitor

import (
	"context"
	"encoding/json"
	"strconv"
)

// RawEntry is one record of a source ranking list, exactly as decoded.
type RawEntry = map[string]any

// Rank is an entry's position on the board. An absent rank is rendered as "N/A".
type Rank struct {
	Value int
	Valid bool
}

// NewRank returns a present rank.
func NewRank(v int) Rank {
	return Rank{Value: v, Valid: true}
}

// String returns the rank number or "N/A".
func (r Rank) String() string {
	if !r.Valid {
		return NotAvailable
	}
	return strconv.Itoa(r.Value)
}

// MarshalJSON encodes the rank as a number, or the "N/A" sentinel string.
func (r Rank) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return json.Marshal(NotAvailable)
	}
	return []byte(strconv.Itoa(r.Value)), nil
}

// TrendingEntry is the simplified projection of one ranked item.
type TrendingEntry struct {
	Rank        Rank        `json:"rank"`
	Keyword     string      `json:"keyword"`
	Description string      `json:"description"`
	Score       json.Number `json:"score"`
	Change      any         `json:"change,omitempty"`
}

// Monitor is the interface for trending board sources.
type Monitor interface {
	// Name returns the name of this monitor source.
	Name() string

	// FetchTrends retrieves the current untruncated entry list from the source.
	FetchTrends(ctx context.Context) ([]RawEntry, error)
}
