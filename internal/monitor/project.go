package monitor

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the number of entries kept by a projection.
	DefaultLimit = 10

	// NotAvailable stands in for an absent rank or keyword.
	NotAvailable = "N/A"

	// NoDescription stands in for an absent or empty description.
	NoDescription = "没有描述 / 説明なし"
)

// Source field names of a raw board entry.
const (
	fieldIndex  = "index"
	fieldWord   = "word"
	fieldDesc   = "desc"
	fieldScore  = "hotScore"
	fieldChange = "hotChange"
)

// strictFields must all be present for ProjectStrict to accept an entry. An
// explicit null counts as present.
var strictFields = []string{fieldIndex, fieldWord, fieldDesc, fieldScore, fieldChange}

// Project maps the first DefaultLimit entries to TrendingEntry values,
// filling absent fields with defaults. Order is preserved.
func Project(entries []RawEntry) []TrendingEntry {
	return ProjectN(entries, DefaultLimit)
}

// ProjectN is Project with an explicit limit.
func ProjectN(entries []RawEntry, limit int) []TrendingEntry {
	head := headOf(entries, limit)

	result := make([]TrendingEntry, 0, len(head))
	for _, entry := range head {
		result = append(result, projectEntry(entry))
	}
	return result
}

// ProjectStrict is Project, but fails with a *MissingFieldError when an entry
// lacks any of index, word, desc, hotScore or hotChange.
func ProjectStrict(entries []RawEntry) ([]TrendingEntry, error) {
	return ProjectStrictN(entries, DefaultLimit)
}

// ProjectStrictN is ProjectStrict with an explicit limit.
func ProjectStrictN(entries []RawEntry, limit int) ([]TrendingEntry, error) {
	head := headOf(entries, limit)

	result := make([]TrendingEntry, 0, len(head))
	for i, entry := range head {
		for _, field := range strictFields {
			if _, ok := entry[field]; !ok {
				return nil, &MissingFieldError{Position: i, Field: field}
			}
		}
		result = append(result, projectEntry(entry))
	}
	return result, nil
}

func headOf(entries []RawEntry, limit int) []RawEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func projectEntry(entry RawEntry) TrendingEntry {
	projected := TrendingEntry{
		Rank:        Rank{},
		Keyword:     NotAvailable,
		Description: NoDescription,
		Score:       json.Number("0"),
	}

	if n, ok := toInt(entry[fieldIndex]); ok {
		projected.Rank = NewRank(n)
	}
	if word, ok := toText(entry[fieldWord]); ok {
		projected.Keyword = word
	}
	if desc, ok := toText(entry[fieldDesc]); ok && desc != "" {
		projected.Description = desc
	}
	if score, ok := toNumber(entry[fieldScore]); ok {
		projected.Score = score
	}
	if change, ok := entry[fieldChange]; ok && change != nil {
		projected.Change = change
	}

	return projected
}

func toText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	default:
		return fmt.Sprint(t), true
	}
}

func toNumber(v any) (json.Number, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		return json.Number(strconv.FormatFloat(t, 'f', -1, 64)), true
	case int:
		return json.Number(strconv.Itoa(t)), true
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), true
	case json.Number:
		if _, err := t.Float64(); err != nil {
			return "", false
		}
		return t, true
	case string:
		s := strings.TrimSpace(t)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		return toNumber(f)
	default:
		return "", false
	}
}

func toInt(v any) (int, bool) {
	n, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
