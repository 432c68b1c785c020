// Package presenter turns board entries into terminal output and snapshot files.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/abdulachik/hotboard/internal/monitor"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	renderIndent = "    "

	// descriptionWidth caps the description column of RenderTable, in runes.
	descriptionWidth = 40
)

// Format selects how Render output is laid out.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be json or table", s)
	}
}

// Write renders entries in the given format.
func Write(w io.Writer, format Format, entries []monitor.TrendingEntry) error {
	if format == FormatTable {
		RenderTable(w, entries)
		return nil
	}
	return Render(w, entries)
}

// Render writes entries as an indented JSON array. Non-ASCII text is written
// literally.
func Render(w io.Writer, entries []monitor.TrendingEntry) error {
	if entries == nil {
		entries = []monitor.TrendingEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", renderIndent)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("render entries: %w", err)
	}
	return nil
}

// RenderTable writes entries as a text table.
func RenderTable(w io.Writer, entries []monitor.TrendingEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rank", "Keyword", "Score", "Change", "Description"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Rank", Align: text.AlignRight},
		{Name: "Score", Align: text.AlignRight},
	})

	for _, entry := range entries {
		change := ""
		if entry.Change != nil {
			change = fmt.Sprint(entry.Change)
		}
		t.AppendRow(table.Row{
			entry.Rank.String(),
			entry.Keyword,
			entry.Score.String(),
			change,
			clip(entry.Description, descriptionWidth),
		})
	}

	t.Render()
}

// clip shortens s to maxLen runes, adding an ellipsis if clipped.
func clip(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:maxLen-1]), " ") + "…"
}
