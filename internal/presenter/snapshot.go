package presenter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abdulachik/hotboard/internal/monitor"
)

// TimestampLayout is the capture timestamp format of persisted snapshots.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrPersist marks failures to write or read a snapshot file.
var ErrPersist = errors.New("persist snapshot")

// Snapshot is the on-disk record of one fetch: the untruncated entry list
// and the local time it was captured.
type Snapshot struct {
	Timestamp string             `json:"timestamp"`
	Hotsearch []monitor.RawEntry `json:"hotsearch"`
}

// CapturedAt parses the snapshot timestamp in local time.
func (s *Snapshot) CapturedAt() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s.Timestamp, time.Local)
}

// Persist writes raw and its capture time to path, replacing any existing
// content. Parent directories are created as needed.
func Persist(path string, raw []monitor.RawEntry, capturedAt time.Time) error {
	if raw == nil {
		raw = []monitor.RawEntry{}
	}

	snapshot := Snapshot{
		Timestamp: capturedAt.In(time.Local).Format(TimestampLayout),
		Hotsearch: raw,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %v", ErrPersist, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Load reads a snapshot written by Persist.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersist, path, err)
	}
	return &snapshot, nil
}
