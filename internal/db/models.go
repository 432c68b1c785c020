package db

import (
	"database/sql"
	"time"
)

type Snapshot struct {
	ID         string
	Source     string
	CapturedAt time.Time
	EntryCount int64
	CreatedAt  time.Time
}

type SnapshotEntry struct {
	ID          int64
	SnapshotID  string
	Position    int64
	Rank        sql.NullInt64
	Keyword     string
	Description string
	Score       float64
	EntryHash   string
	RawJson     string
}
