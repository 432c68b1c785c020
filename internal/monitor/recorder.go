package monitor

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulachik/hotboard/internal/db"
	"github.com/google/uuid"
)

// Recorder archives fetched board snapshots in the database.
type Recorder struct {
	store *db.Store
}

// RecorderConfig holds recorder configuration.
type RecorderConfig struct {
	Store *db.Store
}

// NewRecorder creates a new recorder.
func NewRecorder(cfg RecorderConfig) *Recorder {
	return &Recorder{store: cfg.Store}
}

// Record stores one snapshot holding every entry of raw, untruncated and in
// source order, and returns the snapshot ID.
func (r *Recorder) Record(ctx context.Context, source string, raw []RawEntry, capturedAt time.Time) (string, error) {
	id := uuid.NewString()

	err := r.store.InTx(ctx, func(q *db.Queries) error {
		if err := q.CreateSnapshot(ctx, db.CreateSnapshotParams{
			ID:         id,
			Source:     source,
			CapturedAt: capturedAt,
			EntryCount: int64(len(raw)),
		}); err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}

		projected := ProjectN(raw, len(raw))
		for i, entry := range projected {
			params, err := snapshotEntryParams(id, source, i, entry, raw[i])
			if err != nil {
				return err
			}
			if err := q.CreateSnapshotEntry(ctx, params); err != nil {
				return fmt.Errorf("create snapshot entry %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	slog.Info("snapshot archived",
		"id", id,
		"source", source,
		"entries", len(raw),
	)
	return id, nil
}

func snapshotEntryParams(snapshotID, source string, position int, entry TrendingEntry, raw RawEntry) (db.CreateSnapshotEntryParams, error) {
	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return db.CreateSnapshotEntryParams{}, fmt.Errorf("encode entry %d: %w", position, err)
	}

	score, _ := entry.Score.Float64()

	return db.CreateSnapshotEntryParams{
		SnapshotID:  snapshotID,
		Position:    int64(position),
		Rank:        sql.NullInt64{Int64: int64(entry.Rank.Value), Valid: entry.Rank.Valid},
		Keyword:     entry.Keyword,
		Description: entry.Description,
		Score:       score,
		EntryHash:   HashEntry(source, entry),
		RawJson:     string(rawJSON),
	}, nil
}

// HashEntry generates a stable identity hash for an entry (used to spot the
// same topic across snapshots).
func HashEntry(source string, entry TrendingEntry) string {
	data := fmt.Sprintf("%s:%s", source, entry.Keyword)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:16])
}
