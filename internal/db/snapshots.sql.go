package db

import (
	"context"
	"database/sql"
	"time"
)

const countSnapshotEntries = `-- name: CountSnapshotEntries :one
SELECT COUNT(*) FROM snapshot_entries
`

func (q *Queries) CountSnapshotEntries(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSnapshotEntries)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countSnapshots = `-- name: CountSnapshots :one
SELECT COUNT(*) FROM snapshots
`

func (q *Queries) CountSnapshots(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSnapshots)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createSnapshot = `-- name: CreateSnapshot :exec
INSERT INTO snapshots (id, source, captured_at, entry_count)
VALUES (?, ?, ?, ?)
`

type CreateSnapshotParams struct {
	ID         string
	Source     string
	CapturedAt time.Time
	EntryCount int64
}

func (q *Queries) CreateSnapshot(ctx context.Context, arg CreateSnapshotParams) error {
	_, err := q.db.ExecContext(ctx, createSnapshot,
		arg.ID,
		arg.Source,
		arg.CapturedAt,
		arg.EntryCount,
	)
	return err
}

const createSnapshotEntry = `-- name: CreateSnapshotEntry :exec
INSERT INTO snapshot_entries (snapshot_id, position, rank, keyword, description, score, entry_hash, raw_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateSnapshotEntryParams struct {
	SnapshotID  string
	Position    int64
	Rank        sql.NullInt64
	Keyword     string
	Description string
	Score       float64
	EntryHash   string
	RawJson     string
}

func (q *Queries) CreateSnapshotEntry(ctx context.Context, arg CreateSnapshotEntryParams) error {
	_, err := q.db.ExecContext(ctx, createSnapshotEntry,
		arg.SnapshotID,
		arg.Position,
		arg.Rank,
		arg.Keyword,
		arg.Description,
		arg.Score,
		arg.EntryHash,
		arg.RawJson,
	)
	return err
}

const getSnapshot = `-- name: GetSnapshot :one
SELECT id, source, captured_at, entry_count, created_at FROM snapshots
WHERE id = ?
`

func (q *Queries) GetSnapshot(ctx context.Context, id string) (*Snapshot, error) {
	row := q.db.QueryRowContext(ctx, getSnapshot, id)
	var i Snapshot
	err := row.Scan(
		&i.ID,
		&i.Source,
		&i.CapturedAt,
		&i.EntryCount,
		&i.CreatedAt,
	)
	return &i, err
}

const listSnapshotEntries = `-- name: ListSnapshotEntries :many
SELECT id, snapshot_id, position, rank, keyword, description, score, entry_hash, raw_json FROM snapshot_entries
WHERE snapshot_id = ?
ORDER BY position
`

func (q *Queries) ListSnapshotEntries(ctx context.Context, snapshotID string) ([]*SnapshotEntry, error) {
	rows, err := q.db.QueryContext(ctx, listSnapshotEntries, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*SnapshotEntry{}
	for rows.Next() {
		var i SnapshotEntry
		if err := rows.Scan(
			&i.ID,
			&i.SnapshotID,
			&i.Position,
			&i.Rank,
			&i.Keyword,
			&i.Description,
			&i.Score,
			&i.EntryHash,
			&i.RawJson,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listSnapshots = `-- name: ListSnapshots :many
SELECT id, source, captured_at, entry_count, created_at FROM snapshots
ORDER BY captured_at DESC, created_at DESC
LIMIT ?
`

func (q *Queries) ListSnapshots(ctx context.Context, limit int64) ([]*Snapshot, error) {
	rows, err := q.db.QueryContext(ctx, listSnapshots, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Snapshot{}
	for rows.Next() {
		var i Snapshot
		if err := rows.Scan(
			&i.ID,
			&i.Source,
			&i.CapturedAt,
			&i.EntryCount,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const topKeywords = `-- name: TopKeywords :many
SELECT keyword, COUNT(*) AS appearances, MIN(rank) AS best_rank FROM snapshot_entries
GROUP BY keyword
ORDER BY appearances DESC, best_rank ASC, keyword ASC
LIMIT ?
`

type TopKeywordsRow struct {
	Keyword     string
	Appearances int64
	BestRank    sql.NullInt64
}

func (q *Queries) TopKeywords(ctx context.Context, limit int64) ([]*TopKeywordsRow, error) {
	rows, err := q.db.QueryContext(ctx, topKeywords, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*TopKeywordsRow{}
	for rows.Next() {
		var i TopKeywordsRow
		if err := rows.Scan(&i.Keyword, &i.Appearances, &i.BestRank); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
