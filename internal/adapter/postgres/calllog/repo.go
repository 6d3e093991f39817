// Package calllog implements the call log repository.
package calllog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

const table = "call_logs"

var columns = []string{"id", "user_id", "number", "direction", "started_at", "duration_seconds", "created_at"}

// Repo appends call log batches and reads recent calls.
type Repo struct {
	db postgres.Querier
}

// New creates a new call log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateBatch inserts all entries with a single multi-row INSERT, so either every
// row lands or none does. It returns the number of rows inserted. An empty batch
// is a no-op that returns 0.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.CallLogEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	b := postgres.Builder.Insert(table).Columns(columns...)
	for _, e := range entries {
		b = b.Values(e.ID, e.UserID, e.Number, e.Direction, e.StartedAt, e.DurationSeconds, e.CreatedAt)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert calls: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "call_log", entries[0].UserID)
	}

	if n := tag.RowsAffected(); n != int64(len(entries)) {
		return 0, fmt.Errorf("call_log %s: inserted %d rows, want %d", entries[0].UserID, n, len(entries))
	}
	return len(entries), nil
}

// Recent returns up to limit calls of userID ordered by the call's own start time,
// newest first. Calls without a start time sort last.
func (r *Repo) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CallLogEntry, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("started_at DESC NULLS LAST", "created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent calls: %w", err)
	}

	var rows []callRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "call_log", userID)
	}

	calls := make([]domain.CallLogEntry, len(rows))
	for i, row := range rows {
		calls[i] = row.toDomain()
	}
	return calls, nil
}

type callRow struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	Number          *string    `db:"number"`
	Direction       *string    `db:"direction"`
	StartedAt       *time.Time `db:"started_at"`
	DurationSeconds *int64     `db:"duration_seconds"`
	CreatedAt       time.Time  `db:"created_at"`
}

func (r callRow) toDomain() domain.CallLogEntry {
	e := domain.CallLogEntry{
		ID:              r.ID,
		UserID:          r.UserID,
		Number:          r.Number,
		Direction:       r.Direction,
		DurationSeconds: r.DurationSeconds,
		CreatedAt:       r.CreatedAt.UTC(),
	}
	if r.StartedAt != nil {
		t := r.StartedAt.UTC()
		e.StartedAt = &t
	}
	return e
}
