package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// ReportCalls appends a batch of call-log entries in one statement and
// returns the number of rows inserted. Every row of a batch shares one
// creation time. An empty batch returns 0 without touching the store.
func (s *Service) ReportCalls(ctx context.Context, input CallsInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	if len(input.Calls) == 0 {
		return 0, nil
	}

	userID := uuid.MustParse(input.UserID)
	now := s.now()

	entries := make([]domain.CallLogEntry, 0, len(input.Calls))
	ids := make([]uuid.UUID, 0, len(input.Calls))
	for _, c := range input.Calls {
		e := domain.CallLogEntry{
			ID:              uuid.New(),
			UserID:          userID,
			Number:          c.Number,
			Direction:       c.Direction,
			StartedAt:       c.StartedAt,
			DurationSeconds: c.DurationSeconds,
			CreatedAt:       now,
		}
		entries = append(entries, e)
		ids = append(ids, e.ID)
	}

	inserted, err := s.calls.CreateBatch(ctx, entries)
	if err != nil {
		return 0, fmt.Errorf("ingest.ReportCalls: %w", err)
	}

	s.log.InfoContext(ctx, "calls reported",
		slog.String("user_id", userID.String()),
		slog.Int("inserted", inserted),
	)

	s.announce(ctx, domain.TelemetryEvent{
		Signal:     domain.SignalCalls,
		UserID:     userID,
		IDs:        ids,
		Count:      inserted,
		OccurredAt: now,
	})

	return inserted, nil
}
