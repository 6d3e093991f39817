package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// RecordConsent appends a consent decision for a user.
func (s *Service) RecordConsent(ctx context.Context, input ConsentInput) (*domain.ConsentLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	given := true
	if input.Given != nil {
		given = *input.Given
	}

	entry := domain.ConsentLog{
		ID:          uuid.New(),
		UserID:      uuid.MustParse(input.UserID),
		ConsentText: input.ConsentText,
		Given:       given,
		CreatedAt:   s.now(),
	}

	if err := s.consents.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("ingest.RecordConsent: %w", err)
	}

	s.log.InfoContext(ctx, "consent recorded",
		slog.String("user_id", entry.UserID.String()),
		slog.Bool("given", entry.Given),
	)

	s.announce(ctx, domain.TelemetryEvent{
		Signal:     domain.SignalConsent,
		UserID:     entry.UserID,
		IDs:        []uuid.UUID{entry.ID},
		Count:      1,
		OccurredAt: entry.CreatedAt,
	})

	return &entry, nil
}
