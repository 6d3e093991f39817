package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// ReportLocation appends a device position for a user.
func (s *Service) ReportLocation(ctx context.Context, input LocationInput) (*domain.DeviceLocation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	loc := domain.DeviceLocation{
		ID:        uuid.New(),
		UserID:    uuid.MustParse(input.UserID),
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Accuracy:  input.Accuracy,
		CreatedAt: s.now(),
	}
	if input.IP != "" {
		ip := input.IP
		loc.IP = &ip
	}

	if err := s.locations.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("ingest.ReportLocation: %w", err)
	}

	s.log.DebugContext(ctx, "location reported", "user_id", loc.UserID)

	s.announce(ctx, domain.TelemetryEvent{
		Signal:     domain.SignalLocation,
		UserID:     loc.UserID,
		IDs:        []uuid.UUID{loc.ID},
		Count:      1,
		OccurredAt: loc.CreatedAt,
	})

	return &loc, nil
}
