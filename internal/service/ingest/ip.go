package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
	"github.com/heartmarshall/telemetry-backend/internal/provider"
)

// ReportIP geolocates input.IP and appends the result for the user.
// A lookup failure stores nothing. A lookup that knows nothing about the
// address still stores a row with every geo field nil.
func (s *Service) ReportIP(ctx context.Context, input IPReportInput) (*domain.IPLocation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.IP == "" {
		return nil, fmt.Errorf("ingest.ReportIP: %w", errNoClientIP)
	}

	geo, err := s.geo.Lookup(ctx, input.IP)
	if err != nil {
		return nil, fmt.Errorf("ingest.ReportIP: lookup: %w", err)
	}
	if geo == nil || geo.IsEmpty() {
		s.log.InfoContext(ctx, "geo lookup returned no data", slog.String("ip", input.IP))
	}

	loc := toIPLocation(uuid.MustParse(input.UserID), input.IP, geo)
	loc.ID = uuid.New()
	loc.CreatedAt = s.now()

	if err := s.ips.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("ingest.ReportIP: %w", err)
	}

	s.announce(ctx, domain.TelemetryEvent{
		Signal:     domain.SignalIP,
		UserID:     loc.UserID,
		IDs:        []uuid.UUID{loc.ID},
		Count:      1,
		OccurredAt: loc.CreatedAt,
	})

	return &loc, nil
}

// toIPLocation maps a lookup result onto a row. Provider carries the
// network operator reported for the address (e.g. "AS15169 Google LLC").
func toIPLocation(userID uuid.UUID, ip string, geo *provider.GeoResult) domain.IPLocation {
	loc := domain.IPLocation{
		UserID: userID,
		IP:     ip,
	}
	if geo == nil {
		return loc
	}
	loc.City = geo.City
	loc.Region = geo.Region
	loc.Country = geo.Country
	loc.Loc = geo.Loc
	loc.Provider = geo.Org
	return loc
}
