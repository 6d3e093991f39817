package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
	"github.com/heartmarshall/telemetry-backend/internal/provider"
)

// MaxCallsPerBatch is the largest call-log batch accepted in one report.
const MaxCallsPerBatch = 1000

var errNoClientIP = errors.New("client address could not be determined")

type consentRepo interface {
	Create(ctx context.Context, c domain.ConsentLog) error
}

type locationRepo interface {
	Create(ctx context.Context, l domain.DeviceLocation) error
}

type callLogRepo interface {
	CreateBatch(ctx context.Context, entries []domain.CallLogEntry) (int, error)
}

type ipLocationRepo interface {
	Create(ctx context.Context, l domain.IPLocation) error
}

type geoLookup interface {
	Lookup(ctx context.Context, ip string) (*provider.GeoResult, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.TelemetryEvent) error
}

// Deps bundles the stores and collaborators of the ingestion service.
// Events may be nil, in which case nothing is published.
type Deps struct {
	Consents  consentRepo
	Locations locationRepo
	Calls     callLogRepo
	IPs       ipLocationRepo
	Geo       geoLookup
	Events    eventPublisher
}

// Service appends telemetry records to the per-signal stores.
type Service struct {
	log       *slog.Logger
	consents  consentRepo
	locations locationRepo
	calls     callLogRepo
	ips       ipLocationRepo
	geo       geoLookup
	events    eventPublisher
	now       func() time.Time
}

// NewService creates a new ingestion service instance.
func NewService(logger *slog.Logger, deps Deps) *Service {
	events := deps.Events
	if events == nil {
		events = noopPublisher{}
	}
	return &Service{
		log:       logger.With("service", "ingest"),
		consents:  deps.Consents,
		locations: deps.Locations,
		calls:     deps.Calls,
		ips:       deps.IPs,
		geo:       deps.Geo,
		events:    events,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// announce publishes ev. A failure is logged and otherwise ignored: the
// record has already been stored.
func (s *Service) announce(ctx context.Context, ev domain.TelemetryEvent) {
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "publish telemetry event",
			slog.String("signal", ev.Signal.String()),
			slog.String("user_id", ev.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.TelemetryEvent) error { return nil }
