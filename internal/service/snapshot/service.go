// Package snapshot builds the admin view of recent users and their latest
// telemetry.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxUsers caps the number of users in one listing, newest first.
	MaxUsers = 200
	// MaxCalls caps the call-log entries returned per user.
	MaxCalls = 10

	defaultConcurrency = 4
)

type userLister interface {
	ListRecent(ctx context.Context, limit int) ([]domain.User, error)
}

type locationReader interface {
	Latest(ctx context.Context, userID uuid.UUID) (*domain.DeviceLocation, error)
}

type ipLocationReader interface {
	Latest(ctx context.Context, userID uuid.UUID) (*domain.IPLocation, error)
}

type callLogReader interface {
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CallLogEntry, error)
}

// Service assembles per-user snapshots.
type Service struct {
	log         *slog.Logger
	users       userLister
	locations   locationReader
	ips         ipLocationReader
	calls       callLogReader
	concurrency int
}

// NewService creates a new snapshot service. concurrency bounds how many
// users are assembled at once; values below 1 fall back to 4.
func NewService(
	logger *slog.Logger,
	users userLister,
	locations locationReader,
	ips ipLocationReader,
	calls callLogReader,
	concurrency int,
) *Service {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Service{
		log:         logger.With("service", "snapshot"),
		users:       users,
		locations:   locations,
		ips:         ips,
		calls:       calls,
		concurrency: concurrency,
	}
}

// ListSnapshots returns the most recently created users with their latest
// location, latest IP location and most recent calls. Result order follows
// user creation time, newest first. The first failing query aborts the
// listing. Reads are not isolated from concurrent ingestion.
func (s *Service) ListSnapshots(ctx context.Context) ([]domain.UserSnapshot, error) {
	users, err := s.users.ListRecent(ctx, MaxUsers)
	if err != nil {
		return nil, fmt.Errorf("snapshot.ListSnapshots: list users: %w", err)
	}

	out := make([]domain.UserSnapshot, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, u := range users {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			snap, err := s.assemble(gctx, u)
			if err != nil {
				return err
			}
			out[i] = snap
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("snapshot.ListSnapshots: %w", err)
	}

	s.log.DebugContext(ctx, "snapshots assembled", slog.Int("users", len(out)))
	return out, nil
}

func (s *Service) assemble(ctx context.Context, u domain.User) (domain.UserSnapshot, error) {
	snap := domain.UserSnapshot{User: u}

	loc, err := s.locations.Latest(ctx, u.ID)
	if err != nil {
		return snap, fmt.Errorf("latest location for %s: %w", u.ID, err)
	}
	snap.LastLocation = loc

	ip, err := s.ips.Latest(ctx, u.ID)
	if err != nil {
		return snap, fmt.Errorf("latest ip for %s: %w", u.ID, err)
	}
	snap.LastIP = ip

	calls, err := s.calls.Recent(ctx, u.ID, MaxCalls)
	if err != nil {
		return snap, fmt.Errorf("recent calls for %s: %w", u.ID, err)
	}
	if calls == nil {
		calls = []domain.CallLogEntry{}
	}
	snap.Calls = calls

	return snap, nil
}
