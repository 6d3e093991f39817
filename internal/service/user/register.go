package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// Create registers a new user with a server-generated id.
func (s *Service) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	u, err := s.users.Create(ctx, domain.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.String("user_id", u.ID.String()))
	return u, nil
}

// Update overwrites username and phone of the user identified by input.ID.
// Concurrent updates are last-write-wins.
func (s *Service) Update(ctx context.Context, input UpdateUserInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}
	id := uuid.MustParse(input.ID)

	if err := s.users.Update(ctx, id, input.Username, input.Phone, s.now()); err != nil {
		return uuid.Nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", id.String()))
	return id, nil
}
