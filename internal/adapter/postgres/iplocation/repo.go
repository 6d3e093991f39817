// Package iplocation implements the IP geolocation lookup log repository.
package iplocation

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

const table = "ip_locations"

var columns = []string{"id", "user_id", "ip", "city", "region", "country", "loc", "provider", "created_at"}

// Repo appends and reads IP lookup results.
type Repo struct {
	db postgres.Querier
}

// New creates a new IP location repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts one lookup result.
func (r *Repo) Create(ctx context.Context, l domain.IPLocation) error {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(l.ID, l.UserID, l.IP, l.City, l.Region, l.Country, l.Loc, l.Provider, l.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert ip location: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "ip_location", l.UserID)
	}
	return nil
}

// Latest returns the most recent lookup of userID, or nil if none exists.
func (r *Repo) Latest(ctx context.Context, userID uuid.UUID) (*domain.IPLocation, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest ip location: %w", err)
	}

	var row ipRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "ip_location", userID)
	}

	l := row.toDomain()
	return &l, nil
}

type ipRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	IP        string    `db:"ip"`
	City      *string   `db:"city"`
	Region    *string   `db:"region"`
	Country   *string   `db:"country"`
	Loc       *string   `db:"loc"`
	Provider  *string   `db:"provider"`
	CreatedAt time.Time `db:"created_at"`
}

func (r ipRow) toDomain() domain.IPLocation {
	return domain.IPLocation{
		ID:        r.ID,
		UserID:    r.UserID,
		IP:        r.IP,
		City:      r.City,
		Region:    r.Region,
		Country:   r.Country,
		Loc:       r.Loc,
		Provider:  r.Provider,
		CreatedAt: r.CreatedAt.UTC(),
	}
}
