// Package location implements the device location time series repository.
package location

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

const table = "device_locations"

var columns = []string{"id", "user_id", "latitude", "longitude", "accuracy", "ip", "created_at"}

// Repo appends and reads device locations.
type Repo struct {
	db postgres.Querier
}

// New creates a new location repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts one location fix.
func (r *Repo) Create(ctx context.Context, l domain.DeviceLocation) error {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(l.ID, l.UserID, l.Latitude, l.Longitude, l.Accuracy, l.IP, l.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert location: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "device_location", l.UserID)
	}
	return nil
}

// Latest returns the most recently ingested location of userID, or nil if none exists.
func (r *Repo) Latest(ctx context.Context, userID uuid.UUID) (*domain.DeviceLocation, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest location: %w", err)
	}

	var row locationRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "device_location", userID)
	}

	l := row.toDomain()
	return &l, nil
}

type locationRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	Accuracy  *float64  `db:"accuracy"`
	IP        *string   `db:"ip"`
	CreatedAt time.Time `db:"created_at"`
}

func (r locationRow) toDomain() domain.DeviceLocation {
	return domain.DeviceLocation{
		ID:        r.ID,
		UserID:    r.UserID,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Accuracy:  r.Accuracy,
		IP:        r.IP,
		CreatedAt: r.CreatedAt.UTC(),
	}
}
