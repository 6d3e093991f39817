package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func ptr[T any](v T) *T { return &v }

// SeedUser inserts a user with a unique username and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Username:  ptr("user-" + uniqueSuffix()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Phone, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedLocation inserts a device location for userID at the given creation time.
func SeedLocation(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, lat, lng float64, at time.Time) domain.DeviceLocation {
	t.Helper()

	loc := domain.DeviceLocation{
		ID:        uuid.New(),
		UserID:    userID,
		Latitude:  lat,
		Longitude: lng,
		CreatedAt: at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO device_locations (id, user_id, latitude, longitude, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		loc.ID, loc.UserID, loc.Latitude, loc.Longitude, loc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLocation insert: %v", err)
	}

	return loc
}

// SeedIPLocation inserts an IP lookup row for userID at the given creation time.
func SeedIPLocation(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, ip string, at time.Time) domain.IPLocation {
	t.Helper()

	rec := domain.IPLocation{
		ID:        uuid.New(),
		UserID:    userID,
		IP:        ip,
		CreatedAt: at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO ip_locations (id, user_id, ip, created_at)
		 VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.UserID, rec.IP, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIPLocation insert: %v", err)
	}

	return rec
}

// SeedCall inserts one call log row for userID. A nil startedAt stores NULL.
func SeedCall(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, number string, startedAt *time.Time) domain.CallLogEntry {
	t.Helper()

	entry := domain.CallLogEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Number:    ptr(number),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if startedAt != nil {
		entry.StartedAt = ptr(startedAt.UTC().Truncate(time.Microsecond))
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO call_logs (id, user_id, number, started_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.UserID, entry.Number, entry.StartedAt, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCall insert: %v", err)
	}

	return entry
}
