package consent_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres/consent"
	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

func TestRepo_Create_SQL(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	c := domain.ConsentLog{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ConsentText: "I agree to location tracking",
		Given:       true,
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO consent_logs \(id,user_id,consent_text,given,created_at\)`).
		WithArgs(c.ID, c.UserID, c.ConsentText, true, c.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, consent.New(mock).Create(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create_AppendsRows(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := consent.New(pool)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	for _, given := range []bool{true, false} {
		err := repo.Create(ctx, domain.ConsentLog{
			ID:          uuid.New(),
			UserID:      u.ID,
			ConsentText: "terms v1",
			Given:       given,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM consent_logs WHERE user_id = $1`, u.ID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("consent rows = %d, want 2", count)
	}
}

func TestRepo_Create_UnknownUser(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)

	err := consent.New(pool).Create(context.Background(), domain.ConsentLog{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ConsentText: "terms v1",
		Given:       true,
		CreatedAt:   time.Now().UTC(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Create for unknown user: got %v, want ErrNotFound", err)
	}
}
