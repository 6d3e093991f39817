// Package consent implements the append-only consent log repository.
package consent

import (
	"context"
	"fmt"

	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// Repo appends consent events. It has no update or delete operations.
type Repo struct {
	db postgres.Querier
}

// New creates a new consent repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts one consent event.
func (r *Repo) Create(ctx context.Context, c domain.ConsentLog) error {
	query, args, err := postgres.Builder.
		Insert("consent_logs").
		Columns("id", "user_id", "consent_text", "given", "created_at").
		Values(c.ID, c.UserID, c.ConsentText, c.Given, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert consent: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "consent_log", c.UserID)
	}
	return nil
}
