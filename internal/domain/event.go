package domain

import (
	"time"

	"github.com/google/uuid"
)

// TelemetryEvent announces that a signal was persisted.
// IDs lists the rows written; for call batches it may hold many.
type TelemetryEvent struct {
	Signal     Signal
	UserID     uuid.UUID
	IDs        []uuid.UUID
	Count      int
	OccurredAt time.Time
}
