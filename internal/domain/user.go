package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered device owner. Username and Phone are both optional.
type User struct {
	ID        uuid.UUID
	Username  *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
