package user

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// CreateUserInput holds parameters for registering a new user.
type CreateUserInput struct {
	Username *string
	Phone    *string
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	return nil
}

// UpdateUserInput holds parameters for overwriting an existing user.
// Nil Username or Phone clears the stored value.
type UpdateUserInput struct {
	ID       string
	Username *string
	Phone    *string
}

// Validate validates the update user input.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	} else if _, err := uuid.Parse(i.ID); err != nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a UUID"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
