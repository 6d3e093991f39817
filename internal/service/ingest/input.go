package ingest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// ConsentInput holds parameters for recording a consent decision.
// A nil Given is recorded as consent given.
type ConsentInput struct {
	UserID      string
	ConsentText string
	Given       *bool
}

// Validate validates the consent input.
func (i ConsentInput) Validate() error {
	var errs []domain.FieldError
	errs = validateUserID(errs, i.UserID)

	if i.ConsentText == "" {
		errs = append(errs, domain.FieldError{Field: "consent_text", Message: "required"})
	}

	return toError(errs)
}

// LocationInput holds a single device position report.
// IP is the resolved client address, stored when non-empty.
type LocationInput struct {
	UserID    string
	Latitude  *float64
	Longitude *float64
	Accuracy  *float64
	IP        string
}

// Validate validates the location input.
func (i LocationInput) Validate() error {
	var errs []domain.FieldError
	errs = validateUserID(errs, i.UserID)

	switch {
	case i.Latitude == nil:
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "required"})
	case *i.Latitude < -90 || *i.Latitude > 90:
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}

	switch {
	case i.Longitude == nil:
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "required"})
	case *i.Longitude < -180 || *i.Longitude > 180:
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if i.Accuracy != nil && *i.Accuracy < 0 {
		errs = append(errs, domain.FieldError{Field: "accuracy", Message: "must be >= 0"})
	}

	return toError(errs)
}

// CallInput is one call-log entry of a batch. Every field is optional.
type CallInput struct {
	Number          *string
	Direction       *string
	StartedAt       *time.Time
	DurationSeconds *int64
}

// CallsInput holds a call-log batch. A nil Calls means the list was absent;
// a nil element means it was not an object.
type CallsInput struct {
	UserID string
	Calls  []*CallInput
}

// Validate validates the call-log batch input.
func (i CallsInput) Validate() error {
	var errs []domain.FieldError
	errs = validateUserID(errs, i.UserID)

	switch {
	case i.Calls == nil:
		errs = append(errs, domain.FieldError{Field: "calls", Message: "must be an array"})
	case len(i.Calls) > MaxCallsPerBatch:
		errs = append(errs, domain.FieldError{
			Field:   "calls",
			Message: fmt.Sprintf("at most %d entries allowed", MaxCallsPerBatch),
		})
	}

	for idx, c := range i.Calls {
		if c == nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("calls[%d]", idx), Message: "must be an object"})
			continue
		}
		if c.DurationSeconds != nil && *c.DurationSeconds < 0 {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("calls[%d].duration_seconds", idx),
				Message: "must be >= 0",
			})
		}
	}

	return toError(errs)
}

// IPReportInput asks for a geolocation of the caller's address.
type IPReportInput struct {
	UserID string
	IP     string
}

// Validate validates the IP report input. IP is resolved by the server,
// not sent by the client, so it is not a field error when missing.
func (i IPReportInput) Validate() error {
	return toError(validateUserID(nil, i.UserID))
}

func validateUserID(errs []domain.FieldError, raw string) []domain.FieldError {
	if raw == "" {
		return append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if _, err := uuid.Parse(raw); err != nil {
		return append(errs, domain.FieldError{Field: "user_id", Message: "must be a UUID"})
	}
	return errs
}

func toError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
