package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConsentLog is one consent event. Rows are never updated.
type ConsentLog struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ConsentText string
	Given       bool
	CreatedAt   time.Time
}

// DeviceLocation is a self-reported GPS fix.
type DeviceLocation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	IP        *string
	CreatedAt time.Time
}

// CallLogEntry is one call reported by a device.
// StartedAt is the call's own time; CreatedAt is when the batch was ingested.
type CallLogEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Number          *string
	Direction       *string
	StartedAt       *time.Time
	DurationSeconds *int64
	CreatedAt       time.Time
}

// IPLocation is the result of one IP geolocation lookup.
// Loc is the provider's "lat,lng" string; Provider is the network operator.
type IPLocation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	IP        string
	City      *string
	Region    *string
	Country   *string
	Loc       *string
	Provider  *string
	CreatedAt time.Time
}

// UserSnapshot is the latest known state of one user across signals.
// Each signal is read independently, so the fields may reflect slightly
// different instants.
type UserSnapshot struct {
	User         User
	LastLocation *DeviceLocation
	LastIP       *IPLocation
	Calls        []CallLogEntry
}
