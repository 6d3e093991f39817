package rest

import (
	"time"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Username  *string   `json:"username"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type locationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy"`
	IP        *string   `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

type ipLocationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IP        string    `json:"ip"`
	City      *string   `json:"city"`
	Region    *string   `json:"region"`
	Country   *string   `json:"country"`
	Loc       *string   `json:"loc"`
	Provider  *string   `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

type callResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Number          *string    `json:"number"`
	Direction       *string    `json:"direction"`
	StartedAt       *time.Time `json:"started_at"`
	DurationSeconds *int64     `json:"duration_seconds"`
	CreatedAt       time.Time  `json:"created_at"`
}

type snapshotResponse struct {
	User         userResponse        `json:"user"`
	LastLocation *locationResponse   `json:"last_location"`
	LastIP       *ipLocationResponse `json:"last_ip"`
	Calls        []callResponse      `json:"calls"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toLocationResponse(l *domain.DeviceLocation) *locationResponse {
	if l == nil {
		return nil
	}
	return &locationResponse{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Accuracy:  l.Accuracy,
		IP:        l.IP,
		CreatedAt: l.CreatedAt,
	}
}

func toIPLocationResponse(l *domain.IPLocation) *ipLocationResponse {
	if l == nil {
		return nil
	}
	return &ipLocationResponse{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		IP:        l.IP,
		City:      l.City,
		Region:    l.Region,
		Country:   l.Country,
		Loc:       l.Loc,
		Provider:  l.Provider,
		CreatedAt: l.CreatedAt,
	}
}

func toCallResponses(calls []domain.CallLogEntry) []callResponse {
	out := make([]callResponse, 0, len(calls))
	for _, c := range calls {
		out = append(out, callResponse{
			ID:              c.ID.String(),
			UserID:          c.UserID.String(),
			Number:          c.Number,
			Direction:       c.Direction,
			StartedAt:       c.StartedAt,
			DurationSeconds: c.DurationSeconds,
			CreatedAt:       c.CreatedAt,
		})
	}
	return out
}

func toSnapshotResponses(snaps []domain.UserSnapshot) []snapshotResponse {
	out := make([]snapshotResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, snapshotResponse{
			User:         toUserResponse(s.User),
			LastLocation: toLocationResponse(s.LastLocation),
			LastIP:       toIPLocationResponse(s.LastIP),
			Calls:        toCallResponses(s.Calls),
		})
	}
	return out
}
