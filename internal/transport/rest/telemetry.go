package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
	"github.com/heartmarshall/telemetry-backend/internal/service/ingest"
	"github.com/heartmarshall/telemetry-backend/pkg/ctxutil"
)

type ingestService interface {
	RecordConsent(ctx context.Context, input ingest.ConsentInput) (*domain.ConsentLog, error)
	ReportLocation(ctx context.Context, input ingest.LocationInput) (*domain.DeviceLocation, error)
	ReportCalls(ctx context.Context, input ingest.CallsInput) (int, error)
	ReportIP(ctx context.Context, input ingest.IPReportInput) (*domain.IPLocation, error)
}

// TelemetryHandler serves the device reporting endpoints.
type TelemetryHandler struct {
	svc ingestService
	log *slog.Logger
}

// NewTelemetryHandler creates a TelemetryHandler.
func NewTelemetryHandler(svc ingestService, logger *slog.Logger) *TelemetryHandler {
	return &TelemetryHandler{svc: svc, log: logger.With("handler", "telemetry")}
}

type consentRequest struct {
	UserID      string `json:"user_id"`
	ConsentText string `json:"consent_text"`
	Given       *bool  `json:"given"`
}

type locationRequest struct {
	UserID    string   `json:"user_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
}

type callsRequest struct {
	UserID string            `json:"user_id"`
	Calls  []json.RawMessage `json:"calls"`
}

type callRequest struct {
	Number          json.RawMessage `json:"number"`
	Direction       *string         `json:"direction"`
	StartedAt       json.RawMessage `json:"started_at"`
	DurationSeconds *int64          `json:"duration_seconds"`
}

type ipRequest struct {
	UserID string `json:"user_id"`
}

type callsResponse struct {
	OK       bool `json:"ok"`
	Inserted int  `json:"inserted"`
}

type geoResponse struct {
	OK  bool                `json:"ok"`
	Geo *ipLocationResponse `json:"geo"`
}

// Consent handles POST /consent.
func (h *TelemetryHandler) Consent(w http.ResponseWriter, r *http.Request) {
	var req consentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	_, err := h.svc.RecordConsent(r.Context(), ingest.ConsentInput{
		UserID:      req.UserID,
		ConsentText: req.ConsentText,
		Given:       req.Given,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Location handles POST /report-location.
func (h *TelemetryHandler) Location(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ip, _ := ctxutil.ClientIPFromCtx(r.Context())
	_, err := h.svc.ReportLocation(r.Context(), ingest.LocationInput{
		UserID:    req.UserID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		IP:        ip,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Calls handles POST /report-calls.
func (h *TelemetryHandler) Calls(w http.ResponseWriter, r *http.Request) {
	var req callsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	calls, err := toCallInputs(req.Calls)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	inserted, err := h.svc.ReportCalls(r.Context(), ingest.CallsInput{
		UserID: req.UserID,
		Calls:  calls,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, callsResponse{OK: true, Inserted: inserted})
}

// IP handles POST /report-ip. The address looked up is the caller's,
// resolved by middleware.ClientIP.
func (h *TelemetryHandler) IP(w http.ResponseWriter, r *http.Request) {
	var req ipRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ip, _ := ctxutil.ClientIPFromCtx(r.Context())
	loc, err := h.svc.ReportIP(r.Context(), ingest.IPReportInput{
		UserID: req.UserID,
		IP:     ip,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, geoResponse{OK: true, Geo: toIPLocationResponse(loc)})
}

// toCallInputs converts raw batch elements. A nil input (absent or null
// list) stays nil and a non-object element becomes a nil entry; both are
// rejected by ingest.CallsInput.Validate.
func toCallInputs(raw []json.RawMessage) ([]*ingest.CallInput, error) {
	if raw == nil {
		return nil, nil
	}

	var errs []domain.FieldError
	out := make([]*ingest.CallInput, len(raw))
	for i, item := range raw {
		if len(item) == 0 || item[0] != '{' {
			continue
		}

		prefix := fmt.Sprintf("calls[%d]", i)
		var c callRequest
		if err := json.Unmarshal(item, &c); err != nil {
			errs = append(errs, callFieldError(prefix, err))
			continue
		}

		number, err := parseLooseString(c.Number)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: prefix + ".number", Message: err.Error()})
		}
		startedAt, err := parseTimestamp(c.StartedAt)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: prefix + ".started_at", Message: err.Error()})
		}

		out[i] = &ingest.CallInput{
			Number:          number,
			Direction:       c.Direction,
			StartedAt:       startedAt,
			DurationSeconds: c.DurationSeconds,
		}
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return out, nil
}

func callFieldError(prefix string, err error) domain.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.FieldError{Field: prefix + "." + typeErr.Field, Message: "must be " + jsonKind(typeErr.Type)}
	}
	return domain.FieldError{Field: prefix, Message: "malformed object"}
}
