package rest

import (
	"net/http"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Users     *UserHandler
	Telemetry *TelemetryHandler
	Admin     *AdminHandler
	Health    *HealthHandler
}

// NewRouter registers every route on a new ServeMux. Middleware is applied
// by the caller.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /users", h.Users.Upsert)
	mux.HandleFunc("POST /consent", h.Telemetry.Consent)
	mux.HandleFunc("POST /report-location", h.Telemetry.Location)
	mux.HandleFunc("POST /report-calls", h.Telemetry.Calls)
	mux.HandleFunc("POST /report-ip", h.Telemetry.IP)

	mux.HandleFunc("GET /admin/users", h.Admin.Users)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	return mux
}
