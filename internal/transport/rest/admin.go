package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

type snapshotService interface {
	ListSnapshots(ctx context.Context) ([]domain.UserSnapshot, error)
}

// AdminHandler serves the admin aggregation view.
type AdminHandler struct {
	snapshots snapshotService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(snapshots snapshotService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		snapshots: snapshots,
		log:       logger.With("handler", "admin"),
	}
}

type usersResponse struct {
	OK      bool               `json:"ok"`
	Results []snapshotResponse `json:"results"`
}

// Users returns recent users with their latest telemetry.
// GET /admin/users
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.snapshots.ListSnapshots(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, usersResponse{OK: true, Results: toSnapshotResponses(snaps)})
}
