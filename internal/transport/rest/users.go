package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
	"github.com/heartmarshall/telemetry-backend/internal/service/user"
)

type userService interface {
	Create(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, input user.UpdateUserInput) (uuid.UUID, error)
}

// UserHandler serves user registration.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type upsertUserRequest struct {
	ID       *string `json:"id"`
	Username *string `json:"username"`
	Phone    *string `json:"phone"`
}

type userUpdatedResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type userCreatedResponse struct {
	OK   bool         `json:"ok"`
	ID   string       `json:"id"`
	User userResponse `json:"user"`
}

// Upsert handles POST /users. A non-empty id updates that user,
// otherwise a new user is created.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if req.ID != nil && *req.ID != "" {
		id, err := h.svc.Update(r.Context(), user.UpdateUserInput{
			ID:       *req.ID,
			Username: req.Username,
			Phone:    req.Phone,
		})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, userUpdatedResponse{OK: true, ID: id.String()})
		return
	}

	u, err := h.svc.Create(r.Context(), user.CreateUserInput{
		Username: req.Username,
		Phone:    req.Phone,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, userCreatedResponse{
		OK:   true,
		ID:   u.ID.String(),
		User: toUserResponse(*u),
	})
}
