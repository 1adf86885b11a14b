package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
	"github.com/heartmarshall/filmlist-backend/internal/service/editmode"
)

type editModeService interface {
	Unlock(ctx context.Context, in editmode.UnlockInput) error
}

// UnlockHandler serves POST /unlock.
type UnlockHandler struct {
	svc editModeService
	log *slog.Logger
}

// NewUnlockHandler creates an UnlockHandler.
func NewUnlockHandler(svc editModeService, logger *slog.Logger) *UnlockHandler {
	return &UnlockHandler{svc: svc, log: logger.With("handler", "unlock")}
}

type unlockRequest struct {
	Password string `json:"password"`
}

type unlockResponse struct {
	Success bool `json:"success"`
}

// Unlock checks the edit password.
func (h *UnlockHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.Unlock(r.Context(), editmode.UnlockInput{Password: req.Password})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, unlockResponse{Success: true})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Password is required")
	case errors.Is(err, domain.ErrConfiguration):
		writeError(w, http.StatusInternalServerError, "Edit password not configured")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Incorrect password")
	default:
		h.log.ErrorContext(r.Context(), "unlock failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to verify password")
	}
}
