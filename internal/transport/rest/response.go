package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/filmlist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// decodeJSON reads a JSON body into dst. An empty body decodes as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// internalErrorMessage replaces the text of unclassified errors, which may
// carry driver or query details.
const internalErrorMessage = "Internal server error"

// handleError maps service errors to status codes. Messages of upstream and
// configuration failures are shown to the caller as they are actionable.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve   *domain.ValidationError
		up   *domain.UpstreamError
		ce   *domain.ConfigurationError
		conn *postgres.ConnectionFailedError
	)

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrValidation):
		log.WarnContext(r.Context(), "invalid input rejected by storage", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.As(err, &up):
		log.WarnContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, up.Error())
	case errors.As(err, &ce):
		log.ErrorContext(r.Context(), "configuration error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, ce.Error())
	case errors.As(err, &conn):
		log.ErrorContext(r.Context(), "database unreachable", slog.String("error", conn.Err.Error()))
		writeError(w, http.StatusInternalServerError, conn.Error())
	default:
		log.ErrorContext(r.Context(), "unexpected error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}
