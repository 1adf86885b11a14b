package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db          dbPinger
	version     string
	tmdbKeySet  bool
	pingTimeout time.Duration
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, tmdbKeySet bool) *HealthHandler {
	return &HealthHandler{db: db, version: version, tmdbKeySet: tmdbKeySet, pingTimeout: 3 * time.Second}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	if db.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports the database (with ping latency) and whether the catalog key
// is configured. A missing catalog key degrades but does not fail the check.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"database": h.pingDB(r.Context()),
		"tmdb":     {Status: "ok"},
	}
	if !h.tmdbKeySet {
		components["tmdb"] = CompStatus{Status: "unconfigured"}
	}

	overall, status := "ok", http.StatusOK
	switch {
	case components["database"].Status != "ok":
		overall, status = "down", http.StatusServiceUnavailable
	case !h.tmdbKeySet:
		overall = "degraded"
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, h.pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	switch {
	case errors.Is(err, domain.ErrConfiguration):
		return CompStatus{Status: "unconfigured"}
	case err != nil:
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
