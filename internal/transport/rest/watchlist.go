package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
	"github.com/heartmarshall/filmlist-backend/internal/service/watchlist"
)

type watchlistService interface {
	List(ctx context.Context) ([]domain.Film, error)
	Add(ctx context.Context, in watchlist.AddInput) (*watchlist.AddResult, error)
	Remove(ctx context.Context, in watchlist.RemoveInput) error
	ToggleWatched(ctx context.Context, in watchlist.ToggleInput) (*domain.Film, error)
	SetPoster(ctx context.Context, in watchlist.SetPosterInput) error
}

// WatchlistHandler serves the /watchlist resource.
type WatchlistHandler struct {
	svc       watchlistService
	imageBase string
	log       *slog.Logger
}

// NewWatchlistHandler creates a WatchlistHandler.
func NewWatchlistHandler(svc watchlistService, imageBase string, logger *slog.Logger) *WatchlistHandler {
	return &WatchlistHandler{svc: svc, imageBase: imageBase, log: logger.With("handler", "watchlist")}
}

type addRequest struct {
	TMDBID tmdbID `json:"tmdbId"`
}

// patchRequest toggles watched when posterPath is absent and sets the poster
// (null clears it) when present.
type patchRequest struct {
	TMDBID     tmdbID          `json:"tmdbId"`
	PosterPath json.RawMessage `json:"posterPath"`
}

// List handles GET /watchlist.
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	films, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]filmResponse, len(films))
	for i, f := range films {
		resp[i] = toFilmResponse(f, h.imageBase)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /watchlist.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TMDBID <= 0 {
		writeError(w, http.StatusBadRequest, "tmdbId is required")
		return
	}

	res, err := h.svc.Add(r.Context(), watchlist.AddInput{TMDBID: int64(req.TMDBID)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if !res.Created {
		writeMessage(w, http.StatusOK, "Film already in watchlist")
		return
	}
	writeMessage(w, http.StatusCreated, "Film added to watchlist")
}

// Remove handles DELETE /watchlist?tmdbId=.
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.URL.Query().Get("tmdbId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "tmdbId is required")
		return
	}

	if err := h.svc.Remove(r.Context(), watchlist.RemoveInput{TMDBID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Film removed from watchlist")
}

// Patch handles PATCH /watchlist.
func (h *WatchlistHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req patchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TMDBID <= 0 {
		writeError(w, http.StatusBadRequest, "tmdbId is required")
		return
	}
	id := int64(req.TMDBID)

	if req.PosterPath == nil {
		h.toggle(w, r, id)
		return
	}

	var poster *string
	if err := json.Unmarshal(req.PosterPath, &poster); err != nil {
		writeError(w, http.StatusBadRequest, "posterPath must be a string or null")
		return
	}

	if err := h.svc.SetPoster(r.Context(), watchlist.SetPosterInput{TMDBID: id, PosterPath: poster}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Poster updated")
}

func (h *WatchlistHandler) toggle(w http.ResponseWriter, r *http.Request, id int64) {
	_, err := h.svc.ToggleWatched(r.Context(), watchlist.ToggleInput{TMDBID: id})
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Film not found in watchlist")
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Watched status updated")
}
