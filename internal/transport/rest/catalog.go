package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
	"github.com/heartmarshall/filmlist-backend/internal/service/catalog"
)

type catalogService interface {
	Search(ctx context.Context, in catalog.SearchInput) (*domain.SearchPage, error)
	Images(ctx context.Context, in catalog.ImagesInput) (*domain.MovieImages, error)
}

// CatalogHandler serves movie search and artwork.
type CatalogHandler struct {
	svc       catalogService
	imageBase string
	log       *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler. imageBase is the poster CDN root.
func NewCatalogHandler(svc catalogService, imageBase string, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, imageBase: imageBase, log: logger.With("handler", "catalog")}
}

// Search handles GET /search?q=&page=.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if strings.TrimSpace(query) == "" {
		writeError(w, http.StatusBadRequest, `Query parameter "q" is required`)
		return
	}

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}

	result, err := h.svc.Search(r.Context(), catalog.SearchInput{Query: query, Page: page})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSearchResponse(result, h.imageBase))
}

// Images handles GET /movie-images?tmdbId=.
func (h *CatalogHandler) Images(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("tmdbId")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "tmdbId parameter is required")
		return
	}
	id, ok := parseID(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "tmdbId must be a positive integer")
		return
	}

	imgs, err := h.svc.Images(r.Context(), catalog.ImagesInput{TMDBID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toImagesResponse(imgs))
}
