package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/filmlist-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Catalog   *CatalogHandler
	Watchlist *WatchlistHandler
	Unlock    *UnlockHandler
	Database  *DatabaseHandler
	Health    *HealthHandler
}

// NewRouter mounts the API at the root and again under /api. unlockLimit
// wraps POST /unlock only.
func NewRouter(h Handlers, unlockLimit middleware.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	if unlockLimit == nil {
		unlockLimit = middleware.Chain()
	}

	mountAPI(r.PathPrefix("/api").Subrouter(), h, unlockLimit)
	mountAPI(r, h, unlockLimit)

	return r
}

func mountAPI(r *mux.Router, h Handlers, unlockLimit middleware.Middleware) {
	r.HandleFunc("/search", h.Catalog.Search).Methods(http.MethodGet)
	r.HandleFunc("/movie-images", h.Catalog.Images).Methods(http.MethodGet)

	r.HandleFunc("/watchlist", h.Watchlist.List).Methods(http.MethodGet)
	r.HandleFunc("/watchlist", h.Watchlist.Add).Methods(http.MethodPost)
	r.HandleFunc("/watchlist", h.Watchlist.Remove).Methods(http.MethodDelete)
	r.HandleFunc("/watchlist", h.Watchlist.Patch).Methods(http.MethodPatch)

	r.Handle("/unlock", unlockLimit(http.HandlerFunc(h.Unlock.Unlock))).Methods(http.MethodPost)

	r.HandleFunc("/db-status", h.Database.Status).Methods(http.MethodGet)
	r.HandleFunc("/init-db", h.Database.Init).Methods(http.MethodPost)
}
