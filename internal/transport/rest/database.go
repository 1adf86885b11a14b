package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/filmlist-backend/internal/config"
)

type dbInitializer interface {
	Init(ctx context.Context) error
}

// DatabaseHandler reports connection settings and applies the schema.
type DatabaseHandler struct {
	cfg config.DatabaseConfig
	db  dbInitializer
	log *slog.Logger
}

// NewDatabaseHandler creates a DatabaseHandler.
func NewDatabaseHandler(cfg config.DatabaseConfig, db dbInitializer, logger *slog.Logger) *DatabaseHandler {
	return &DatabaseHandler{cfg: cfg, db: db, log: logger.With("handler", "database")}
}

type dbStatusResponse struct {
	HasConnectionString    bool              `json:"hasConnectionString"`
	HasIndividualVariables bool              `json:"hasIndividualVariables"`
	Variables              map[string]string `json:"variables"`
	Message                string            `json:"message"`
	Instructions           []string          `json:"instructions"`
}

// Status handles GET /db-status. It never touches the database.
func (h *DatabaseHandler) Status(w http.ResponseWriter, r *http.Request) {
	d := h.cfg.Diagnose()

	vars := make(map[string]string, len(d.Variables))
	for _, v := range d.Variables {
		if v.Set {
			vars[v.Name] = "✓ Set"
		} else {
			vars[v.Name] = "✗ Missing"
		}
	}

	writeJSON(w, http.StatusOK, dbStatusResponse{
		HasConnectionString:    d.HasConnectionString,
		HasIndividualVariables: d.HasIndividualVariables,
		Variables:              vars,
		Message:                d.Message,
		Instructions:           d.Instructions,
	})
}

// Init handles POST /init-db.
func (h *DatabaseHandler) Init(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Init(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Database initialized successfully")
}
