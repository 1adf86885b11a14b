// Package catalog serves movie search and artwork lookups against the
// metadata catalog, enriching the top of each search page.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
	"github.com/heartmarshall/filmlist-backend/internal/provider"
)

type catalogClient interface {
	Search(ctx context.Context, query string, page int) (*provider.MoviePage, error)
	Details(ctx context.Context, movieID int64) (*domain.Movie, error)
	Credits(ctx context.Context, movieID int64) (*provider.CreditsResult, error)
	Images(ctx context.Context, movieID int64) (*domain.MovieImages, error)
}

// Defaults for Config fields left at zero.
const (
	DefaultEnrichLimit       = 10
	DefaultEnrichConcurrency = 20
)

// Config tunes search enrichment.
type Config struct {
	// EnrichLimit is how many leading results get director and IMDb id.
	EnrichLimit int
	// EnrichConcurrency caps in-flight lookups per search.
	EnrichConcurrency int
	// LookupTimeout bounds each lookup; zero leaves only the request context.
	LookupTimeout time.Duration
}

// Service provides search and image lookups.
type Service struct {
	client catalogClient
	cfg    Config
	log    *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, client catalogClient, cfg Config) *Service {
	if cfg.EnrichLimit <= 0 {
		cfg.EnrichLimit = DefaultEnrichLimit
	}
	if cfg.EnrichConcurrency <= 0 {
		cfg.EnrichConcurrency = DefaultEnrichConcurrency
	}
	return &Service{
		client: client,
		cfg:    cfg,
		log:    log.With("service", "catalog"),
	}
}
