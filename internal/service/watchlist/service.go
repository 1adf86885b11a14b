// Package watchlist manages the persisted list of films.
package watchlist

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

type filmRepo interface {
	List(ctx context.Context) ([]domain.Film, error)
	GetByTMDBID(ctx context.Context, tmdbID int64) (*domain.Film, error)
	Exists(ctx context.Context, tmdbID int64) (bool, error)
	Insert(ctx context.Context, f *domain.Film) (*domain.Film, error)
	Delete(ctx context.Context, tmdbID int64) error
	ToggleWatched(ctx context.Context, tmdbID int64) (*domain.Film, error)
	SetPoster(ctx context.Context, tmdbID int64, posterPath *string) (bool, error)
}

type movieDetailer interface {
	Details(ctx context.Context, movieID int64) (*domain.Movie, error)
}

// Service provides watchlist operations.
type Service struct {
	films  filmRepo
	movies movieDetailer
	log    *slog.Logger
}

// NewService creates a new watchlist service.
func NewService(log *slog.Logger, films filmRepo, movies movieDetailer) *Service {
	return &Service{
		films:  films,
		movies: movies,
		log:    log.With("service", "watchlist"),
	}
}

// AddResult reports the outcome of Add. Created is false when the film was
// already on the list.
type AddResult struct {
	Created bool
	Film    *domain.Film
}
