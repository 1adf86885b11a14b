package watchlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// ToggleWatched flips the watched flag in a single statement and returns the
// updated film. Returns domain.ErrNotFound when the film is not on the list.
func (s *Service) ToggleWatched(ctx context.Context, in ToggleInput) (*domain.Film, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	film, err := s.films.ToggleWatched(ctx, in.TMDBID)
	if err != nil {
		return nil, fmt.Errorf("toggle watched %d: %w", in.TMDBID, err)
	}

	s.log.InfoContext(ctx, "watched toggled",
		slog.Int64("tmdb_id", in.TMDBID),
		slog.Bool("watched", film.Watched),
	)
	return film, nil
}

// SetPoster replaces the poster path. A film that is not on the list is
// silently ignored.
func (s *Service) SetPoster(ctx context.Context, in SetPosterInput) error {
	if err := in.Validate(ctx); err != nil {
		return err
	}

	matched, err := s.films.SetPoster(ctx, in.TMDBID, in.PosterPath)
	if err != nil {
		return fmt.Errorf("set poster %d: %w", in.TMDBID, err)
	}

	attrs := []any{slog.Int64("tmdb_id", in.TMDBID), slog.Bool("matched", matched)}
	if in.PosterPath != nil {
		attrs = append(attrs, slog.String("poster_path", *in.PosterPath))
	}
	s.log.InfoContext(ctx, "poster updated", attrs...)
	return nil
}
