package watchlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// Add stores a film using fresh catalog details. Adding a film that is already
// on the list is not an error; the result reports Created=false.
func (s *Service) Add(ctx context.Context, in AddInput) (*AddResult, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	exists, err := s.films.Exists(ctx, in.TMDBID)
	if err != nil {
		return nil, fmt.Errorf("check film %d: %w", in.TMDBID, err)
	}
	if exists {
		return s.existing(ctx, in.TMDBID)
	}

	movie, err := s.movies.Details(ctx, in.TMDBID)
	if err != nil {
		return nil, fmt.Errorf("fetch details %d: %w", in.TMDBID, err)
	}

	film, err := s.films.Insert(ctx, domain.NewFilm(*movie))
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Concurrent add won the insert.
		return s.existing(ctx, in.TMDBID)
	}
	if err != nil {
		return nil, fmt.Errorf("insert film %d: %w", in.TMDBID, err)
	}

	s.log.InfoContext(ctx, "film added",
		slog.Int64("tmdb_id", film.TMDBID),
		slog.String("title", film.Title),
	)

	return &AddResult{Created: true, Film: film}, nil
}

func (s *Service) existing(ctx context.Context, tmdbID int64) (*AddResult, error) {
	s.log.InfoContext(ctx, "film already in watchlist", slog.Int64("tmdb_id", tmdbID))

	film, err := s.films.GetByTMDBID(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("get film %d: %w", tmdbID, err)
	}
	return &AddResult{Created: false, Film: film}, nil
}
