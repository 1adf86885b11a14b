package watchlist

import (
	"context"
	"fmt"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// List returns every film, newest first. Never returns a nil slice.
func (s *Service) List(ctx context.Context) ([]domain.Film, error) {
	films, err := s.films.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	if films == nil {
		films = []domain.Film{}
	}
	return films, nil
}
