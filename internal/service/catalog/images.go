package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// Images returns the posters and backdrops of a movie.
func (s *Service) Images(ctx context.Context, in ImagesInput) (*domain.MovieImages, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	imgs, err := s.client.Images(ctx, in.TMDBID)
	if err != nil {
		return nil, fmt.Errorf("images for %d: %w", in.TMDBID, err)
	}
	return imgs, nil
}
