package watchlist

import (
	"context"
	"fmt"
	"log/slog"
)

// Remove deletes a film. Removing a film that is not on the list succeeds.
func (s *Service) Remove(ctx context.Context, in RemoveInput) error {
	if err := in.Validate(ctx); err != nil {
		return err
	}

	if err := s.films.Delete(ctx, in.TMDBID); err != nil {
		return fmt.Errorf("delete film %d: %w", in.TMDBID, err)
	}

	s.log.InfoContext(ctx, "film removed", slog.Int64("tmdb_id", in.TMDBID))
	return nil
}
