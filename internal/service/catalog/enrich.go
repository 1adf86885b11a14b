package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// enrich fills Director and IMDbID in place. Each item gets two independent
// lookups; each lookup writes only its own field of its own item, so the
// slice keeps catalog order whatever order lookups finish in.
func (s *Service) enrich(ctx context.Context, items []domain.SearchResult) {
	var g errgroup.Group
	g.SetLimit(s.cfg.EnrichConcurrency)

	for i := range items {
		item := &items[i]
		item.Enriched = true
		item.IMDbID = nil

		g.Go(func() error {
			item.Director = s.lookupDirector(ctx, item.ID)
			return nil
		})
		g.Go(func() error {
			item.IMDbID = s.lookupIMDbID(ctx, item.ID)
			return nil
		})
	}

	_ = g.Wait()
}

func (s *Service) lookupDirector(ctx context.Context, movieID int64) *string {
	ctx, cancel := s.lookupContext(ctx)
	defer cancel()

	credits, err := s.client.Credits(ctx, movieID)
	if err != nil {
		s.log.WarnContext(ctx, "credits lookup failed",
			slog.Int64("tmdb_id", movieID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	name, ok := domain.DirectorOf(credits.Crew)
	if !ok {
		return nil
	}
	return &name
}

func (s *Service) lookupIMDbID(ctx context.Context, movieID int64) *string {
	ctx, cancel := s.lookupContext(ctx)
	defer cancel()

	details, err := s.client.Details(ctx, movieID)
	if err != nil {
		s.log.WarnContext(ctx, "details lookup failed",
			slog.Int64("tmdb_id", movieID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return details.IMDbID
}

func (s *Service) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.LookupTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.LookupTimeout)
	}
	return context.WithCancel(ctx)
}
