package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// Search fetches one catalog page and enriches its first EnrichLimit items
// with director and IMDb id. Enrichment failures never fail the search.
func (s *Service) Search(ctx context.Context, in SearchInput) (*domain.SearchPage, error) {
	in.normalize()
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	raw, err := s.client.Search(ctx, in.Query, in.Page)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", in.Query, err)
	}

	results := make([]domain.SearchResult, len(raw.Movies))
	for i, m := range raw.Movies {
		results[i] = domain.SearchResult{Movie: m}
	}

	head := min(s.cfg.EnrichLimit, len(results))
	s.enrich(ctx, results[:head])

	s.log.DebugContext(ctx, "search completed",
		slog.String("query", in.Query),
		slog.Int("page", in.Page),
		slog.Int("results", len(results)),
		slog.Int("enriched", head),
	)

	return &domain.SearchPage{
		Results:      results,
		Page:         raw.Page,
		TotalResults: raw.TotalResults,
		TotalPages:   raw.TotalPages,
	}, nil
}
