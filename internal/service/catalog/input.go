package catalog

import (
	"context"
	"strings"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// SearchInput holds the parameters for a catalog search.
type SearchInput struct {
	Query string `field:"q" validate:"required"`
	// Page is 1-based; values below 1 are treated as 1.
	Page int
}

func (i *SearchInput) normalize() {
	i.Query = strings.TrimSpace(i.Query)
	if i.Page < 1 {
		i.Page = 1
	}
}

// Validate checks the query is present.
func (i SearchInput) Validate(ctx context.Context) error {
	return domain.ValidateStruct(ctx, i)
}

// ImagesInput identifies the movie whose artwork is requested.
type ImagesInput struct {
	TMDBID int64 `field:"tmdbId" validate:"required,gt=0"`
}

// Validate checks the id is present and positive.
func (i ImagesInput) Validate(ctx context.Context) error {
	return domain.ValidateStruct(ctx, i)
}
