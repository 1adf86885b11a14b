package watchlist

import (
	"context"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// AddInput identifies the film to add.
type AddInput struct {
	TMDBID int64 `field:"tmdbId" validate:"required,gt=0"`
}

func (i AddInput) Validate(ctx context.Context) error {
	return domain.ValidateStruct(ctx, i)
}

// RemoveInput identifies the film to remove.
type RemoveInput struct {
	TMDBID int64 `field:"tmdbId" validate:"required,gt=0"`
}

func (i RemoveInput) Validate(ctx context.Context) error {
	return domain.ValidateStruct(ctx, i)
}

// ToggleInput identifies the film whose watched flag is flipped.
type ToggleInput struct {
	TMDBID int64 `field:"tmdbId" validate:"required,gt=0"`
}

func (i ToggleInput) Validate(ctx context.Context) error {
	return domain.ValidateStruct(ctx, i)
}

// SetPosterInput replaces the stored poster path.
type SetPosterInput struct {
	TMDBID     int64 `field:"tmdbId" validate:"required,gt=0"`
	PosterPath *string // nil clears the poster
}

func (i SetPosterInput) Validate(ctx context.Context) error {
	return domain.ValidateStruct(ctx, i)
}
