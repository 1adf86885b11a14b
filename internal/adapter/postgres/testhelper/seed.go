package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

var nextTMDBID atomic.Int64

func init() {
	// Offset by start time so repeated runs against a reused container do
	// not collide on the unique tmdb_id.
	nextTMDBID.Store(time.Now().UnixMilli() % 1_000_000_000)
}

// UniqueTMDBID returns a catalog id no other test in this run uses.
func UniqueTMDBID() int64 {
	return nextTMDBID.Add(1)
}

// SeedFilm inserts a watchlist entry with a unique TMDB id and returns it.
func SeedFilm(t *testing.T, pool *pgxpool.Pool, title string) domain.Film {
	t.Helper()

	overview := "Seeded overview for " + title
	poster := "/seed.jpg"
	release := "2021-09-15"
	vote := 7.5

	f := domain.Film{
		TMDBID:      UniqueTMDBID(),
		Title:       title,
		Overview:    &overview,
		PosterPath:  &poster,
		ReleaseDate: &release,
		VoteAverage: &vote,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO films (tmdb_id, title, overview, poster_path, release_date, vote_average, watched)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		 RETURNING id, added_at`,
		f.TMDBID, f.Title, f.Overview, f.PosterPath, f.ReleaseDate, f.VoteAverage,
	).Scan(&f.ID, &f.AddedAt)
	if err != nil {
		t.Fatalf("testhelper: seed film %q: %v", title, err)
	}

	return f
}
