// Package film implements the watchlist repository using PostgreSQL.
package film

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/filmlist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

const table = "films"

var columns = []string{
	"id", "tmdb_id", "title", "overview", "poster_path",
	"release_date", "vote_average", "watched", "added_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// row mirrors the films table. watched is nullable on legacy databases.
type row struct {
	ID          int64     `db:"id"`
	TMDBID      int64     `db:"tmdb_id"`
	Title       string    `db:"title"`
	Overview    *string   `db:"overview"`
	PosterPath  *string   `db:"poster_path"`
	ReleaseDate *string   `db:"release_date"`
	VoteAverage *float64  `db:"vote_average"`
	Watched     *bool     `db:"watched"`
	AddedAt     time.Time `db:"added_at"`
}

func (r row) toDomain() domain.Film {
	return domain.Film{
		ID:          r.ID,
		TMDBID:      r.TMDBID,
		Title:       r.Title,
		Overview:    r.Overview,
		PosterPath:  r.PosterPath,
		ReleaseDate: r.ReleaseDate,
		VoteAverage: r.VoteAverage,
		Watched:     r.Watched != nil && *r.Watched,
		AddedAt:     r.AddedAt,
	}
}

// Repo provides watchlist persistence backed by PostgreSQL.
type Repo struct {
	db postgres.QuerierSource
}

// New creates a new film repository.
func New(db postgres.QuerierSource) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List returns every watchlist entry, most recently added first.
func (r *Repo) List(ctx context.Context) ([]domain.Film, error) {
	q, err := r.db.Querier(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.Select(columns...).
		From(table).
		OrderBy("added_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "film", 0)
	}

	films := make([]domain.Film, len(rows))
	for i, rw := range rows {
		films[i] = rw.toDomain()
	}
	return films, nil
}

// GetByTMDBID returns the entry for a catalog id.
func (r *Repo) GetByTMDBID(ctx context.Context, tmdbID int64) (*domain.Film, error) {
	q, err := r.db.Querier(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.Select(columns...).
		From(table).
		Where(sq.Eq{"tmdb_id": tmdbID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "film", tmdbID)
	}

	f := rw.toDomain()
	return &f, nil
}

// Exists reports whether the catalog id is on the watchlist.
func (r *Repo) Exists(ctx context.Context, tmdbID int64) (bool, error) {
	q, err := r.db.Querier(ctx)
	if err != nil {
		return false, err
	}

	query, args, err := builder.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{"tmdb_id": tmdbID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "film", tmdbID)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Insert stores a new entry with watched=false. A duplicate catalog id
// leaves the existing row untouched and returns domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, f *domain.Film) (*domain.Film, error) {
	q, err := r.db.Querier(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.Insert(table).
		Columns("tmdb_id", "title", "overview", "poster_path", "release_date", "vote_average", "watched").
		Values(f.TMDBID, f.Title, f.Overview, f.PosterPath, f.ReleaseDate, f.VoteAverage, false).
		Suffix("ON CONFLICT (tmdb_id) DO NOTHING").
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("film %d: %w", f.TMDBID, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "film", f.TMDBID)
	}

	out := rw.toDomain()
	return &out, nil
}

// Delete removes the entry. Deleting an absent id is not an error.
func (r *Repo) Delete(ctx context.Context, tmdbID int64) error {
	q, err := r.db.Querier(ctx)
	if err != nil {
		return err
	}

	query, args, err := builder.Delete(table).
		Where(sq.Eq{"tmdb_id": tmdbID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "film", tmdbID)
	}
	return nil
}

// ToggleWatched negates the watched flag in a single statement and returns
// the updated entry. A NULL flag counts as false.
func (r *Repo) ToggleWatched(ctx context.Context, tmdbID int64) (*domain.Film, error) {
	q, err := r.db.Querier(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.Update(table).
		Set("watched", sq.Expr("NOT COALESCE(watched, FALSE)")).
		Where(sq.Eq{"tmdb_id": tmdbID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build toggle query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "film", tmdbID)
	}

	f := rw.toDomain()
	return &f, nil
}

// SetPoster overwrites the poster path; nil clears it. Returns whether a
// row matched.
func (r *Repo) SetPoster(ctx context.Context, tmdbID int64, posterPath *string) (bool, error) {
	q, err := r.db.Querier(ctx)
	if err != nil {
		return false, err
	}

	query, args, err := builder.Update(table).
		Set("poster_path", posterPath).
		Where(sq.Eq{"tmdb_id": tmdbID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build set poster query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "film", tmdbID)
	}
	return tag.RowsAffected() > 0, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
