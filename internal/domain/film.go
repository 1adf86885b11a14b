package domain

import "time"

// Film is a persisted watchlist entry keyed by its TMDB id.
type Film struct {
	ID          int64
	TMDBID      int64
	Title       string
	Overview    *string
	PosterPath  *string
	ReleaseDate *string
	VoteAverage *float64
	Watched     bool
	AddedAt     time.Time
}

// Year returns the release year, or 0 when the release date is unknown.
func (f Film) Year() int {
	if f.ReleaseDate == nil {
		return 0
	}
	return ReleaseYear(*f.ReleaseDate)
}

// NewFilm builds the entry stored on first add from fresh movie details.
// Watched is always false for a new entry.
func NewFilm(m Movie) *Film {
	f := &Film{
		TMDBID:  m.ID,
		Title:   m.Title,
		Watched: false,
	}
	if m.Overview != "" {
		overview := m.Overview
		f.Overview = &overview
	}
	f.PosterPath = m.PosterPath
	if m.ReleaseDate != "" {
		date := m.ReleaseDate
		f.ReleaseDate = &date
	}
	vote := m.VoteAverage
	f.VoteAverage = &vote
	return f
}
