package watchclient

import "time"

// Film is a watchlist entry as served by GET /watchlist.
type Film struct {
	ID            int64     `json:"id"`
	TMDBID        int64     `json:"tmdb_id"`
	Title         string    `json:"title"`
	Overview      *string   `json:"overview"`
	PosterPath    *string   `json:"poster_path"`
	ReleaseDate   *string   `json:"release_date"`
	VoteAverage   *float64  `json:"vote_average"`
	Watched       bool      `json:"watched"`
	AddedAt       time.Time `json:"added_at"`
	PosterURL     string    `json:"poster_url"`
	LetterboxdURL string    `json:"letterboxd_url"`
}

// SearchItem is one search result.
type SearchItem struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Overview      string  `json:"overview"`
	PosterPath    *string `json:"poster_path"`
	BackdropPath  *string `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	Director      *string `json:"director"`
	IMDbID        *string `json:"imdb_id"`
	PosterURL     string  `json:"poster_url"`
	LetterboxdURL string  `json:"letterboxd_url"`
}

// SearchPage is a page of search results.
type SearchPage struct {
	Page         int          `json:"page"`
	Results      []SearchItem `json:"results"`
	TotalResults int          `json:"total_results"`
	TotalPages   int          `json:"total_pages"`
}

// Image is a poster or backdrop.
type Image struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Language    *string `json:"iso_639_1"`
	AspectRatio float64 `json:"aspect_ratio"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// MovieImages is the artwork of a movie.
type MovieImages struct {
	Posters   []Image `json:"posters"`
	Backdrops []Image `json:"backdrops"`
}

// DBStatus is the GET /db-status report.
type DBStatus struct {
	HasConnectionString    bool              `json:"hasConnectionString"`
	HasIndividualVariables bool              `json:"hasIndividualVariables"`
	Variables              map[string]string `json:"variables"`
	Message                string            `json:"message"`
	Instructions           []string          `json:"instructions"`
}
