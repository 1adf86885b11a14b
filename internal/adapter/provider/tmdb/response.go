package tmdb

// apiMovie is a movie object as returned by /search/movie and /movie/{id}.
// imdb_id is only present on the details endpoint.
type apiMovie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	IMDbID       *string `json:"imdb_id"`
}

type apiSearchResponse struct {
	Page         int        `json:"page"`
	Results      []apiMovie `json:"results"`
	TotalResults int        `json:"total_results"`
	TotalPages   int        `json:"total_pages"`
}

type apiCredits struct {
	ID   int64     `json:"id"`
	Crew []apiCrew `json:"crew"`
}

type apiCrew struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type apiImages struct {
	ID        int64      `json:"id"`
	Backdrops []apiImage `json:"backdrops"`
	Posters   []apiImage `json:"posters"`
}

type apiImage struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Language    *string `json:"iso_639_1"`
	AspectRatio float64 `json:"aspect_ratio"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// apiError is the body TMDB sends with non-2xx responses.
type apiError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
