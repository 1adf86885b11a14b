package domain

import "strconv"

// Movie is the catalog representation of a film as returned by the metadata
// service.
type Movie struct {
	ID           int64
	Title        string
	Overview     string
	PosterPath   *string
	BackdropPath *string
	ReleaseDate  string
	VoteAverage  float64
	IMDbID       *string
}

// SearchResult is one item of a search page. Director and IMDbID are only
// meaningful when Enriched is true: Director stays nil when credits could not
// be resolved, IMDbID stays nil when details could not be resolved.
type SearchResult struct {
	Movie
	Enriched bool
	Director *string
}

// SearchPage is a page of search results with the catalog's pagination.
type SearchPage struct {
	Results      []SearchResult
	Page         int
	TotalResults int
	TotalPages   int
}

// CrewMember is one crew credit of a movie.
type CrewMember struct {
	ID   int64
	Name string
	Job  string
}

// DirectorOf returns the first crew member credited as "Director".
func DirectorOf(crew []CrewMember) (string, bool) {
	for _, c := range crew {
		if c.Job == "Director" {
			return c.Name, true
		}
	}
	return "", false
}

// Image is a poster or backdrop listed for a movie.
type Image struct {
	FilePath    string
	Width       int
	Height      int
	Language    *string
	AspectRatio float64
	VoteAverage float64
	VoteCount   int
}

// MovieImages groups the artwork available for a movie.
type MovieImages struct {
	Posters   []Image
	Backdrops []Image
}

// ReleaseYear extracts the year from a YYYY-MM-DD date. Returns 0 if the date
// is too short or not numeric.
func ReleaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}
