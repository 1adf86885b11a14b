package provider

import "github.com/heartmarshall/filmlist-backend/internal/domain"

// MoviePage is one page of catalog search results with the catalog's own
// pagination.
type MoviePage struct {
	Movies       []domain.Movie
	Page         int
	TotalResults int
	TotalPages   int
}

// CreditsResult is the crew listing of a movie.
type CreditsResult struct {
	MovieID int64
	Crew    []domain.CrewMember
}
