package rest

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// filmResponse is the wire form of a watchlist entry.
type filmResponse struct {
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

func toFilmResponse(f domain.Film, imageBase string) filmResponse {
	return filmResponse{
		ID:            f.ID,
		TMDBID:        f.TMDBID,
		Title:         f.Title,
		Overview:      f.Overview,
		PosterPath:    f.PosterPath,
		ReleaseDate:   f.ReleaseDate,
		VoteAverage:   f.VoteAverage,
		Watched:       f.Watched,
		AddedAt:       f.AddedAt,
		PosterURL:     domain.PosterURL(imageBase, f.PosterPath, domain.PosterSizeLarge),
		LetterboxdURL: domain.LetterboxdURL(f.Title),
	}
}

// searchItem is one search result. Director is omitted when unknown; imdb_id
// is omitted for items outside the enriched prefix and null when the lookup
// found nothing.
type searchItem struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Overview      string          `json:"overview"`
	PosterPath    *string         `json:"poster_path"`
	BackdropPath  *string         `json:"backdrop_path"`
	ReleaseDate   string          `json:"release_date"`
	VoteAverage   float64         `json:"vote_average"`
	Director      *string         `json:"director,omitempty"`
	IMDbID        json.RawMessage `json:"imdb_id,omitempty"`
	PosterURL     string          `json:"poster_url"`
	LetterboxdURL string          `json:"letterboxd_url"`
}

type searchResponse struct {
	Page         int          `json:"page"`
	Results      []searchItem `json:"results"`
	TotalResults int          `json:"total_results"`
	TotalPages   int          `json:"total_pages"`
}

var jsonNull = json.RawMessage("null")

func toSearchResponse(p *domain.SearchPage, imageBase string) searchResponse {
	items := make([]searchItem, len(p.Results))
	for i, r := range p.Results {
		item := searchItem{
			ID:            r.ID,
			Title:         r.Title,
			Overview:      r.Overview,
			PosterPath:    r.PosterPath,
			BackdropPath:  r.BackdropPath,
			ReleaseDate:   r.ReleaseDate,
			VoteAverage:   r.VoteAverage,
			PosterURL:     domain.PosterURL(imageBase, r.PosterPath, domain.PosterSizeSmall),
			LetterboxdURL: domain.LetterboxdURL(r.Title),
		}
		if r.Enriched {
			item.Director = r.Director
			item.IMDbID = jsonNull
			if r.IMDbID != nil {
				item.IMDbID, _ = json.Marshal(*r.IMDbID)
			}
		}
		items[i] = item
	}
	return searchResponse{
		Page:         p.Page,
		Results:      items,
		TotalResults: p.TotalResults,
		TotalPages:   p.TotalPages,
	}
}

type imageItem struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Language    *string `json:"iso_639_1"`
	AspectRatio float64 `json:"aspect_ratio"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

type imagesResponse struct {
	Posters   []imageItem `json:"posters"`
	Backdrops []imageItem `json:"backdrops"`
}

func toImagesResponse(m *domain.MovieImages) imagesResponse {
	return imagesResponse{
		Posters:   toImageItems(m.Posters),
		Backdrops: toImageItems(m.Backdrops),
	}
}

func toImageItems(in []domain.Image) []imageItem {
	out := make([]imageItem, len(in))
	for i, img := range in {
		out[i] = imageItem{
			FilePath:    img.FilePath,
			Width:       img.Width,
			Height:      img.Height,
			Language:    img.Language,
			AspectRatio: img.AspectRatio,
			VoteAverage: img.VoteAverage,
			VoteCount:   img.VoteCount,
		}
	}
	return out
}

// tmdbID accepts a JSON number or a numeric string. Anything else, including
// null, decodes as zero.
type tmdbID int64

func (id *tmdbID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*id = 0
		return nil
	}
	*id = tmdbID(n)
	return nil
}

// parseID reads a positive id from a query value.
func parseID(raw string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
