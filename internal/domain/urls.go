package domain

import (
	"regexp"
	"strings"
)

// PlaceholderPoster is served when a film has no poster.
const PlaceholderPoster = "/placeholder-poster.svg"

// DefaultImageBaseURL is the TMDB image CDN root.
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// Poster sizes offered by the image CDN.
const (
	PosterSizeSmall    = "w185"
	PosterSizeMedium   = "w342"
	PosterSizeLarge    = "w500"
	PosterSizeOriginal = "original"
)

// PosterURL builds an image CDN URL for a poster path.
func PosterURL(baseURL string, posterPath *string, size string) string {
	if posterPath == nil || *posterPath == "" {
		return PlaceholderPoster
	}
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	if size == "" {
		size = PosterSizeLarge
	}
	return strings.TrimRight(baseURL, "/") + "/" + size + *posterPath
}

var (
	slugStrip  = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces = regexp.MustCompile(`[\s_]+`)
	slugDashes = regexp.MustCompile(`-+`)
)

// LetterboxdSlug converts a title to Letterboxd's URL slug format:
// lowercase, punctuation dropped, whitespace collapsed to single hyphens.
func LetterboxdSlug(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// LetterboxdURL returns the Letterboxd film page for a title. The year is
// not part of the slug; Letterboxd resolves the plain slug.
func LetterboxdURL(title string) string {
	return "https://letterboxd.com/film/" + LetterboxdSlug(title) + "/"
}
