// Package tmdb is a thin client for The Movie Database REST API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/filmlist-backend/internal/config"
	"github.com/heartmarshall/filmlist-backend/internal/domain"
	"github.com/heartmarshall/filmlist-backend/internal/provider"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	defaultTimeout = 10 * time.Second
)

// Client issues one GET per call. It never retries and never caches.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from TMDBConfig. An empty API key is accepted
// here and reported on the first call.
func NewClient(cfg config.TMDBConfig, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "tmdb"),
	}
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, apiKey string, logger *slog.Logger) *Client {
	return NewClient(config.TMDBConfig{BaseURL: baseURL, APIKey: apiKey}, logger)
}

// Search returns one page of movies matching query.
func (c *Client) Search(ctx context.Context, query string, page int) (*provider.MoviePage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	var resp apiSearchResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, len(resp.Results))
	for i, m := range resp.Results {
		movies[i] = toDomainMovie(m)
	}

	return &provider.MoviePage{
		Movies:       movies,
		Page:         resp.Page,
		TotalResults: resp.TotalResults,
		TotalPages:   resp.TotalPages,
	}, nil
}

// Details returns the full record of a movie, including its IMDb id.
func (c *Client) Details(ctx context.Context, movieID int64) (*domain.Movie, error) {
	var resp apiMovie
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(movieID, 10), nil, &resp); err != nil {
		return nil, err
	}
	m := toDomainMovie(resp)
	return &m, nil
}

// Credits returns the crew of a movie.
func (c *Client) Credits(ctx context.Context, movieID int64) (*provider.CreditsResult, error) {
	var resp apiCredits
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(movieID, 10)+"/credits", nil, &resp); err != nil {
		return nil, err
	}

	crew := make([]domain.CrewMember, len(resp.Crew))
	for i, p := range resp.Crew {
		crew[i] = domain.CrewMember{ID: p.ID, Name: p.Name, Job: p.Job}
	}
	return &provider.CreditsResult{MovieID: movieID, Crew: crew}, nil
}

// Images returns the posters and backdrops of a movie in catalog order.
func (c *Client) Images(ctx context.Context, movieID int64) (*domain.MovieImages, error) {
	var resp apiImages
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(movieID, 10)+"/images", nil, &resp); err != nil {
		return nil, err
	}
	return &domain.MovieImages{
		Posters:   toDomainImages(resp.Posters),
		Backdrops: toDomainImages(resp.Backdrops),
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return &domain.ConfigurationError{
			Setting: "TMDB_API_KEY",
			Remedy:  "Set it in the environment or in config.yaml.",
		}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	c.log.DebugContext(ctx, "tmdb request", slog.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("tmdb: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request %s: %w", path, redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "tmdb response",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.upstreamError(ctx, path, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("tmdb: read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tmdb: decode json: %w", err)
	}
	return nil
}

// upstreamError keeps only the status text: it is what callers see. TMDB's
// own status_message goes to the log.
func (c *Client) upstreamError(ctx context.Context, path string, resp *http.Response) error {
	status := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if status == "" {
		status = http.StatusText(resp.StatusCode)
	}

	var payload apiError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload)
	c.log.WarnContext(ctx, "tmdb error response",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("message", payload.StatusMessage),
	)

	return &domain.UpstreamError{
		Service:    "tmdb",
		StatusCode: resp.StatusCode,
		Status:     status,
	}
}

// redactKey strips the API key from transport errors, which embed the URL.
func redactKey(err error, key string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, key, "REDACTED")
	}
	return err
}

func toDomainMovie(m apiMovie) domain.Movie {
	var imdbID *string
	if m.IMDbID != nil && *m.IMDbID != "" {
		id := *m.IMDbID
		imdbID = &id
	}
	return domain.Movie{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		ReleaseDate:  m.ReleaseDate,
		VoteAverage:  m.VoteAverage,
		IMDbID:       imdbID,
	}
}

func toDomainImages(in []apiImage) []domain.Image {
	out := make([]domain.Image, len(in))
	for i, img := range in {
		out[i] = domain.Image{
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
