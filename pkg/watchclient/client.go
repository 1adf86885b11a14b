// Package watchclient is a Go client for the filmlist API together with a
// client-side synchronizer that keeps an optimistic view of the watchlist.
package watchclient

import (
	"bytes"
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
)

// APIError is a non-2xx response. Message is the server's "error" field, or
// the status text when the body carries none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("filmlist api: %d %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// Client calls the filmlist HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the API rooted at baseURL (e.g.
// "http://localhost:8080/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.With("client", "watchclient")
	return c
}

type messageBody struct {
	Message string `json:"message"`
}

// Search runs a catalog search.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchPage, error) {
	q := url.Values{"q": {query}}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	var out SearchPage
	if err := c.do(ctx, http.MethodGet, "/search", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Images lists posters and backdrops of a movie.
func (c *Client) Images(ctx context.Context, tmdbID int64) (*MovieImages, error) {
	var out MovieImages
	if err := c.do(ctx, http.MethodGet, "/movie-images", idQuery(tmdbID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the watchlist, newest first.
func (c *Client) List(ctx context.Context) ([]Film, error) {
	var out []Film
	if err := c.do(ctx, http.MethodGet, "/watchlist", nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Film{}
	}
	return out, nil
}

// Add puts a film on the watchlist. created is false when it was already there.
func (c *Client) Add(ctx context.Context, tmdbID int64) (created bool, err error) {
	var out messageBody
	status, err := c.doStatus(ctx, http.MethodPost, "/watchlist", nil, map[string]int64{"tmdbId": tmdbID}, &out)
	if err != nil {
		return false, err
	}
	return status == http.StatusCreated, nil
}

// Remove deletes a film. Removing a missing film succeeds.
func (c *Client) Remove(ctx context.Context, tmdbID int64) error {
	return c.do(ctx, http.MethodDelete, "/watchlist", idQuery(tmdbID), nil, nil)
}

// ToggleWatched flips the watched flag.
func (c *Client) ToggleWatched(ctx context.Context, tmdbID int64) error {
	return c.do(ctx, http.MethodPatch, "/watchlist", nil, map[string]int64{"tmdbId": tmdbID}, nil)
}

// SetPoster replaces the poster path; nil clears it.
func (c *Client) SetPoster(ctx context.Context, tmdbID int64, posterPath *string) error {
	body := struct {
		TMDBID     int64   `json:"tmdbId"`
		PosterPath *string `json:"posterPath"`
	}{tmdbID, posterPath}
	return c.do(ctx, http.MethodPatch, "/watchlist", nil, body, nil)
}

// Unlock checks the edit password.
func (c *Client) Unlock(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodPost, "/unlock", nil, map[string]string{"password": password}, nil)
}

// DBStatus reports the server's database settings.
func (c *Client) DBStatus(ctx context.Context) (*DBStatus, error) {
	var out DBStatus
	if err := c.do(ctx, http.MethodGet, "/db-status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InitDB asks the server to apply its schema.
func (c *Client) InitDB(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/init-db", nil, nil, nil)
}

func idQuery(id int64) url.Values {
	return url.Values{"tmdbId": {strconv.FormatInt(id, 10)}}
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, in, out any) error {
	_, err := c.doStatus(ctx, method, path, q, in, out)
	return err
}

func (c *Client) doStatus(ctx context.Context, method, path string, q url.Values, in, out any) (int, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("watchclient: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, fmt.Errorf("watchclient: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.DebugContext(ctx, "request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("watchclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("watchclient: decode %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&payload)

	msg := payload.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
