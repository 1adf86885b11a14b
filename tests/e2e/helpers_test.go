//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/filmlist-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/filmlist-backend/internal/app"
	"github.com/heartmarshall/filmlist-backend/internal/config"
	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

const (
	duneID       = 438631
	missingID    = 999999999
	editPassword = "popcorn"
)

// ---------------------------------------------------------------------------
// Fake catalog
// ---------------------------------------------------------------------------

// fakeTMDB serves the four catalog endpoints the backend calls. Dune has a
// full fixture; any other id gets a generated movie, and missingID is 404.
type fakeTMDB struct {
	*httptest.Server
	detailsCalls atomic.Int64
}

func newFakeTMDB(t *testing.T) *fakeTMDB {
	t.Helper()
	f := &fakeTMDB{}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeTMDB) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("api_key") != "test-key" {
		tmdbError(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch {
	case path == "search/movie":
		f.search(w, r)
	case len(parts) >= 2 && parts[0] == "movie":
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || id == missingID {
			tmdbError(w, http.StatusNotFound, "The resource you requested could not be found.")
			return
		}
		switch {
		case len(parts) == 2:
			f.detailsCalls.Add(1)
			writeFixture(w, movieFixture(id))
		case parts[2] == "credits":
			writeFixture(w, map[string]any{
				"id": id,
				"crew": []map[string]any{
					{"id": 1, "name": "Joe Walker", "job": "Editor"},
					{"id": 137427, "name": "Denis Villeneuve", "job": "Director"},
				},
			})
		case parts[2] == "images":
			writeFixture(w, map[string]any{
				"id": id,
				"posters": []map[string]any{
					{"file_path": "/poster1.jpg", "width": 2000, "height": 3000, "iso_639_1": "en", "aspect_ratio": 0.667, "vote_average": 5.4, "vote_count": 10},
					{"file_path": "/poster2.jpg", "width": 1000, "height": 1500, "iso_639_1": nil, "aspect_ratio": 0.667},
				},
				"backdrops": []map[string]any{
					{"file_path": "/backdrop1.jpg", "width": 3840, "height": 2160, "iso_639_1": nil, "aspect_ratio": 1.778},
				},
			})
		default:
			tmdbError(w, http.StatusNotFound, "unknown")
		}
	default:
		tmdbError(w, http.StatusNotFound, "unknown")
	}
}

func (f *fakeTMDB) search(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	results := []map[string]any{movieFixture(duneID)}
	for i := int64(1); i < 12; i++ {
		results = append(results, movieFixture(duneID+i))
	}
	writeFixture(w, map[string]any{
		"page":          page,
		"results":       results,
		"total_results": len(results),
		"total_pages":   1,
	})
}

func movieFixture(id int64) map[string]any {
	if id == duneID {
		return map[string]any{
			"id":            duneID,
			"title":         "Dune",
			"overview":      "Paul Atreides travels to Arrakis.",
			"poster_path":   "/d5NXSklXo0qyIYkgV94XAgMIckC.jpg",
			"backdrop_path": "/jYEW5xZkZk2WTrdbMGAPFuBqbDc.jpg",
			"release_date":  "2021-09-15",
			"vote_average":  7.8,
			"imdb_id":       "tt1160419",
		}
	}
	return map[string]any{
		"id":           id,
		"title":        "Film " + strconv.FormatInt(id, 10),
		"overview":     "",
		"poster_path":  nil,
		"release_date": "2020-01-01",
		"vote_average": 6.1,
		"imdb_id":      "tt" + strconv.FormatInt(id, 10),
	}
}

func writeFixture(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func tmdbError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"status_code": 34, "status_message": msg})
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	TMDB   *fakeTMDB
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig(dsn, tmdbURL string) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			URLNonPooling:   dsn,
			MaxConns:        4,
			ConnectTimeout:  5 * time.Second,
			MaxConnIdleTime: 20 * time.Second,
		},
		TMDB: config.TMDBConfig{
			APIKey:            "test-key",
			BaseURL:           tmdbURL,
			ImageBaseURL:      domain.DefaultImageBaseURL,
			Timeout:           5 * time.Second,
			EnrichLimit:       10,
			EnrichConcurrency: 20,
		},
		Edit: config.EditConfig{
			Password:        editPassword,
			UnlockPerMinute: 5,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         86400,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a fake catalog.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	testhelper.SetupTestDB(t)
	tmdb := newFakeTMDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	srv := app.NewServer(testConfig(testhelper.DSN(), tmdb.URL), logger)
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testServer{URL: ts.URL, Client: ts.Client(), TMDB: tmdb}
}

// do sends a JSON request and decodes the JSON response into a generic value.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	status, raw := ts.doRaw(t, method, path, body)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}

func (ts *testServer) doRaw(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// list returns the watchlist as generic JSON objects.
func (ts *testServer) list(t *testing.T) []map[string]any {
	t.Helper()
	status, raw := ts.doRaw(t, http.MethodGet, "/api/watchlist", nil)
	require.Equal(t, http.StatusOK, status, "body: %s", raw)

	var films []map[string]any
	require.NoError(t, json.Unmarshal(raw, &films))
	return films
}

func findFilm(films []map[string]any, tmdbID int64) map[string]any {
	for _, f := range films {
		if id, ok := f["tmdb_id"].(float64); ok && int64(id) == tmdbID {
			return f
		}
	}
	return nil
}
