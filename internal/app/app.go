package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/filmlist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/filmlist-backend/internal/adapter/postgres/film"
	"github.com/heartmarshall/filmlist-backend/internal/adapter/provider/tmdb"
	"github.com/heartmarshall/filmlist-backend/internal/config"
	"github.com/heartmarshall/filmlist-backend/internal/service/catalog"
	"github.com/heartmarshall/filmlist-backend/internal/service/editmode"
	"github.com/heartmarshall/filmlist-backend/internal/service/watchlist"
	"github.com/heartmarshall/filmlist-backend/internal/transport/middleware"
	"github.com/heartmarshall/filmlist-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle unlock buckets are swept.
const rateLimitCleanup = time.Minute

// Server is the assembled HTTP application: adapters, services, handlers
// and the middleware chain.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	db      *postgres.Connector
	limiter *middleware.RateLimiter
	handler http.Handler
}

// NewServer wires every component from cfg. It does not connect to the
// database; the pool is created on the first request that needs it.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	db := postgres.NewConnector(cfg.Database, logger)
	movies := tmdb.NewClient(cfg.TMDB, logger)

	catalogSvc := catalog.NewService(logger, movies, catalog.Config{
		EnrichLimit:       cfg.TMDB.EnrichLimit,
		EnrichConcurrency: cfg.TMDB.EnrichConcurrency,
		LookupTimeout:     cfg.TMDB.LookupTimeout,
	})
	watchlistSvc := watchlist.NewService(logger, film.New(db), movies)
	editSvc := editmode.NewService(logger, cfg.Edit.Password)

	imageBase := cfg.TMDB.ImageBaseURL
	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	router := rest.NewRouter(rest.Handlers{
		Catalog:   rest.NewCatalogHandler(catalogSvc, imageBase, logger),
		Watchlist: rest.NewWatchlistHandler(watchlistSvc, imageBase, logger),
		Unlock:    rest.NewUnlockHandler(editSvc, logger),
		Database:  rest.NewDatabaseHandler(cfg.Database, db, logger),
		Health:    rest.NewHealthHandler(db, BuildVersion(), cfg.TMDB.APIKey != ""),
	}, limiter.Limit(cfg.Edit.UnlockPerMinute))

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	return &Server{
		cfg:     cfg,
		log:     logger,
		db:      db,
		limiter: limiter,
		handler: chain(router),
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Close stops background work and releases the database pool.
func (s *Server) Close() {
	s.limiter.Stop()
	s.db.Close()
}

// Run is the application entry point. It loads configuration, initializes
// the logger, and serves HTTP until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)
	if cfg.TMDB.APIKey == "" {
		logger.Warn("TMDB_API_KEY is not set; search and add will fail")
	}
	if cfg.Edit.Password == "" {
		logger.Warn("EDIT_PASSWORD is not set; unlock will fail")
	}

	srv := NewServer(cfg, logger)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
