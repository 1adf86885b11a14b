package postgres

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/filmlist-backend/internal/config"
)

var errConnectorClosed = errors.New("postgres: connector closed")

// Connector owns the process-wide database pool. The pool is created on
// first use; a failed attempt is not cached, so the next call retries.
// Concurrent callers share one connection attempt and the mutex is never
// held while dialing.
type Connector struct {
	cfg config.DatabaseConfig
	log *slog.Logger

	dial singleflight.Group

	mu     sync.Mutex
	pool   *pgxpool.Pool
	closed bool
}

// NewConnector creates a Connector. It does not touch the network.
func NewConnector(cfg config.DatabaseConfig, logger *slog.Logger) *Connector {
	return &Connector{
		cfg: cfg,
		log: logger.With("adapter", "postgres"),
	}
}

// Pool returns the shared pool, creating it if needed. A caller waits for an
// in-flight attempt only until its own context is done.
func (c *Connector) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	if pool := c.current(); pool != nil {
		return pool, nil
	}

	ch := c.dial.DoChan("pool", func() (any, error) {
		return c.open(ctx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*pgxpool.Pool), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Connector) current() *pgxpool.Pool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pool
}

func (c *Connector) open(ctx context.Context) (*pgxpool.Pool, error) {
	c.mu.Lock()
	pool, closed := c.pool, c.closed
	c.mu.Unlock()
	switch {
	case closed:
		return nil, errConnectorClosed
	case pool != nil:
		return pool, nil
	}

	dsn, err := c.cfg.ConnectionString()
	if err != nil {
		return nil, err
	}

	pool, err = NewPool(ctx, dsn, c.cfg)
	if err != nil {
		c.log.WarnContext(ctx, "database connection failed", slog.String("error", err.Error()))
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		pool.Close()
		return nil, errConnectorClosed
	}
	c.pool = pool
	c.log.InfoContext(ctx, "database pool created", slog.Int("max_conns", int(c.cfg.MaxConns)))
	return pool, nil
}

// Querier implements QuerierSource.
func (c *Connector) Querier(ctx context.Context) (Querier, error) {
	pool, err := c.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// Ping checks database connectivity, connecting first if necessary.
func (c *Connector) Ping(ctx context.Context) error {
	pool, err := c.Pool(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Close releases the pool if one was created.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}
