package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrations returns the embedded goose migration files.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		panic(fmt.Sprintf("postgres: embedded migrations: %v", err))
	}
	return sub
}

// Migrate applies all pending migrations through the given pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationResult, error) {
	// The *sql.DB only borrows connections; the pool stays open.
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, Migrations())
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}

// Init connects through the connector and brings the schema up to date.
// Connection failures are rewritten into an operator-facing checklist.
func (c *Connector) Init(ctx context.Context) error {
	pool, err := c.Pool(ctx)
	if err != nil {
		return explainConnError(err)
	}

	results, err := Migrate(ctx, pool)
	if err != nil {
		return explainConnError(err)
	}

	for _, r := range results {
		c.log.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration,
		)
	}
	return nil
}

// ConnectionFailedError wraps errors caused by an unreachable database host.
type ConnectionFailedError struct {
	Err error
}

func (e *ConnectionFailedError) Error() string {
	return "Database connection failed. Please check:\n" +
		"1. POSTGRES_URL or POSTGRES_URL_NON_POOLING is set correctly\n" +
		"2. The connection string is valid (try using POSTGRES_URL_NON_POOLING for Supabase)\n" +
		"3. Your network connection is working\n" +
		"4. The database host is reachable\n" +
		"Original error: " + e.Err.Error()
}

func (e *ConnectionFailedError) Unwrap() error { return e.Err }

func explainConnError(err error) error {
	if isUnreachable(err) {
		return &ConnectionFailedError{Err: err}
	}
	return err
}

func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "getaddrinfo") ||
		strings.Contains(msg, "connection refused")
}
