package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and
// pgxmock pools.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// QuerierSource hands out the Querier for one repository call. *Connector
// opens its pool on first use, so obtaining a Querier can fail.
type QuerierSource interface {
	Querier(ctx context.Context) (Querier, error)
}

type fixedSource struct {
	q Querier
}

func (s fixedSource) Querier(context.Context) (Querier, error) { return s.q, nil }

// Fixed wraps an already open Querier as a QuerierSource.
func Fixed(q Querier) QuerierSource {
	return fixedSource{q: q}
}
