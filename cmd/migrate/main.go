// Command migrate applies the embedded schema migrations to the configured
// database. It is the offline counterpart of POST /init-db.
//
// Usage:
//
//	migrate [-timeout 2m] [-status]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/filmlist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/filmlist-backend/internal/app"
	"github.com/heartmarshall/filmlist-backend/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	status := flag.Bool("status", false, "print migration status instead of applying")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn := postgres.NewConnector(cfg.Database, logger)
	defer conn.Close()

	if *status {
		if err := printStatus(ctx, conn); err != nil {
			logger.Error("migration status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if err := conn.Init(ctx); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("Database schema is up to date.")
}

func printStatus(ctx context.Context, conn *postgres.Connector) error {
	pool, err := conn.Pool(ctx)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(pool), postgres.Migrations())
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("goose status: %w", err)
	}

	for _, s := range statuses {
		applied := "pending"
		if s.State == goose.StateApplied {
			applied = "applied " + s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Printf("%5d  %-40s %s\n", s.Source.Version, s.Source.Path, applied)
	}
	return nil
}
