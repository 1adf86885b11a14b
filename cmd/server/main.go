// Command server runs the filmlist HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment. SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/filmlist-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
