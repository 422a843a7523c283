// Command server runs the fishing log HTTP API.
//
// Configuration comes from environment variables (optionally a YAML file via
// CONFIG_PATH); a .env file in the working directory is loaded first when
// present. The server shuts down gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/msaemrow/anglers-index-api/internal/app"
)

func main() {
	// Missing .env is fine; environment variables take over.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
