package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"storefront/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config and the landing catalog.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	log.Println("storefront api starting")
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(ctx); err != nil {
		log.Printf("storefront api stopped with error: %v", err)
	}
}
