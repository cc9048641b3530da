package main

import (
	"context"
	"log"
	"time"

	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/internal/seed"
)

func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := config.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seed.Run(ctx, config.DB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("=== Database Population Complete ===")
}
