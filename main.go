package main

import (
	"context"
	"log"
	"time"

	"github.com/octofit-app/octofit-api/config"
	_ "github.com/octofit-app/octofit-api/docs"
	"github.com/octofit-app/octofit-api/routes"
)

// @title OctoFit Tracker API
// @version 1.0
// @description Fitness tracking REST API: users, teams, activities, workouts and a batch-rebuilt leaderboard.
// @host localhost:8088
// @BasePath /api
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

	cfg := config.GetConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := config.EnsureIndexes(ctx, config.DB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("Indexes ensured")

	r := routes.SetupRoutes()

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
