package main

import (
	"log"

	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/seed"
	"gamereviews/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := database.Connect(cfg.DatabaseURL)

	result, err := seed.Run(store.New(db))
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d games, %d reviews", result.Users, result.Games, result.Reviews)
}
