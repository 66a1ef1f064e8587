package main

import (
	"log"

	"townkit/internal/config"
	"townkit/internal/database"
)

// Seeds the permit catalog and sample contractors. Run once against a
// fresh database, or again at any time: every insert is an upsert.
func main() {
	cfg := config.Load()

	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := database.Seed(pool); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
}
