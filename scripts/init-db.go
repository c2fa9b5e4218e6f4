package main

import (
	"log"

	"parcel_market/internal/config"
	"parcel_market/internal/database"
	"parcel_market/internal/migrations"
)

// Standalone schema bootstrap: creates all tables and seeds the default
// admin and tracking sequence without starting the API server.
func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Database initialized successfully")
}
