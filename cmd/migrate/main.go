// Run database migrations: go run ./cmd/migrate
package main

import (
	"context"
	"log"
	"os"

	"recommendation-backend/internal/shared/config"
	"recommendation-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())

	database, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("connect database: %v", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		log.Printf("run migrations: %v", err)
		os.Exit(1)
	}

	log.Printf("migrations applied")
}
