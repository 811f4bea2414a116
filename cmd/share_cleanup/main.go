package main

import (
	"context"
	"log"
	"os"
	"time"

	"secondbrain/internal/database"
	"secondbrain/internal/repository"
)

// Intended to run from cron. Expired share links already resolve as
// not-found; this just keeps the table from growing forever.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	shares := repository.NewShareLinkRepository(db)
	purged, err := shares.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("cleanup share_links failed: %v", err)
	}

	log.Printf("share cleanup completed: purged=%d", purged)
}
