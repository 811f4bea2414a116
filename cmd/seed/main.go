package main

import (
	"context"
	"log"
	"time"

	"secondbrain/internal/database"
	"secondbrain/internal/domain"
	"secondbrain/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local sqlite database with a demo account and a few contents
// so the frontend has something to render.
func main() {
	db, err := database.Connect("secondbrain.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM share_links")
	db.Exec("DELETE FROM contents")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	contents := repository.NewContentRepository(db)
	shares := repository.NewShareLinkRepository(db)

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := &domain.User{
		Username:     "demo",
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, demo); err != nil {
		log.Fatal("create user failed:", err)
	}

	log.Println("Creating demo contents...")
	seedContents := []domain.Content{
		{Title: "How to take smart notes", Link: "https://example.com/smart-notes", Type: domain.TypeArticle, UserID: demo.ID},
		{Title: "Go concurrency patterns", Link: "https://www.youtube.com/watch?v=f6kdp27TYZs", Type: domain.TypeVideo, UserID: demo.ID},
		{Title: "Whiteboard sketch", Link: "https://example.com/sketch.png", Type: domain.TypeImage, UserID: demo.ID},
		{Title: "Interview recording", Link: "https://example.com/interview.mp3", Type: domain.TypeAudio, UserID: demo.ID},
	}
	for i := range seedContents {
		if err := contents.Create(ctx, &seedContents[i]); err != nil {
			log.Fatal("create content failed:", err)
		}
	}

	log.Println("Creating a demo share link...")
	expires := time.Now().Add(30 * 24 * time.Hour)
	link := &domain.ShareLink{
		ContentID: seedContents[0].ID,
		Token:     "6465656d6f2d746f6b656e2d73656564", // fixed token for local testing
		ExpiresAt: &expires,
	}
	if err := shares.Create(ctx, link); err != nil {
		log.Fatal("create share link failed:", err)
	}

	log.Printf("Done. Login with demo/demo123, shared link token: %s", link.Token)
}
