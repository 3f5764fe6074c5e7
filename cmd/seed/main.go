package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"botscope/internal/catalog"
	"botscope/internal/config"
	"botscope/internal/db"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	entries := catalog.BuiltIn()
	if path := os.Getenv("SEED_FILE"); path != "" {
		entries, err = loadEntries(path)
		if err != nil {
			log.Fatalf("seed file %s: %v", path, err)
		}
	}

	repo := catalog.NewRepository(cols.Bots)
	for _, entry := range catalog.Normalize(entries) {
		if entry.ID == "" {
			entry.ID = primitive.NewObjectID().Hex()
		}
		if err := repo.Upsert(ctx, entry); err != nil {
			log.Fatalf("seed error for %s: %v", entry.Title, err)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("seed completed: %d bots in %s.bots", count, cfg.MongoDB)
}

// loadEntries reads a JSON array of bots in the API's BotEntry shape.
func loadEntries(path string) ([]catalog.BotEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []catalog.BotEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
