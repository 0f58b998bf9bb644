package main

import (
	"log"

	"whatsapp-studio/internal/config"
	"whatsapp-studio/internal/database"
)

func main() {
	cfg := config.LoadConfig()
	store, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	log.Println("Syncing PostgreSQL sequences...")
	if err := store.SyncSequences(); err != nil {
		log.Fatal(err)
	}
	log.Println("DONE!")
}
