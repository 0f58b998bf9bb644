package main

import (
	"log"

	"whatsapp-studio/internal/config"
	"whatsapp-studio/internal/database"
)

// Copies the local SQLite registry into the PostgreSQL database named by
// the DB_* settings.
func main() {
	cfg := config.LoadConfig()
	if cfg.DBHost == "" {
		log.Fatal("DB_HOST is not set; nothing to migrate to")
	}

	src, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to SQLite: %v", err)
	}
	defer src.Close()
	log.Printf("Connected to SQLite at %s", cfg.DBPath)

	dst, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dst.Close()

	log.Println("Starting data migration...")
	report, err := src.CopyTo(dst)
	for table, n := range report {
		log.Printf("%s: %d rows", table, n)
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := dst.SyncSequences(); err != nil {
		log.Fatalf("Migration copied rows but %v", err)
	}
	log.Println("Migration completed!")
}
