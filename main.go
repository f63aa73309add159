package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"traindiary/config"
	"traindiary/db"
	"traindiary/handlers"
	"traindiary/i18n"
	"traindiary/store"
)

func main() {
	if err := config.LoadConfig("config.json"); err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err := i18n.LoadTranslations("i18n"); err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	if dir := filepath.Dir(config.AppConfig.DatabasePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Error creating data dir: %v", err)
		}
	}

	conn, err := db.Open(config.AppConfig.DatabasePath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer conn.Close()

	// Stores are constructed once and shared; each operation re-syncs
	// the schema lazily, but failing fast here beats a broken first
	// request.
	users := store.NewUserStore(conn)
	entries := store.NewEntryStore(conn, users)
	if err := entries.Init(); err != nil {
		log.Fatalf("Error initializing schema: %v", err)
	}

	api := handlers.New(users, entries)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.ListenIP, config.AppConfig.ListenPort)
	log.Printf("Server starting on %s (%s)", addr, config.AppConfig.AppName)

	if err := http.ListenAndServe(addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
