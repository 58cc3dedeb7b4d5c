package main

import (
	"context"
	"log"
	"os"

	"triply/internal/config"
	"triply/internal/db"
	"triply/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	conn, err := db.Open(context.Background(), cfg.DBPath)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	if err := migrate.Apply(conn); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
