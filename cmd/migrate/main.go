package main

import (
	"flag"
	"log"

	"kuispintar/internal/config"
	"kuispintar/internal/database"
	"kuispintar/internal/logger"
)

func main() {
	sourceDir := flag.String("source", "database/migrations", "migrations directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	l := logger.Get()
	defer l.Sync()

	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, *sourceDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	l.Info("Migrations completed successfully")
}
