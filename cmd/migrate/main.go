package main

import (
	"flag"
	"log"

	"memberdir-backend/internal/config"
	dbmigrate "memberdir-backend/internal/db/migrate"
	"memberdir-backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Running database migrations", "direction", *direction)

	if err := dbmigrate.Run(cfg.GetDatabaseConnectionString(), *direction); err != nil {
		logger.Error("Migration failed", "error", err)
		log.Fatalf("Migration failed: %v", err)
	}
	logger.Info("Migrations applied successfully")
}
