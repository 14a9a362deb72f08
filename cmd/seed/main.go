package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"memberdir-backend/internal/config"
	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/logger"
	"memberdir-backend/internal/repository"
	"memberdir-backend/internal/repository/postgres"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Bootstraps the first admin account. Credentials come from flags, falling
// back to ADMIN_EMAIL / ADMIN_NAME / ADMIN_PASSWORD environment variables.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "Admin email address")
	name := flag.String("name", os.Getenv("ADMIN_NAME"), "Admin display name")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "Admin password")
	flag.Parse()

	_ = godotenv.Load()

	if *email == "" || *password == "" {
		log.Fatal("Admin email and password are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	ctx := context.Background()

	if _, err := store.Admins.GetByEmail(ctx, *email); err == nil {
		logger.Info("Admin account already exists", "email", *email)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("Failed to look up admin account: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &domain.AdminAccount{
		Email:        *email,
		Name:         *name,
		PasswordHash: string(hash),
		CreatedOn:    time.Now().UTC(),
	}
	if err := store.Admins.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	logger.Info("Admin account created", "email", *email, "id", admin.ID)
}
