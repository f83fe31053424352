package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"gather/internal/adapters/web"
	"gather/internal/application"
	"gather/internal/config"
	"gather/internal/infrastructure/database"
	"gather/internal/infrastructure/i18n"
	"gather/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization error: %v", err)
	}
	defer pool.Close()

	eventRepo := database.NewEventRepository(pool)
	participantRepo := database.NewParticipantRepository(pool)
	userRepo := database.NewUserRepository(pool)

	images, err := storage.NewDiskImageStore(filepath.Join(cfg.PublicDir, "img", "events"))
	if err != nil {
		log.Fatalf("❌ Image storage error: %v", err)
	}
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	events := application.NewEventService(eventRepo, participantRepo, userRepo, images)
	participants := application.NewParticipantService(participantRepo, eventRepo)
	users := application.NewUserService(userRepo)

	server := web.New(cfg, events, participants, users, translator)
	if err := server.Start(); err != nil {
		log.Printf("❌ Server error: %v", err)
		os.Exit(1)
	}
}
