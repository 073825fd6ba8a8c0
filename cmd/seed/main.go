package main

import (
	"context"
	"log"
	"time"

	"propertyhub/internal/config"
	"propertyhub/internal/repository"
	"propertyhub/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.Driver == "memory" {
		log.Fatalf("Nothing to seed: DB_DRIVER=memory seeds itself on server start")
	}

	repo, err := repository.NewSQLRepository(
		cfg.Database.Driver,
		cfg.GetDSN(),
		cfg.Database.MaxConnections,
		cfg.Database.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := repo.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	n, err := seed.Run(ctx, repo, time.Now().UTC())
	if err != nil {
		log.Fatalf("Failed to seed properties: %v", err)
	}
	log.Printf("✅ Successfully seeded %d properties", n)
}
