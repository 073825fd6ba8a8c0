package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"propertyhub/internal/config"
	"propertyhub/internal/export"
	"propertyhub/internal/repository"
)

func main() {
	since := flag.Duration("since", 0, "only export leads created within this window, e.g. 168h (0 exports all)")
	out := flag.String("out", "", "write CSV to this file instead of stdout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: leads [options]

Exports captured leads as CSV.

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.Driver == "memory" {
		log.Fatalf("Nothing to export: DB_DRIVER=memory keeps leads inside the server process")
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

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	var from time.Time
	if *since > 0 {
		from = time.Now().Add(-*since)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := export.WriteLeadsCSV(ctx, w, repo, from)
	if err != nil {
		log.Fatalf("Failed to export leads: %v", err)
	}
	log.Printf("✅ Exported %d leads", n)
}
