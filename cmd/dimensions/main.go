package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"asciihub/internal/art"
	"asciihub/internal/scraper"
	"asciihub/pkg/database"
	"asciihub/pkg/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := database.DefaultConfig()
	if !database.Exists(cfg) {
		fmt.Fprintf(os.Stderr, "no database at %s, run the scraper first\n", cfg.Path)
		os.Exit(1)
	}

	db := database.MustOpen(cfg)
	defer db.Close()

	// width/height arrived after the first ingestion runs; adding them is
	// idempotent and keeps existing rows intact.
	if err := database.AddDimensionColumns(db); err != nil {
		log.Fatalf("dimension migration failed: %v", err)
	}

	site := utils.LoadSiteConfig()
	rec := &scraper.Reconciler{
		Client: scraper.NewClient(site),
		Store:  art.NewRepo(db),
		Delay:  site.PolitenessDelay,
	}

	sum, err := rec.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Println("update interrupted")
		db.Close()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("dimension update failed: %v", err)
	}

	log.Printf("dimension update complete: %d updated, %d not found in db", sum.Updated, sum.NotFound)
}
