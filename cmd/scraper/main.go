package main

import (
	"context"
	"errors"
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
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	site := utils.LoadSiteConfig()
	ing := &scraper.Ingestor{
		Client: scraper.NewClient(site),
		Store:  art.NewRepo(db),
		Delay:  site.PolitenessDelay,
	}

	sum, err := ing.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Println("build interrupted")
		db.Close()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("scrape failed: %v", err)
	}

	log.Printf("database build complete: %d categories, %d artworks", sum.Categories, sum.Artworks)
	log.Printf("database saved to %s", cfg.Path)
}
