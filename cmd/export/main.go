package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"asciihub/internal/art"
	"asciihub/pkg/database"
	"asciihub/pkg/models"
)

func main() {
	var (
		out    = flag.String("out", "data/artworks.json", "output path")
		format = flag.String("format", "json", "output format: json or csv")
	)
	flag.Parse()

	if *format != "json" && *format != "csv" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := database.DefaultConfig()
	if !database.Exists(cfg) {
		fmt.Fprintf(os.Stderr, "no database at %s, run the scraper first\n", cfg.Path)
		os.Exit(1)
	}

	db := database.MustOpen(cfg)
	defer db.Close()

	// exports include the dimension columns even on a pre-reconciler database
	if err := database.AddDimensionColumns(db); err != nil {
		log.Fatalf("dimension migration failed: %v", err)
	}

	rows, err := art.NewRepo(db).DumpArtworks(ctx)
	if err != nil {
		log.Fatalf("dump artworks failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	switch *format {
	case "json":
		err = writeJSON(*out, rows)
	case "csv":
		err = writeCSV(*out, rows)
	}
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}

	log.Printf("exported %d artworks to %s", len(rows), *out)
}

func writeJSON(path string, rows []models.ExportedArtwork) error {
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, rows []models.ExportedArtwork) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "category", "width", "height", "artwork"}); err != nil {
		return err
	}

	for _, r := range rows {
		width := ""
		if r.Width != nil {
			width = strconv.Itoa(*r.Width)
		}
		height := ""
		if r.Height != nil {
			height = strconv.Itoa(*r.Height)
		}
		if err := w.Write([]string{
			strconv.FormatInt(r.ID, 10),
			r.Category,
			width,
			height,
			r.Text,
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
