package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"asciihub/internal/art"
	"asciihub/internal/colorize"
	"asciihub/pkg/database"
)

type colorList []string

func (c *colorList) String() string { return strings.Join(*c, ",") }

func (c *colorList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func main() {
	var (
		list   bool
		filter string
		loop   bool
		colors colorList
		delay  float64
	)

	flag.BoolVar(&list, "list-categories", false, "list category names and exit")
	flag.BoolVar(&list, "l", false, "shorthand for -list-categories")
	flag.StringVar(&filter, "category", "", "category name or substring filter")
	flag.StringVar(&filter, "c", "", "shorthand for -category")
	flag.BoolVar(&loop, "loop", false, "keep showing artworks until interrupted")
	flag.Var(&colors, "color", "color band name, repeatable; one of "+strings.Join(colorize.Names(), ", "))
	flag.Float64Var(&delay, "delay", 1.0, "seconds between artworks in loop mode")
	flag.Parse()

	if delay < 0 {
		fmt.Fprintln(os.Stderr, "delay must be non-negative")
		os.Exit(1)
	}
	if list && filter != "" {
		fmt.Fprintln(os.Stderr, "-list-categories and -category are mutually exclusive")
		os.Exit(1)
	}

	cfg := database.DefaultConfig()
	if !database.Exists(cfg) {
		fmt.Fprintf(os.Stderr, "no database at %s, run the scraper first\n", cfg.Path)
		os.Exit(1)
	}

	db := database.MustOpen(cfg)
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := art.NewRepo(db)

	if list {
		listCategories(ctx, db, repo)
		return
	}

	picker := art.NewPicker(repo)
	for {
		pick, err := picker.Pick(ctx, filter)
		if err != nil {
			exitPickError(db, err)
		}
		display(pick, colors)

		if !loop {
			break
		}

		select {
		case <-ctx.Done():
			// a deliberate stop, not an error
			db.Close()
			os.Exit(0)
		case <-time.After(time.Duration(delay * float64(time.Second))):
		}
	}
}

func listCategories(ctx context.Context, db *sql.DB, repo *art.Repo) {
	cats, err := repo.ListCategories(ctx)
	if err != nil {
		log.Fatalf("list categories: %v", err)
	}
	if len(cats) == 0 {
		fmt.Fprintln(os.Stderr, "no categories in database")
		db.Close()
		os.Exit(1)
	}
	for _, c := range cats {
		fmt.Println(c.Name)
	}
}

func display(p art.Pick, colors []string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(p.Category)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(colorize.Apply(p.Text, colors))
}

func exitPickError(db *sql.DB, err error) {
	var ambiguous *art.AmbiguousCategoryError
	switch {
	case errors.As(err, &ambiguous):
		fmt.Fprintf(os.Stderr, "category filter %q is ambiguous, matches:\n", ambiguous.Filter)
		for _, name := range ambiguous.Candidates {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintln(os.Stderr, "use a more specific filter")
	case errors.Is(err, art.ErrNoCategories), errors.Is(err, art.ErrNoArtworks):
		fmt.Fprintln(os.Stderr, err.Error())
	default:
		fmt.Fprintf(os.Stderr, "pick failed: %v\n", err)
	}
	db.Close()
	os.Exit(1)
}
