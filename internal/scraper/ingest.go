package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"
)

// IngestStore is the slice of the artwork store the ingestor needs. Artwork
// inserts for one category land in a single transaction, so a failed run
// leaves at most the current category uncommitted.
type IngestStore interface {
	EnsureCategory(ctx context.Context, name string) (int64, error)
	InsertArtworks(ctx context.Context, categoryID int64, texts []string) error
}

// Ingestor walks every category on the site and appends its artworks to the
// store. It never dedups: running it twice against the same source data
// produces duplicate rows.
type Ingestor struct {
	Client *Client
	Store  IngestStore
	// Delay is the politeness pause between category fetches.
	Delay time.Duration
}

type IngestSummary struct {
	Categories int
	Artworks   int
}

// Run builds the category directory and ingests each category in turn.
// A browse-page failure aborts the run; a single category page failure is
// logged and that category is skipped.
func (ing *Ingestor) Run(ctx context.Context) (IngestSummary, error) {
	dir, err := ing.Client.BuildDirectory(ctx)
	if err != nil {
		return IngestSummary{}, err
	}
	log.Printf("[ingest] found %d categories", len(dir))

	names := sortedNames(dir)
	var sum IngestSummary

	for i, name := range names {
		log.Printf("[ingest] [%d/%d] processing: %s", i+1, len(names), name)

		// the category row exists even if its page then fails to fetch
		categoryID, err := ing.Store.EnsureCategory(ctx, name)
		if err != nil {
			return sum, fmt.Errorf("ensure category %s: %w", name, err)
		}

		body, err := ing.Client.CategoryPage(ctx, dir[name])
		if err != nil {
			log.Printf("[ingest] error fetching category %s: %v", name, err)
			continue
		}

		records, err := ExtractArtworks(bytes.NewReader(body))
		if err != nil {
			log.Printf("[ingest] error parsing category %s: %v", name, err)
			continue
		}
		log.Printf("[ingest]   found %d artworks", len(records))

		texts := make([]string, len(records))
		for j, rec := range records {
			texts[j] = rec.Text
		}
		if err := ing.Store.InsertArtworks(ctx, categoryID, texts); err != nil {
			return sum, fmt.Errorf("insert artworks for %s: %w", name, err)
		}

		sum.Categories++
		sum.Artworks += len(records)

		// be nice to the server
		if err := pause(ctx, ing.Delay); err != nil {
			return sum, err
		}
	}

	return sum, nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
