package scraper

import (
	"bytes"
	"context"
	"errors"
	"log"
	"time"

	"asciihub/internal/art"
	"asciihub/pkg/models"
)

// ReconcileStore matches freshly scraped artwork text against stored rows and
// applies dimension updates. A miss is reported as art.ErrNotFound. The
// default store matches on byte-for-byte text equality, which means any
// whitespace or encoding drift between ingestion and reconciliation reads as
// a miss; swapping in a store with a normalizing lookup changes the matching
// policy without touching the reconciler.
type ReconcileStore interface {
	FindArtworkIDByText(ctx context.Context, text string) (int64, error)
	ApplyDimensionUpdates(ctx context.Context, updates []models.DimensionUpdate) error
}

// Reconciler re-scrapes every category live and backfills width/height on
// stored artworks whose text matches exactly. Updates for one category are
// committed together before moving on, so a mid-run failure loses at most the
// category in flight.
type Reconciler struct {
	Client *Client
	Store  ReconcileStore
	Delay  time.Duration
}

type ReconcileSummary struct {
	Updated  int
	NotFound int
}

func (rec *Reconciler) Run(ctx context.Context) (ReconcileSummary, error) {
	dir, err := rec.Client.BuildDirectory(ctx)
	if err != nil {
		return ReconcileSummary{}, err
	}
	log.Printf("[dimensions] found %d categories", len(dir))

	names := sortedNames(dir)
	var sum ReconcileSummary

	for i, name := range names {
		log.Printf("[dimensions] [%d/%d] processing: %s", i+1, len(names), name)

		body, err := rec.Client.CategoryPage(ctx, dir[name])
		if err != nil {
			log.Printf("[dimensions] error fetching category %s: %v", name, err)
			continue
		}

		records, err := ExtractArtworksWithDimensions(bytes.NewReader(body))
		if err != nil {
			log.Printf("[dimensions] error parsing category %s: %v", name, err)
			continue
		}
		log.Printf("[dimensions]   found %d artworks with dimensions", len(records))

		var updates []models.DimensionUpdate
		for _, r := range records {
			id, err := rec.Store.FindArtworkIDByText(ctx, r.Text)
			if errors.Is(err, art.ErrNotFound) {
				sum.NotFound++
				continue
			}
			if err != nil {
				return sum, err
			}
			updates = append(updates, models.DimensionUpdate{
				ID:     id,
				Width:  r.Width,
				Height: r.Height,
			})
		}

		if err := rec.Store.ApplyDimensionUpdates(ctx, updates); err != nil {
			return sum, err
		}
		sum.Updated += len(updates)

		// be nice to the server
		if err := pause(ctx, rec.Delay); err != nil {
			return sum, err
		}
	}

	return sum, nil
}
