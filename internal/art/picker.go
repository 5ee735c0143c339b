package art

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"asciihub/pkg/models"
)

var (
	// ErrNoCategories means the store holds no categories at all.
	ErrNoCategories = errors.New("no categories in store")
	// ErrNoArtworks means the selected category has no artworks.
	ErrNoArtworks = errors.New("no artworks in category")
)

// AmbiguousCategoryError reports a filter that substring-matched more than
// one category. The caller decides whether to ask for a narrower filter or
// fall back to a random pick; the picker never guesses.
type AmbiguousCategoryError struct {
	Filter     string
	Candidates []string
}

func (e *AmbiguousCategoryError) Error() string {
	return fmt.Sprintf("category filter %q matches %d categories: %s",
		e.Filter, len(e.Candidates), strings.Join(e.Candidates, ", "))
}

// Pick is one sampled artwork.
type Pick struct {
	Category string `json:"category"`
	Text     string `json:"artwork"`
}

// Picker samples artworks from the store: a category first (explicit,
// filtered, or uniformly random), then a uniformly random artwork within it.
type Picker struct {
	Repo *Repo
	Rand *rand.Rand
}

func NewPicker(repo *Repo) *Picker {
	return &Picker{
		Repo: repo,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Pick selects a category and a random artwork from it. Filter resolution:
// case-insensitive exact match first, then substring; exactly one substring
// match is used, several return AmbiguousCategoryError, none falls back to a
// uniformly random category.
func (p *Picker) Pick(ctx context.Context, filter string) (Pick, error) {
	cats, err := p.Repo.ListCategories(ctx)
	if err != nil {
		return Pick{}, err
	}
	if len(cats) == 0 {
		return Pick{}, ErrNoCategories
	}

	chosen, err := selectCategory(cats, filter, p.Rand)
	if err != nil {
		return Pick{}, err
	}

	texts, err := p.Repo.ListArtworks(ctx, chosen.ID)
	if err != nil {
		return Pick{}, err
	}
	if len(texts) == 0 {
		return Pick{}, fmt.Errorf("%w: %s", ErrNoArtworks, chosen.Name)
	}

	return Pick{
		Category: chosen.Name,
		Text:     texts[p.Rand.Intn(len(texts))],
	}, nil
}

func selectCategory(cats []models.Category, filter string, rng *rand.Rand) (models.Category, error) {
	if filter == "" {
		return cats[rng.Intn(len(cats))], nil
	}

	lower := strings.ToLower(filter)
	for _, c := range cats {
		if strings.ToLower(c.Name) == lower {
			return c, nil
		}
	}

	var matches []models.Category
	for _, c := range cats {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		// documented degraded behavior: no match falls back to random
		return cats[rng.Intn(len(cats))], nil
	default:
		names := make([]string, len(matches))
		for i, c := range matches {
			names[i] = c.Name
		}
		return models.Category{}, &AmbiguousCategoryError{Filter: filter, Candidates: names}
	}
}
