package scraper

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"asciihub/pkg/models"
)

// categoryHrefMarker identifies links that point at category pages. The site
// has no stable ids or rel attributes, so the query-parameter pattern is the
// only marker we have; if it changes, extraction yields empty results rather
// than an error.
const categoryHrefMarker = "cat.php?category_id="

type CategoryLink struct {
	Name string
	URL  string
}

// ExtractCategoryLinks scans every hyperlink in the browse page and keeps the
// ones targeting category pages. Relative hrefs are resolved against baseURL,
// and a trailing parenthetical artwork count is stripped from the label.
// Links come back in document order, duplicates included.
func ExtractCategoryLinks(r io.Reader, baseURL string) ([]CategoryLink, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse browse page: %w", err)
	}

	var links []CategoryLink
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if !strings.Contains(href, categoryHrefMarker) {
			return
		}
		if !strings.HasPrefix(href, "http") {
			href = strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
		}

		links = append(links, CategoryLink{
			Name: NormalizeCategoryName(s.Text()),
			URL:  href,
		})
	})

	return links, nil
}

// NormalizeCategoryName strips the trailing parenthetical count from a
// category label: "Animals (42)" becomes "Animals". Labels without a
// parenthesis pass through unchanged.
func NormalizeCategoryName(label string) string {
	label = strings.TrimSpace(label)
	if i := strings.Index(label, "("); i >= 0 {
		label = strings.TrimSpace(label[:i])
	}
	return label
}

// ExtractArtworks pulls the literal text of every artwork pre block on a
// category page, in document order. Whitespace-only entries are dropped.
func ExtractArtworks(r io.Reader) ([]models.ArtworkRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse category page: %w", err)
	}

	var artworks []models.ArtworkRecord
	doc.Find("pre.adu-artwork-pre").Each(func(_ int, pre *goquery.Selection) {
		text := pre.Text()
		if strings.TrimSpace(text) == "" {
			return
		}
		artworks = append(artworks, models.ArtworkRecord{Text: text})
	})

	return artworks, nil
}

// ExtractArtworksWithDimensions walks the artwork containers of a category
// page and pairs each pre block's text with the "Dimensions: W x H" label
// from its metadata section. Containers without a metadata block or a
// dimensions paragraph are skipped silently; a malformed label is logged as a
// warning and that one record is dropped.
func ExtractArtworksWithDimensions(r io.Reader) ([]models.ArtworkRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse category page: %w", err)
	}

	var artworks []models.ArtworkRecord
	doc.Find("div.adu-artwork-display").Each(func(_ int, container *goquery.Selection) {
		pre := container.Find("pre.adu-artwork-pre").First()
		if pre.Length() == 0 {
			return
		}
		text := pre.Text()
		if strings.TrimSpace(text) == "" {
			return
		}

		meta := container.Find("div.adu-artwork-metadata").First()
		if meta.Length() == 0 {
			return
		}

		var label string
		meta.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			if strings.Contains(p.Text(), "Dimensions:") {
				label = p.Text()
				return false
			}
			return true
		})
		if label == "" {
			return
		}

		width, height, err := ParseDimensions(label)
		if err != nil {
			log.Printf("[scraper] warning: could not parse dimensions: %q", label)
			return
		}

		artworks = append(artworks, models.ArtworkRecord{
			Text:          text,
			Width:         width,
			Height:        height,
			HasDimensions: true,
		})
	})

	return artworks, nil
}

// ParseDimensions parses a "Dimensions: W x H" label into a positive integer
// pair. The part after the first colon must be two integers separated by an
// "x"; anything else is an error, never a default.
func ParseDimensions(label string) (width, height int, err error) {
	_, dims, ok := strings.Cut(label, ":")
	if !ok {
		return 0, 0, fmt.Errorf("no colon in dimensions label %q", label)
	}

	w, h, ok := strings.Cut(dims, "x")
	if !ok {
		return 0, 0, fmt.Errorf("no separator in dimensions %q", strings.TrimSpace(dims))
	}

	width, err = strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q: %w", strings.TrimSpace(dims), err)
	}
	height, err = strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q: %w", strings.TrimSpace(dims), err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("non-positive dimensions %dx%d", width, height)
	}

	return width, height, nil
}
