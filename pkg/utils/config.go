package utils

import (
	"os"
	"strconv"
	"time"
)

// SiteConfig holds everything the scraping tools need to talk to the source
// site. Values are fixed process-wide at startup and handed to the components
// that need them instead of being read from globals, so tests can point the
// scraper at a local fixture server.
type SiteConfig struct {
	// BaseURL is the site root, used to resolve relative category links.
	BaseURL string
	// BrowseURL is the category index page.
	BrowseURL string
	// UserAgent is sent on every request; the site serves browsers only.
	UserAgent string
	// Timeout bounds every fetch.
	Timeout time.Duration
	// PolitenessDelay is the fixed pause between category fetches.
	PolitenessDelay time.Duration
}

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func LoadSiteConfig() SiteConfig {
	base := os.Getenv("ASCIIHUB_SITE_URL")
	if base == "" {
		base = "https://asciiart.website"
	}

	return SiteConfig{
		BaseURL:         base,
		BrowseURL:       base + "/browse.php",
		UserAgent:       defaultUserAgent,
		Timeout:         10 * time.Second,
		PolitenessDelay: envDuration("ASCIIHUB_SCRAPE_DELAY_MS", 500*time.Millisecond),
	}
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
