package scraper

import (
	"bytes"
	"context"
	"fmt"
	"sort"
)

// BuildDirectory fetches the browse page and returns the name -> URL mapping
// for every category on it. Duplicate names resolve last-occurrence-wins,
// matching how the site's index has always been ingested. The directory is
// rebuilt fresh on every run; category URLs are never persisted.
func (c *Client) BuildDirectory(ctx context.Context) (map[string]string, error) {
	body, err := c.BrowsePage(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse page: %w", err)
	}

	links, err := ExtractCategoryLinks(bytes.NewReader(body), c.site.BaseURL)
	if err != nil {
		return nil, err
	}

	dir := make(map[string]string, len(links))
	for _, l := range links {
		dir[l.Name] = l.URL
	}
	return dir, nil
}

// sortedNames gives a stable processing order for a directory, so run logs
// and per-category commits happen in a predictable sequence.
func sortedNames(dir map[string]string) []string {
	names := make([]string, 0, len(dir))
	for name := range dir {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
