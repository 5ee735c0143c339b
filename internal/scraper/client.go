package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"asciihub/pkg/utils"
)

// Client fetches pages from the ascii art site. All requests carry the
// configured browser user agent and share one timeout; there are no retries.
type Client struct {
	http *resty.Client
	site utils.SiteConfig
}

func NewClient(site utils.SiteConfig) *Client {
	c := resty.New().
		SetTimeout(site.Timeout).
		SetHeader("User-Agent", site.UserAgent)

	return &Client{http: c, site: site}
}

func (c *Client) Site() utils.SiteConfig { return c.site }

// BrowsePage fetches the category index page.
func (c *Client) BrowsePage(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, c.site.BrowseURL)
}

// CategoryPage fetches a single category page by its absolute URL.
func (c *Client) CategoryPage(ctx context.Context, pageURL string) ([]byte, error) {
	return c.fetch(ctx, pageURL)
}

func (c *Client) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, res.StatusCode())
	}
	return res.Body(), nil
}
