package googlenews

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"CryptoMonitor/internal/domain/models"
	drepo "CryptoMonitor/internal/domain/repository"
	xhttp "CryptoMonitor/pkg/http"
)

type Config struct {
	BaseURL     string
	QuerySuffix string // appended to the asset name, e.g. "cryptocurrency"
	UserAgent   string
	Timeout     time.Duration
}

// Client searches the Google News RSS feed for headlines about an asset.
type Client struct {
	cfg  Config
	http *xhttp.Client
}

func New(cfg Config, opts ...xhttp.ClientOption) *Client {
	base := []xhttp.ClientOption{xhttp.WithTimeout(cfg.Timeout)}
	if cfg.UserAgent != "" {
		base = append(base, xhttp.WithUserAgent(cfg.UserAgent))
	}
	return &Client{
		cfg:  cfg,
		http: xhttp.NewClient(append(base, opts...)...),
	}
}

// Headlines returns every item of the search feed. An empty feed is not an error.
func (c *Client) Headlines(ctx context.Context, asset models.Asset) ([]models.NewsItem, error) {
	var body []byte
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.cfg.BaseURL,
		QueryParams: map[string][]string{"q": {c.Query(asset)}},
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("google news: %s: %w", asset, err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("google news: %s: parse feed: %w", asset, err)
	}

	items := make([]models.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		items = append(items, models.NewsItem{
			Title:       it.Title,
			Link:        it.Link,
			PublishedAt: it.Published,
		})
	}
	return items, nil
}

// Query is the search term sent for an asset.
func (c *Client) Query(asset models.Asset) string {
	return strings.TrimSpace(string(asset) + " " + c.cfg.QuerySuffix)
}

var _ drepo.NewsFeed = (*Client)(nil)
