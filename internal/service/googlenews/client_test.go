package googlenews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"bitcoin cryptocurrency" - Google News</title>
    <item>
      <title>Bitcoin tops $70k - Example Wire</title>
      <link>https://news.example.com/a</link>
      <pubDate>Fri, 01 Mar 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>ETF inflows &amp; outflows</title>
      <link>https://news.example.com/b</link>
      <pubDate>Fri, 01 Mar 2024 09:30:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

const emptyFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>empty</title></channel></rss>`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:     srv.URL + "/rss/search",
		QuerySuffix: "cryptocurrency",
		UserAgent:   "test-agent",
		Timeout:     time.Second,
	})
}

func TestHeadlines(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rss/search", r.URL.Path)
		assert.Equal(t, "q=bitcoin+cryptocurrency", r.URL.RawQuery)
		assert.Equal(t, "test-agent", r.UserAgent())
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feedFixture))
	})

	items, err := c.Headlines(context.Background(), "bitcoin")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Bitcoin tops $70k - Example Wire", items[0].Title)
	assert.Equal(t, "https://news.example.com/a", items[0].Link)
	assert.Equal(t, "Fri, 01 Mar 2024 10:00:00 GMT", items[0].PublishedAt)
	assert.Equal(t, "ETF inflows & outflows", items[1].Title)
}

func TestHeadlinesEmptyFeed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(emptyFeed))
	})

	items, err := c.Headlines(context.Background(), "optimism")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHeadlinesEscapesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a&b=c cryptocurrency", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(emptyFeed))
	})

	_, err := c.Headlines(context.Background(), "a&b=c")
	require.NoError(t, err)
}

func TestHeadlinesParseError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	})

	_, err := c.Headlines(context.Background(), "aave")
	assert.ErrorContains(t, err, "parse feed")
}

func TestHeadlinesUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Headlines(context.Background(), "aave")
	assert.ErrorContains(t, err, "503")
}

func TestQuery(t *testing.T) {
	assert.Equal(t, "solana cryptocurrency", New(Config{QuerySuffix: "cryptocurrency"}).Query("solana"))
	assert.Equal(t, "solana", New(Config{}).Query("solana"))
}
