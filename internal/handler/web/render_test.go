package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CryptoMonitor/internal/domain/models"
)

func render(t *testing.T, page *models.Page) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, page))
	return buf.String()
}

func report(asset models.Asset, news ...models.NewsItem) models.AssetReport {
	var f models.Forecast
	for h := range f {
		f[h] = 100 + float64(h)*0.5
	}
	return models.AssetReport{
		Asset: asset,
		Summary: models.Summary{
			High: decimal.RequireFromString("30.456"),
			Low:  decimal.NewFromInt(10),
			Mean: decimal.RequireFromString("20.004"),
		},
		Forecast: f,
		News:     news,
	}
}

func TestRenderTableRow(t *testing.T) {
	html := render(t, &models.Page{
		Title:       "Crypto Monitor",
		GeneratedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Reports:     []models.AssetReport{report("binancecoin")},
	})

	assert.Contains(t, html, "<title>Crypto Monitor</title>")
	assert.Contains(t, html, "<td>Binancecoin</td>")
	assert.Contains(t, html, "<td>30.46</td>")
	assert.Contains(t, html, "<td>10.00</td>")
	assert.Contains(t, html, "<td>20.00</td>")
	assert.Contains(t, html, "100.00, 100.50, 101.00")
	assert.Contains(t, html, "111.50</td>")
	assert.Equal(t, 1, strings.Count(html, `class="asset-row"`))
}

func TestRenderEmptyNewsSection(t *testing.T) {
	html := render(t, &models.Page{Reports: []models.AssetReport{report("solana")}})

	assert.Contains(t, html, "<h3>Solana</h3>")
	assert.NotContains(t, html, "<p><a")
	assert.Equal(t, 1, strings.Count(html, `<section class="news">`))
}

func TestRenderNewsItems(t *testing.T) {
	html := render(t, &models.Page{Reports: []models.AssetReport{
		report("bitcoin",
			models.NewsItem{Title: "BTC rallies", Link: "https://news.example.com/a", PublishedAt: "Fri, 01 Mar 2024 10:00:00 GMT"},
			models.NewsItem{Title: "Miners", Link: "https://news.example.com/b", PublishedAt: "Fri, 01 Mar 2024 09:00:00 GMT"},
		),
	}})

	assert.Contains(t, html, `<p><a href="https://news.example.com/a">BTC rallies</a> (Fri, 01 Mar 2024 10:00:00 GMT)</p>`)
	assert.Equal(t, 2, strings.Count(html, "<p><a "))
}

func TestRenderEscapesUpstreamText(t *testing.T) {
	html := render(t, &models.Page{Reports: []models.AssetReport{
		report("aave", models.NewsItem{
			Title:       `<script>alert("x")</script>`,
			Link:        "javascript:alert(1)",
			PublishedAt: "<b>now</b>",
		}),
	}})

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>now</b>")
	assert.NotContains(t, html, `href="javascript:`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestFormatForecastHas24Tokens(t *testing.T) {
	var f models.Forecast
	tokens := strings.Split(formatForecast(f), ", ")
	assert.Len(t, tokens, models.ForecastHorizon)
	assert.Equal(t, "0.00", tokens[0])
}
