package repository

import (
	"context"

	"CryptoMonitor/internal/domain/models"
)

// MarketData returns the recent price history of an asset.
type MarketData interface {
	PriceHistory(ctx context.Context, asset models.Asset) ([]models.PricePoint, error)
}

// NewsFeed returns recent headlines mentioning an asset.
type NewsFeed interface {
	Headlines(ctx context.Context, asset models.Asset) ([]models.NewsItem, error)
}

// Metrics records upstream fetch and dashboard build observations.
type Metrics interface {
	RecordFetch(source string, asset models.Asset, seconds float64)
	RecordError(kind string)
	RecordLastPrice(asset models.Asset, price float64)
	RecordNewsItems(asset models.Asset, n int)
	RecordLatency(op string, seconds float64)
}

// NopMetrics discards all observations.
type NopMetrics struct{}

func (NopMetrics) RecordFetch(string, models.Asset, float64) {}
func (NopMetrics) RecordError(string)                        {}
func (NopMetrics) RecordLastPrice(models.Asset, float64)     {}
func (NopMetrics) RecordNewsItems(models.Asset, int)         {}
func (NopMetrics) RecordLatency(string, float64)             {}
