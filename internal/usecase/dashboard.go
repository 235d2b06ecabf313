package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"CryptoMonitor/internal/domain/models"
	domrepo "CryptoMonitor/internal/domain/repository"
	domsvc "CryptoMonitor/internal/domain/service"
	applogger "CryptoMonitor/pkg/logger"
)

// Dashboard assembles the per-asset market summary, forecast and headlines
// shown on the index page. Nothing is retained between calls to Build.
type Dashboard struct {
	market     domrepo.MarketData
	news       domrepo.NewsFeed
	aggregator domsvc.Aggregator
	forecaster domsvc.Forecaster
	metrics    domrepo.Metrics
	logger     *applogger.Logger

	assets  []models.Asset
	title   string
	workers int
	now     func() time.Time
}

type DashboardOption func(*Dashboard)

// WithWorkers bounds how many upstream fetches run at once. 1 fetches serially.
func WithWorkers(n int) DashboardOption {
	return func(d *Dashboard) {
		if n > 0 {
			d.workers = n
		}
	}
}

func WithTitle(title string) DashboardOption {
	return func(d *Dashboard) { d.title = title }
}

func WithMetrics(m domrepo.Metrics) DashboardOption {
	return func(d *Dashboard) {
		if m != nil {
			d.metrics = m
		}
	}
}

func WithLogger(l *applogger.Logger) DashboardOption {
	return func(d *Dashboard) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithClock overrides the page timestamp source.
func WithClock(now func() time.Time) DashboardOption {
	return func(d *Dashboard) { d.now = now }
}

func NewDashboard(
	market domrepo.MarketData,
	news domrepo.NewsFeed,
	aggregator domsvc.Aggregator,
	forecaster domsvc.Forecaster,
	assets []models.Asset,
	opts ...DashboardOption,
) *Dashboard {
	d := &Dashboard{
		market:     market,
		news:       news,
		aggregator: aggregator,
		forecaster: forecaster,
		metrics:    domrepo.NopMetrics{},
		logger:     applogger.Nop(),
		assets:     assets,
		title:      "Crypto Monitor",
		workers:    1,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Build fetches market data for every asset, then news for every asset, and
// derives the summaries and forecasts. Any single failure fails the whole page.
func (d *Dashboard) Build(ctx context.Context) (*models.Page, error) {
	start := time.Now()
	defer func() { d.metrics.RecordLatency("dashboard_build", time.Since(start).Seconds()) }()

	prices, err := d.fetchPrices(ctx)
	if err != nil {
		d.metrics.RecordError("market")
		return nil, fmt.Errorf("market data: %w", err)
	}

	news, err := d.fetchNews(ctx)
	if err != nil {
		d.metrics.RecordError("news")
		return nil, fmt.Errorf("news: %w", err)
	}

	page := &models.Page{
		Title:       d.title,
		GeneratedAt: d.now().UTC(),
		Reports:     make([]models.AssetReport, len(d.assets)),
	}
	for i, asset := range d.assets {
		summary, err := d.aggregator.Summarize(prices[i])
		if err != nil {
			d.metrics.RecordError("summary")
			return nil, fmt.Errorf("summary %s: %w", asset, err)
		}
		forecast, err := d.forecaster.Forecast(prices[i])
		if err != nil {
			d.metrics.RecordError("forecast")
			return nil, fmt.Errorf("forecast %s: %w", asset, err)
		}
		page.Reports[i] = models.AssetReport{
			Asset:    asset,
			Summary:  summary,
			Forecast: forecast,
			News:     news[i],
		}
	}

	d.logger.Debug("dashboard built",
		applogger.Int("assets", len(d.assets)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return page, nil
}

func (d *Dashboard) fetchPrices(ctx context.Context) ([][]models.PricePoint, error) {
	out := make([][]models.PricePoint, len(d.assets))
	err := d.forEachAsset(ctx, func(ctx context.Context, i int, asset models.Asset) error {
		t0 := time.Now()
		pts, err := d.market.PriceHistory(ctx, asset)
		d.metrics.RecordFetch("market", asset, time.Since(t0).Seconds())
		if err != nil {
			return err
		}
		if n := len(pts); n > 0 {
			d.metrics.RecordLastPrice(asset, pts[n-1].Price.InexactFloat64())
		}
		d.logger.Debug("price history fetched",
			applogger.String("asset", string(asset)),
			applogger.Int("points", len(pts)),
		)
		out[i] = pts
		return nil
	})
	return out, err
}

func (d *Dashboard) fetchNews(ctx context.Context) ([][]models.NewsItem, error) {
	out := make([][]models.NewsItem, len(d.assets))
	err := d.forEachAsset(ctx, func(ctx context.Context, i int, asset models.Asset) error {
		t0 := time.Now()
		items, err := d.news.Headlines(ctx, asset)
		d.metrics.RecordFetch("news", asset, time.Since(t0).Seconds())
		if err != nil {
			return err
		}
		d.metrics.RecordNewsItems(asset, len(items))
		out[i] = items
		return nil
	})
	return out, err
}

// forEachAsset runs fn for every asset on at most d.workers goroutines. The
// first error cancels the shared context and is returned.
func (d *Dashboard) forEachAsset(ctx context.Context, fn func(ctx context.Context, i int, asset models.Asset) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, asset := range d.assets {
		i, asset := i, asset
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i, asset)
		})
	}
	return g.Wait()
}
