package di

import (
	"fmt"

	"CryptoMonitor/internal/domain/models"
	"CryptoMonitor/internal/domain/repository"
	domsvc "CryptoMonitor/internal/domain/service"
	"CryptoMonitor/internal/handler/web"
	"CryptoMonitor/internal/service/coingecko"
	"CryptoMonitor/internal/service/googlenews"
	"CryptoMonitor/internal/services/analytics"
	"CryptoMonitor/internal/usecase"
	"CryptoMonitor/pkg/config"
	xhttp "CryptoMonitor/pkg/http"
	applogger "CryptoMonitor/pkg/logger"
	"CryptoMonitor/pkg/metrics"
	"CryptoMonitor/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.LogLevel(),
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder, or a no-op one when metrics are off.
func ProvideMetrics(cfg *config.Config) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return repository.NopMetrics{}
	}
	return metrics.New()
}

// ProvideMarketData creates the CoinGecko price history client.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	return coingecko.New(coingecko.Config{
		BaseURL:    cfg.Market.BaseURL,
		VsCurrency: cfg.Market.VsCurrency,
		Days:       cfg.Market.Days,
		Interval:   cfg.Market.Interval,
		Timeout:    cfg.Market.Timeout,
	})
}

// ProvideNewsFeed creates the Google News RSS client.
func ProvideNewsFeed(cfg *config.Config) repository.NewsFeed {
	return googlenews.New(googlenews.Config{
		BaseURL:     cfg.News.BaseURL,
		QuerySuffix: cfg.News.QuerySuffix,
		UserAgent:   cfg.News.UserAgent,
		Timeout:     cfg.News.Timeout,
	})
}

func ProvideAggregator() domsvc.Aggregator {
	return analytics.SummaryAggregator{}
}

// ProvideForecaster reads hour-of-day in UTC, the clock CoinGecko timestamps are in.
func ProvideForecaster() domsvc.Forecaster {
	return analytics.NewLinearForecaster(nil)
}

// ProvideDashboard creates the dashboard use case.
func ProvideDashboard(
	cfg *config.Config,
	market repository.MarketData,
	news repository.NewsFeed,
	agg domsvc.Aggregator,
	forecaster domsvc.Forecaster,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.Dashboard {
	return usecase.NewDashboard(market, news, agg, forecaster,
		models.AssetsFromStrings(cfg.Assets),
		usecase.WithWorkers(cfg.Dashboard.Workers),
		usecase.WithTitle(cfg.Dashboard.Title),
		usecase.WithMetrics(m),
		usecase.WithLogger(l),
	)
}

func ProvideRenderer() (*web.Renderer, error) {
	return web.NewRenderer()
}

func ProvideDashboardHandler(l *applogger.Logger, uc *usecase.Dashboard, r *web.Renderer) *web.DashboardHandler {
	return web.NewDashboardHandler(l, uc, r)
}

// ProvideHTTPServer creates the Echo server with the dashboard routes registered.
func ProvideHTTPServer(cfg *config.Config, h *web.DashboardHandler, l *applogger.Logger) *xhttp.Server {
	return xhttp.NewServer(h,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithDebug(cfg.Server.Debug),
		xhttp.WithMetrics(cfg.Metrics.Enabled, cfg.Metrics.Path),
		xhttp.WithLogger(l),
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server) *server.App {
	return server.New(cfg, l, srv)
}
