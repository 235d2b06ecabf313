//go:build wireinject
// +build wireinject

package di

import (
	"CryptoMonitor/pkg/config"
	"CryptoMonitor/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Upstream clients
		ProvideMarketData,
		ProvideNewsFeed,

		// Analytics
		ProvideAggregator,
		ProvideForecaster,

		// Use cases
		ProvideDashboard,

		// HTTP
		ProvideRenderer,
		ProvideDashboardHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
