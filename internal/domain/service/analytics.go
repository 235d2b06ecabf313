package service

import "CryptoMonitor/internal/domain/models"

// Forecaster predicts one price per hour of day from an observed series.
type Forecaster interface {
	Forecast(points []models.PricePoint) (models.Forecast, error)
}

// Aggregator reduces an observed series to its summary statistics.
type Aggregator interface {
	Summarize(points []models.PricePoint) (models.Summary, error)
}
