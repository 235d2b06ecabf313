package analytics

import (
	"errors"

	"github.com/shopspring/decimal"

	"CryptoMonitor/internal/domain/models"
	domsvc "CryptoMonitor/internal/domain/service"
)

// ErrEmptySeries is returned when a price series has no points.
var ErrEmptySeries = errors.New("analytics: empty price series")

// Summarize returns the max, min and arithmetic mean of the series prices.
func Summarize(points []models.PricePoint) (models.Summary, error) {
	if len(points) == 0 {
		return models.Summary{}, ErrEmptySeries
	}
	rest := make([]decimal.Decimal, 0, len(points)-1)
	for _, p := range points[1:] {
		rest = append(rest, p.Price)
	}
	first := points[0].Price
	return models.Summary{
		High: decimal.Max(first, rest...),
		Low:  decimal.Min(first, rest...),
		Mean: decimal.Avg(first, rest...),
	}, nil
}

// SummaryAggregator adapts Summarize to the Aggregator interface.
type SummaryAggregator struct{}

func (SummaryAggregator) Summarize(points []models.PricePoint) (models.Summary, error) {
	return Summarize(points)
}

var _ domsvc.Aggregator = SummaryAggregator{}
