package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CryptoMonitor/internal/domain/models"
)

func point(hour int, price float64) models.PricePoint {
	return models.PricePoint{
		Timestamp: day.Add(time.Duration(hour) * time.Hour),
		Price:     decimal.NewFromFloat(price),
	}
}

func TestForecastHasOneValuePerHour(t *testing.T) {
	f := NewLinearForecaster(nil)
	pts := make([]models.PricePoint, 0, 25)
	for h := 0; h < 25; h++ {
		pts = append(pts, point(h, 100+float64(h%7)))
	}

	out, err := f.Forecast(pts)
	require.NoError(t, err)
	assert.Len(t, out, models.ForecastHorizon)
}

func TestForecastConstantPrices(t *testing.T) {
	f := NewLinearForecaster(nil)
	pts := make([]models.PricePoint, 0, 24)
	for h := 0; h < 24; h++ {
		pts = append(pts, point(h, 42.5))
	}

	out, err := f.Forecast(pts)
	require.NoError(t, err)
	for h, v := range out {
		assert.InDelta(t, 42.5, v, 1e-9, "hour %d", h)
	}
}

func TestForecastTwoPointLine(t *testing.T) {
	out, err := NewLinearForecaster(nil).Forecast([]models.PricePoint{
		point(0, 100),
		point(1, 200),
	})
	require.NoError(t, err)

	assert.InDelta(t, 100, out[0], 1e-9)
	assert.InDelta(t, 200, out[1], 1e-9)
	assert.InDelta(t, 300, out[2], 1e-9)
	assert.InDelta(t, 2400, out[23], 1e-9)
}

func TestForecastAscendingHourOrder(t *testing.T) {
	// Points arrive out of order and span midnight; the fit only sees hour-of-day.
	out, err := NewLinearForecaster(nil).Forecast([]models.PricePoint{
		point(23, 33),
		point(10, 20),
		point(24+5, 15),
	})
	require.NoError(t, err)
	for h := 1; h < len(out); h++ {
		assert.Greater(t, out[h], out[h-1], "slope must be positive at hour %d", h)
	}
}

func TestForecastSingleDistinctHour(t *testing.T) {
	out, err := NewLinearForecaster(nil).Forecast([]models.PricePoint{
		point(5, 10),
		point(24+5, 30),
	})
	require.NoError(t, err)
	for _, v := range out {
		assert.InDelta(t, 20, v, 1e-9)
	}
}

func TestForecastUsesLocationForHour(t *testing.T) {
	loc := time.FixedZone("UTC+1", 3600)
	// UTC hours 0 and 1 become local hours 1 and 2.
	out, err := NewLinearForecaster(loc).Forecast([]models.PricePoint{
		point(0, 100),
		point(1, 200),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, out[0], 1e-9)
	assert.InDelta(t, 100, out[1], 1e-9)
}

func TestForecastEmptySeries(t *testing.T) {
	_, err := NewLinearForecaster(nil).Forecast(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}
