package analytics

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"CryptoMonitor/internal/domain/models"
	domsvc "CryptoMonitor/internal/domain/service"
)

// LinearForecaster fits price = intercept + slope*hour over the observed
// series and predicts every hour of the day.
type LinearForecaster struct {
	// Location sets the clock the hour-of-day feature is read in. Nil means UTC.
	Location *time.Location
}

func NewLinearForecaster(loc *time.Location) *LinearForecaster {
	return &LinearForecaster{Location: loc}
}

func (f *LinearForecaster) Forecast(points []models.PricePoint) (models.Forecast, error) {
	var out models.Forecast
	if len(points) == 0 {
		return out, ErrEmptySeries
	}

	hours := make([]float64, len(points))
	prices := make([]float64, len(points))
	distinct := make(map[int]struct{}, models.ForecastHorizon)
	for i, p := range points {
		h := f.hourOf(p.Timestamp)
		distinct[h] = struct{}{}
		hours[i] = float64(h)
		prices[i] = p.Price.InexactFloat64()
	}

	intercept, slope := fit(hours, prices, len(distinct))
	for h := range out {
		out[h] = intercept + slope*float64(h)
	}
	return out, nil
}

// fit returns the least-squares line. With fewer than two distinct x values
// the slope is undetermined; the minimum-norm solution is the flat line
// through the mean.
func fit(xs, ys []float64, distinct int) (intercept, slope float64) {
	if distinct < 2 {
		return stat.Mean(ys, nil), 0
	}
	return stat.LinearRegression(xs, ys, nil, false)
}

func (f *LinearForecaster) hourOf(t time.Time) int {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Hour()
}

var _ domsvc.Forecaster = (*LinearForecaster)(nil)
