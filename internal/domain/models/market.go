package models

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ForecastHorizon is the number of hour-of-day slots a forecast covers.
const ForecastHorizon = 24

// Asset is a tracked cryptocurrency, identified by its lowercase CoinGecko slug.
type Asset string

// DisplayName upper-cases the first letter of the slug and lower-cases the
// rest ("binancecoin" -> "Binancecoin", "matic-network" -> "Matic-network").
func (a Asset) DisplayName() string {
	s := string(a)
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

func (a Asset) String() string { return string(a) }

// AssetsFromStrings converts configured slugs to assets, preserving order.
func AssetsFromStrings(ss []string) []Asset {
	out := make([]Asset, len(ss))
	for i, s := range ss {
		out[i] = Asset(s)
	}
	return out
}

// PricePoint is one observed price, ordered by time within a series.
type PricePoint struct {
	Timestamp time.Time
	Price     decimal.Decimal
}

// Summary holds the observed-window statistics of one price series.
type Summary struct {
	High decimal.Decimal
	Low  decimal.Decimal
	Mean decimal.Decimal
}

// Forecast holds one predicted price per hour of day, index 0..23.
type Forecast [ForecastHorizon]float64
