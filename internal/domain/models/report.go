package models

import "time"

// AssetReport is everything the dashboard shows for one asset.
type AssetReport struct {
	Asset    Asset
	Summary  Summary
	Forecast Forecast
	News     []NewsItem
}

// Page is the rendered dashboard for one request, reports in configured asset order.
type Page struct {
	Title       string
	GeneratedAt time.Time
	Reports     []AssetReport
}
