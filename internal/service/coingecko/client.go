package coingecko

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"CryptoMonitor/internal/domain/models"
	drepo "CryptoMonitor/internal/domain/repository"
	xhttp "CryptoMonitor/pkg/http"
)

// ErrMissingPrices is returned when the response body has no "prices" field.
var ErrMissingPrices = errors.New("coingecko: response has no prices")

// ErrNullPrice is returned when a prices pair holds a null timestamp or price.
var ErrNullPrice = errors.New("coingecko: null value in prices")

type Config struct {
	BaseURL    string
	VsCurrency string
	Days       string
	Interval   string
	Timeout    time.Duration
}

// Client fetches market_chart price history from the CoinGecko REST API.
type Client struct {
	cfg  Config
	http *xhttp.Client
}

func New(cfg Config, opts ...xhttp.ClientOption) *Client {
	opts = append([]xhttp.ClientOption{xhttp.WithTimeout(cfg.Timeout)}, opts...)
	return &Client{
		cfg:  cfg,
		http: xhttp.NewClient(opts...),
	}
}

type marketChart struct {
	// Pointers so a missing or null value is told apart from an empty array or zero.
	Prices *[][]*decimal.Decimal `json:"prices"`
}

// PriceHistory returns the asset's prices over the configured window, in API order.
func (c *Client) PriceHistory(ctx context.Context, asset models.Asset) ([]models.PricePoint, error) {
	query := map[string][]string{
		"vs_currency": {c.cfg.VsCurrency},
		"days":        {c.cfg.Days},
	}
	if c.cfg.Interval != "" {
		query["interval"] = []string{c.cfg.Interval}
	}

	var mc marketChart
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.chartURL(asset),
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: query,
	}, &mc)
	if err != nil {
		return nil, fmt.Errorf("coingecko: %s: %w", asset, err)
	}
	if mc.Prices == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPrices, asset)
	}

	points := make([]models.PricePoint, 0, len(*mc.Prices))
	for i, pair := range *mc.Prices {
		if len(pair) != 2 {
			return nil, fmt.Errorf("coingecko: %s: prices[%d] has %d elements, want 2", asset, i, len(pair))
		}
		if pair[0] == nil || pair[1] == nil {
			return nil, fmt.Errorf("%w: %s: prices[%d]", ErrNullPrice, asset, i)
		}
		points = append(points, models.PricePoint{
			Timestamp: time.UnixMilli(pair[0].IntPart()).UTC(),
			Price:     *pair[1],
		})
	}
	return points, nil
}

func (c *Client) chartURL(asset models.Asset) string {
	return fmt.Sprintf("%s/coins/%s/market_chart",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(string(asset)))
}

var _ drepo.MarketData = (*Client)(nil)
