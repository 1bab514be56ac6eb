package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/swipto/swipto-api/internal/adapter"
)

const (
	DefaultVsCurrency = "usd"
	// MaxPerPage is the largest page the markets endpoint serves
	MaxPerPage = 250
)

// Market is one row of the coins/markets endpoint
type Market struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	Image                    string   `json:"image"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *int     `json:"market_cap_rank"`
	TotalVolume              *float64 `json:"total_volume"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

// MarketQuery selects a page of the markets endpoint, ordered by market cap
type MarketQuery struct {
	VsCurrency string
	Category   string
	PerPage    int
	Page       int
}

// Client defines the interface for CoinGecko client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/coingecko_client.go -package=mocks -mock_names=Client=MockCoinGeckoClient
type Client interface {
	// ListMarkets fetches a page of coins ordered by market cap descending
	ListMarkets(ctx context.Context, q MarketQuery) ([]Market, error)
}

// CoinGeckoClient implements CoinGecko client
type CoinGeckoClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
	apiKey     string
}

// NewClient creates a new CoinGecko client
func NewClient(httpClient adapter.HTTPClient, baseURL string, apiKey string) Client {
	return &CoinGeckoClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// ListMarkets fetches a page of coins ordered by market cap descending
func (c *CoinGeckoClient) ListMarkets(ctx context.Context, q MarketQuery) ([]Market, error) {
	if q.VsCurrency == "" {
		q.VsCurrency = DefaultVsCurrency
	}
	if q.PerPage <= 0 || q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	params := url.Values{}
	params.Set("vs_currency", q.VsCurrency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(q.PerPage))
	params.Set("page", strconv.Itoa(q.Page))
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	headers := map[string]string{}
	if c.apiKey != "" {
		headers["x-cg-demo-api-key"] = c.apiKey
	}

	var markets []Market
	if err := c.httpClient.Get(ctx, fmt.Sprintf("%s/coins/markets?%s", c.baseURL, params.Encode()), headers, &markets); err != nil {
		return nil, fmt.Errorf("failed to call CoinGecko markets API: %w", err)
	}

	return markets, nil
}
