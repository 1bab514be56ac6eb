package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/cache"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/providers/vendors/coingecko"
)

const (
	DefaultTop = 100
	CacheTTL   = 60 * time.Second

	cacheKeyPrefix = "swipto:markets:v1"
)

// Filter narrows a market listing. Nil bounds are not applied.
type Filter struct {
	VsCurrency string
	Category   string
	// Top is the number of coins by market cap to consider before price and volume filters
	Top       int
	PriceMin  *float64
	PriceMax  *float64
	VolumeMin *float64
	VolumeMax *float64
}

// Listing is a coin card as shown to swipers
type Listing struct {
	CoinID    string   `json:"coinId"`
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Image     string   `json:"image,omitempty"`
	Price     *float64 `json:"price"`
	MarketCap *float64 `json:"marketCap"`
	Rank      *int     `json:"rank"`
	Volume    *float64 `json:"volume"`
	Change24h *float64 `json:"change24h"`
}

// Service lists coins from the market-data provider
//
//go:generate mockgen -source=service.go -destination=../mocks/market.go -package=mocks -mock_names=Service=MockMarketService
type Service interface {
	List(ctx context.Context, f Filter) ([]Listing, error)
}

type service struct {
	client coingecko.Client
	cache  cache.Cache
}

// NewService creates a market service; a nil cache disables caching
func NewService(client coingecko.Client, c cache.Cache) Service {
	return &service{client: client, cache: c}
}

func (f *Filter) normalize() error {
	f.VsCurrency = strings.ToLower(strings.TrimSpace(f.VsCurrency))
	if f.VsCurrency == "" {
		f.VsCurrency = coingecko.DefaultVsCurrency
	}
	f.Category = strings.TrimSpace(f.Category)

	if f.Top <= 0 {
		f.Top = DefaultTop
	}
	if f.Top > coingecko.MaxPerPage {
		f.Top = coingecko.MaxPerPage
	}

	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return domain.NewValidationError("priceMin must not exceed priceMax")
	}
	if f.VolumeMin != nil && f.VolumeMax != nil && *f.VolumeMin > *f.VolumeMax {
		return domain.NewValidationError("volumeMin must not exceed volumeMax")
	}

	return nil
}

func (s *service) List(ctx context.Context, f Filter) ([]Listing, error) {
	if err := f.normalize(); err != nil {
		return nil, err
	}

	markets, err := s.fetch(ctx, f)
	if err != nil {
		return nil, domain.NewStoreError("failed to fetch markets", err)
	}

	listings := make([]Listing, 0, len(markets))
	for _, m := range markets {
		if !f.matches(m) {
			continue
		}
		listings = append(listings, Listing{
			CoinID:    m.ID,
			Symbol:    domain.NormalizeSymbol(m.Symbol, m.ID),
			Name:      m.Name,
			Image:     m.Image,
			Price:     m.CurrentPrice,
			MarketCap: m.MarketCap,
			Rank:      m.MarketCapRank,
			Volume:    m.TotalVolume,
			Change24h: m.PriceChangePercentage24h,
		})
	}

	return listings, nil
}

func (s *service) fetch(ctx context.Context, f Filter) ([]coingecko.Market, error) {
	query := coingecko.MarketQuery{
		VsCurrency: f.VsCurrency,
		Category:   f.Category,
		PerPage:    f.Top,
		Page:       1,
	}
	call := func() ([]coingecko.Market, error) {
		return s.client.ListMarkets(ctx, query)
	}

	if s.cache == nil {
		return call()
	}

	key := fmt.Sprintf("%s:%s:%s:%d", cacheKeyPrefix, f.VsCurrency, f.Category, f.Top)
	var upstreamErr error
	markets, _, err := cache.UseCache(ctx, s.cache, key, CacheTTL, func() ([]coingecko.Market, error) {
		m, err := call()
		upstreamErr = err
		return m, err
	})
	if err != nil {
		if upstreamErr != nil {
			return nil, upstreamErr
		}
		logger.WarnCtx(ctx, "Market cache unavailable", zap.Error(err))
		return call()
	}

	return markets, nil
}

// matches applies the price and volume bounds; coins without a value fail any bound on it
func (f *Filter) matches(m coingecko.Market) bool {
	if !within(m.CurrentPrice, f.PriceMin, f.PriceMax) {
		return false
	}
	return within(m.TotalVolume, f.VolumeMin, f.VolumeMax)
}

func within(v, lo, hi *float64) bool {
	if lo == nil && hi == nil {
		return true
	}
	if v == nil {
		return false
	}
	if lo != nil && *v < *lo {
		return false
	}
	if hi != nil && *v > *hi {
		return false
	}
	return true
}
