package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/cache"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/metrics"
	"github.com/swipto/swipto-api/internal/season"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

const (
	ModeAllTime  = "alltime"
	ModeSeasonal = "season"

	cacheKeyPrefix = "swipto:leaderboard:v1"
)

// Query selects a leaderboard
type Query struct {
	Limit            int
	IncludeSuperlike bool
	// SeasonKey selects seasonal mode; "current" means the season containing now
	SeasonKey string
}

// Item is a ranked coin
type Item struct {
	Rank      int     `json:"rank"`
	CoinID    string  `json:"coinId"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Category  *string `json:"category"`
	LikeCount int     `json:"likeCount"`
}

// Result is a ranked list; Total is the number of items returned
type Result struct {
	Items  []Item       `json:"data"`
	Total  int          `json:"total"`
	Season *season.View `json:"season,omitempty"`
}

// Config holds limits and caching of leaderboard queries
type Config struct {
	DefaultLimit int
	MaxLimit     int
	// CacheTTL of zero disables caching
	CacheTTL time.Duration
}

// Service ranks coins by likes
//
//go:generate mockgen -source=service.go -destination=../mocks/leaderboard.go -package=mocks -mock_names=Service=MockLeaderboardService
type Service interface {
	Get(ctx context.Context, q Query) (*Result, error)
	// Invalidate drops the cached default views after new swipes
	Invalidate(ctx context.Context, seasonKey string)
}

type service struct {
	cfg      Config
	store    store.Store
	resolver season.Resolver
	cache    cache.Cache
	metrics  *metrics.Metrics
}

// NewService creates a leaderboard service; a nil cache disables caching
func NewService(cfg Config, st store.Store, resolver season.Resolver, c cache.Cache, m *metrics.Metrics) Service {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = domain.DEFAULT_LEADERBOARD_LIMIT
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = domain.MAX_LEADERBOARD_LIMIT
	}
	return &service{
		cfg:      cfg,
		store:    st,
		resolver: resolver,
		cache:    c,
		metrics:  m,
	}
}

// NormalizeLimit applies the default to non-positive limits and clamps to max
func NormalizeLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

// CacheKey returns the cache key of a normalized query
func CacheKey(mode string, q Query) string {
	if mode == ModeSeasonal {
		return fmt.Sprintf("%s:%s:%s:%d", cacheKeyPrefix, mode, q.SeasonKey, q.Limit)
	}
	return fmt.Sprintf("%s:%s:%t:%d", cacheKeyPrefix, mode, q.IncludeSuperlike, q.Limit)
}

func (s *service) Get(ctx context.Context, q Query) (*Result, error) {
	q.Limit = NormalizeLimit(q.Limit, s.cfg.DefaultLimit, s.cfg.MaxLimit)

	if q.SeasonKey == "" {
		return s.cached(ctx, ModeAllTime, q, func() (*Result, error) {
			return s.allTime(ctx, q)
		})
	}

	sn, err := s.resolveSeason(ctx, q.SeasonKey)
	if err != nil {
		return nil, err
	}
	q.SeasonKey = sn.Key

	return s.cached(ctx, ModeSeasonal, q, func() (*Result, error) {
		return s.seasonal(ctx, sn, q.Limit)
	})
}

func (s *service) resolveSeason(ctx context.Context, key string) (*schema.Season, error) {
	if key == domain.CURRENT_SEASON_KEY {
		return s.resolver.Current(ctx)
	}
	return s.resolver.ByKey(ctx, key)
}

func (s *service) cached(ctx context.Context, mode string, q Query, compute func() (*Result, error)) (*Result, error) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return compute()
	}

	res, hit, err := cache.UseCache(ctx, s.cache, CacheKey(mode, q), s.cfg.CacheTTL, compute)
	if err != nil {
		var dErr *domain.Error
		if errors.As(err, &dErr) {
			return nil, err
		}
		// a broken cache must not take the leaderboard down
		logger.WarnCtx(ctx, "Leaderboard cache unavailable", zap.Error(err))
		return compute()
	}

	s.metrics.LeaderboardCache(mode, hit)
	return res, nil
}

func (s *service) allTime(ctx context.Context, q Query) (*Result, error) {
	rows, err := s.store.CountLikesByCoin(ctx, domain.LeaderboardActions(q.IncludeSuperlike), q.Limit)
	if err != nil {
		return nil, domain.NewStoreError("failed to count likes", err)
	}

	items, err := s.rank(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &Result{Items: items, Total: len(items)}, nil
}

func (s *service) seasonal(ctx context.Context, sn *schema.Season, limit int) (*Result, error) {
	likes, err := s.store.ListSeasonLikes(ctx, sn.ID, limit)
	if err != nil {
		return nil, domain.NewStoreError("failed to list season likes", err)
	}

	rows := make([]store.CoinCount, 0, len(likes))
	for _, l := range likes {
		rows = append(rows, store.CoinCount{CoinID: l.CoinID, Count: l.Likes})
	}

	items, err := s.rank(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &Result{Items: items, Total: len(items), Season: season.NewView(sn)}, nil
}

// rank joins coin metadata onto rows that are already in leaderboard order
func (s *service) rank(ctx context.Context, rows []store.CoinCount) ([]Item, error) {
	items := make([]Item, 0, len(rows))
	if len(rows) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.CoinID)
	}

	coins, err := s.store.GetCoinsByIDs(ctx, ids)
	if err != nil {
		return nil, domain.NewStoreError("failed to load coin metadata", err)
	}
	byID := make(map[string]schema.Coin, len(coins))
	for _, c := range coins {
		byID[c.CoinID] = c
	}

	for i, r := range rows {
		item := Item{
			Rank:      i + 1,
			CoinID:    r.CoinID,
			LikeCount: r.Count,
		}
		if c, ok := byID[r.CoinID]; ok {
			item.Symbol = c.Symbol
			item.Name = c.Name
			item.Category = c.Category
		} else {
			fallback := domain.CoinFallback(r.CoinID)
			item.Symbol = fallback.Symbol
			item.Name = fallback.Name
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *service) Invalidate(ctx context.Context, seasonKey string) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return
	}

	keys := []string{
		CacheKey(ModeAllTime, Query{Limit: s.cfg.DefaultLimit}),
		CacheKey(ModeAllTime, Query{Limit: s.cfg.DefaultLimit, IncludeSuperlike: true}),
	}
	if seasonKey != "" {
		keys = append(keys, CacheKey(ModeSeasonal, Query{Limit: s.cfg.DefaultLimit, SeasonKey: seasonKey}))
	}

	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			logger.WarnCtx(ctx, "Failed to invalidate leaderboard cache", zap.String("key", key), zap.Error(err))
		}
	}
}
