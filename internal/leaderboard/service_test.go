package leaderboard_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipto/swipto-api/internal/cache"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/leaderboard"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/metrics"
	"github.com/swipto/swipto-api/internal/mocks"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var defaultConfig = leaderboard.Config{DefaultLimit: 20, MaxLimit: 100}

func stringPtr(s string) *string {
	return &s
}

func buildSeason() *schema.Season {
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	return &schema.Season{
		ID:       3,
		Key:      "2025-09",
		Name:     "Season 2025-09",
		StartsAt: start,
		EndsAt:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "missing", limit: 0, expected: 20},
		{name: "negative", limit: -5, expected: 20},
		{name: "in range", limit: 7, expected: 7},
		{name: "minimum", limit: 1, expected: 1},
		{name: "above max", limit: 1000, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, leaderboard.NormalizeLimit(tt.limit, 20, 100))
		})
	}
}

func TestGet_AllTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	svc := leaderboard.NewService(defaultConfig, st, mocks.NewMockSeasonResolver(ctrl), nil, nil)

	st.EXPECT().
		CountLikesByCoin(gomock.Any(), []domain.Action{domain.ActionLike}, 10).
		Return([]store.CoinCount{{CoinID: "btc", Count: 2}, {CoinID: "eth", Count: 1}}, nil)
	st.EXPECT().
		GetCoinsByIDs(gomock.Any(), []string{"btc", "eth"}).
		Return([]schema.Coin{{CoinID: "eth", Symbol: "ETH", Name: "Ethereum", Category: stringPtr("layer-1")}}, nil)

	res, err := svc.Get(context.Background(), leaderboard.Query{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Nil(t, res.Season)
	assert.Equal(t, []leaderboard.Item{
		{Rank: 1, CoinID: "btc", Symbol: "BTC", Name: "btc", Category: nil, LikeCount: 2},
		{Rank: 2, CoinID: "eth", Symbol: "ETH", Name: "Ethereum", Category: stringPtr("layer-1"), LikeCount: 1},
	}, res.Items)
}

func TestGet_AllTimeWithSuperlikeAndClamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	svc := leaderboard.NewService(defaultConfig, st, mocks.NewMockSeasonResolver(ctrl), nil, nil)

	st.EXPECT().
		CountLikesByCoin(gomock.Any(), []domain.Action{domain.ActionLike, domain.ActionSuperlike}, 100).
		Return(nil, nil)

	res, err := svc.Get(context.Background(), leaderboard.Query{Limit: 500, IncludeSuperlike: true})
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Total)
}

func TestGet_Seasonal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	resolver := mocks.NewMockSeasonResolver(ctrl)
	svc := leaderboard.NewService(defaultConfig, st, resolver, nil, nil)
	sn := buildSeason()

	resolver.EXPECT().Current(gomock.Any()).Return(sn, nil)
	st.EXPECT().ListSeasonLikes(gomock.Any(), uint64(3), 20).Return([]schema.SeasonLike{
		{SeasonID: 3, CoinID: "sol", Likes: 9},
		{SeasonID: 3, CoinID: "ada", Likes: 4},
	}, nil)
	st.EXPECT().GetCoinsByIDs(gomock.Any(), []string{"sol", "ada"}).Return([]schema.Coin{
		{CoinID: "sol", Symbol: "SOL", Name: "Solana"},
		{CoinID: "ada", Symbol: "ADA", Name: "Cardano"},
	}, nil)

	res, err := svc.Get(context.Background(), leaderboard.Query{SeasonKey: "current"})
	require.NoError(t, err)
	require.NotNil(t, res.Season)
	assert.Equal(t, "2025-09", res.Season.Key)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.Items[0].Rank)
	assert.Equal(t, "SOL", res.Items[0].Symbol)
	assert.Equal(t, 9, res.Items[0].LikeCount)
	assert.Equal(t, 2, res.Items[1].Rank)
}

func TestGet_SeasonalErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	resolver := mocks.NewMockSeasonResolver(ctrl)
	svc := leaderboard.NewService(defaultConfig, st, resolver, nil, nil)

	resolver.EXPECT().ByKey(gomock.Any(), "2024-01").
		Return(nil, domain.NewNotFoundError("Season not found", domain.ErrSeasonNotFound))
	_, err := svc.Get(context.Background(), leaderboard.Query{SeasonKey: "2024-01"})
	assert.True(t, domain.IsNotFound(err))

	resolver.EXPECT().ByKey(gomock.Any(), "2025-09").Return(buildSeason(), nil)
	st.EXPECT().ListSeasonLikes(gomock.Any(), uint64(3), 20).Return(nil, errors.New("timeout"))
	_, err = svc.Get(context.Background(), leaderboard.Query{SeasonKey: "2025-09"})
	assert.Equal(t, domain.KindStore, domain.KindOf(err))
}

func TestGet_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	m := metrics.New()
	cfg := defaultConfig
	cfg.CacheTTL = time.Minute
	svc := leaderboard.NewService(cfg, st, mocks.NewMockSeasonResolver(ctrl), cache.NewLocal(100, time.Minute), m)

	st.EXPECT().CountLikesByCoin(gomock.Any(), gomock.Any(), 20).
		Return([]store.CoinCount{{CoinID: "btc", Count: 2}}, nil).
		Times(2)
	st.EXPECT().GetCoinsByIDs(gomock.Any(), []string{"btc"}).Return(nil, nil).Times(2)

	first, err := svc.Get(context.Background(), leaderboard.Query{})
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), leaderboard.Query{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	svc.Invalidate(context.Background(), "2025-09")

	third, err := svc.Get(context.Background(), leaderboard.Query{})
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestGet_CacheFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	c := mocks.NewMockCache(ctrl)
	cfg := defaultConfig
	cfg.CacheTTL = time.Minute
	svc := leaderboard.NewService(cfg, st, mocks.NewMockSeasonResolver(ctrl), c, nil)

	c.EXPECT().Get(gomock.Any(), "swipto:leaderboard:v1:alltime:false:20", gomock.Any()).Return(errors.New("redis: connection refused"))
	st.EXPECT().CountLikesByCoin(gomock.Any(), gomock.Any(), 20).Return(nil, nil)

	res, err := svc.Get(context.Background(), leaderboard.Query{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "swipto:leaderboard:v1:alltime:true:10",
		leaderboard.CacheKey(leaderboard.ModeAllTime, leaderboard.Query{Limit: 10, IncludeSuperlike: true}))
	assert.Equal(t, "swipto:leaderboard:v1:season:2025-09:20",
		leaderboard.CacheKey(leaderboard.ModeSeasonal, leaderboard.Query{Limit: 20, SeasonKey: "2025-09"}))
}
