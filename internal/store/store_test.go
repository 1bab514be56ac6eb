package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipto/swipto-api/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testEpoch = time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

func buildTestCoin(coinID, symbol string) UpsertCoinInput {
	return UpsertCoinInput{
		CoinID: coinID,
		Symbol: symbol,
		Name:   fmt.Sprintf("%s coin", coinID),
	}
}

func buildTestSwipe(userID, coinID string, action domain.Action, at time.Time) CreateSwipeInput {
	return CreateSwipeInput{
		ID:        ulid.Make().String(),
		UserID:    userID,
		CoinID:    coinID,
		Action:    action,
		CreatedAt: at,
	}
}

func buildTestBadge(key string, target int) UpsertBadgeInput {
	return UpsertBadgeInput{
		Key:         key,
		Name:        fmt.Sprintf("Badge %s", key),
		Description: fmt.Sprintf("Like %d coins in 24 hours", target),
		Target:      target,
		WindowHours: 24,
		Icon:        "ThumbsUp",
	}
}

func buildTestSeason(at time.Time) UpsertSeasonInput {
	start, end := domain.MonthRange(at)
	key := domain.MonthKey(at)
	return UpsertSeasonInput{
		Key:      key,
		Name:     domain.SeasonName(key),
		StartsAt: start,
		EndsAt:   end,
	}
}

func seedCoins(t *testing.T, store Store, coinIDs ...string) {
	t.Helper()
	require.NoError(t, store.EnsureCoins(context.Background(), coinIDs))
}

func stringPtr(s string) *string {
	return &s
}

// =============================================================================
// Test: Coins
// =============================================================================

func testCoins(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert creates and refreshes metadata", func(t *testing.T) {
		input := buildTestCoin("bitcoin", "btc")
		input.Category = stringPtr("layer-1")
		require.NoError(t, store.UpsertCoin(ctx, input))

		coins, err := store.GetCoinsByIDs(ctx, []string{"bitcoin"})
		require.NoError(t, err)
		require.Len(t, coins, 1)
		assert.Equal(t, "BTC", coins[0].Symbol)
		assert.Equal(t, "bitcoin coin", coins[0].Name)
		require.NotNil(t, coins[0].Category)
		assert.Equal(t, "layer-1", *coins[0].Category)

		require.NoError(t, store.UpsertCoin(ctx, UpsertCoinInput{CoinID: "bitcoin", Symbol: "xbt", Name: "Bitcoin"}))

		coins, err = store.GetCoinsByIDs(ctx, []string{"bitcoin"})
		require.NoError(t, err)
		require.Len(t, coins, 1)
		assert.Equal(t, "XBT", coins[0].Symbol)
		assert.Equal(t, "Bitcoin", coins[0].Name)
		require.NotNil(t, coins[0].Category, "nil category keeps the stored one")
		assert.Equal(t, "layer-1", *coins[0].Category)
	})

	t.Run("upsert with empty symbol and name falls back to id", func(t *testing.T) {
		require.NoError(t, store.UpsertCoin(ctx, UpsertCoinInput{CoinID: "dogwifhat"}))

		coins, err := store.GetCoinsByIDs(ctx, []string{"dogwifhat"})
		require.NoError(t, err)
		require.Len(t, coins, 1)
		assert.Equal(t, "DOGWIFHAT", coins[0].Symbol)
		assert.Equal(t, "dogwifhat", coins[0].Name)
	})

	t.Run("upsert without id fails", func(t *testing.T) {
		assert.Error(t, store.UpsertCoin(ctx, UpsertCoinInput{Symbol: "ETH"}))
	})

	t.Run("ensure coins keeps existing metadata", func(t *testing.T) {
		require.NoError(t, store.UpsertCoin(ctx, buildTestCoin("ethereum", "eth")))
		require.NoError(t, store.EnsureCoins(ctx, []string{"ethereum", "solana", "solana", ""}))

		coins, err := store.GetCoinsByIDs(ctx, []string{"ethereum", "solana"})
		require.NoError(t, err)
		require.Len(t, coins, 2)

		byID := map[string]string{}
		for _, c := range coins {
			byID[c.CoinID] = c.Symbol
		}
		assert.Equal(t, "ETH", byID["ethereum"])
		assert.Equal(t, "SOLANA", byID["solana"])
	})

	t.Run("get coins by empty ids", func(t *testing.T) {
		coins, err := store.GetCoinsByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, coins)
	})

	t.Run("ensure coins with no ids is a no-op", func(t *testing.T) {
		assert.NoError(t, store.EnsureCoins(ctx, []string{}))
	})
}

// =============================================================================
// Test: Swipes
// =============================================================================

func testSwipes(t *testing.T, store Store) {
	ctx := context.Background()
	seedCoins(t, store, "bitcoin", "ethereum", "solana", "pepe")

	swipes := []CreateSwipeInput{
		buildTestSwipe("u1", "ethereum", domain.ActionLike, testEpoch),
		buildTestSwipe("u2", "ethereum", domain.ActionLike, testEpoch.Add(time.Minute)),
		buildTestSwipe("u1", "bitcoin", domain.ActionLike, testEpoch.Add(2*time.Minute)),
		buildTestSwipe("u2", "bitcoin", domain.ActionLike, testEpoch.Add(3*time.Minute)),
		buildTestSwipe("u3", "solana", domain.ActionLike, testEpoch.Add(-48*time.Hour)),
		buildTestSwipe("u3", "pepe", domain.ActionSuperlike, testEpoch),
		buildTestSwipe("u3", "pepe", domain.ActionSuperlike, testEpoch),
		buildTestSwipe("u3", "pepe", domain.ActionSuperlike, testEpoch),
		buildTestSwipe("u1", "solana", domain.ActionDislike, testEpoch),
	}
	for _, s := range swipes {
		created, err := store.CreateSwipe(ctx, s)
		require.NoError(t, err)
		assert.Equal(t, s.ID, created.ID)
	}

	t.Run("count likes ties ordered by coin id", func(t *testing.T) {
		counts, err := store.CountLikesByCoin(ctx, domain.LeaderboardActions(false), 0)
		require.NoError(t, err)
		require.Len(t, counts, 3)
		assert.Equal(t, CoinCount{CoinID: "bitcoin", Count: 2}, counts[0])
		assert.Equal(t, CoinCount{CoinID: "ethereum", Count: 2}, counts[1])
		assert.Equal(t, CoinCount{CoinID: "solana", Count: 1}, counts[2])
	})

	t.Run("count with superlike included", func(t *testing.T) {
		counts, err := store.CountLikesByCoin(ctx, domain.LeaderboardActions(true), 2)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, CoinCount{CoinID: "pepe", Count: 3}, counts[0])
		assert.Equal(t, CoinCount{CoinID: "bitcoin", Count: 2}, counts[1])
	})

	t.Run("count between bounds excludes the upper bound", func(t *testing.T) {
		counts, err := store.CountSwipesByCoinBetween(ctx,
			[]domain.Action{domain.ActionLike}, testEpoch, testEpoch.Add(2*time.Minute))
		require.NoError(t, err)
		require.Len(t, counts, 1)
		assert.Equal(t, CoinCount{CoinID: "ethereum", Count: 2}, counts[0])

		counts, err = store.CountSwipesByCoinBetween(ctx,
			[]domain.Action{domain.ActionLike}, testEpoch, testEpoch.Add(2*time.Minute+time.Microsecond))
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, CoinCount{CoinID: "ethereum", Count: 2}, counts[0])
		assert.Equal(t, CoinCount{CoinID: "bitcoin", Count: 1}, counts[1])
	})

	t.Run("swipe in the last millisecond of the month counts for that month", func(t *testing.T) {
		seedCoins(t, store, "dogecoin")
		lastInstant := time.Date(2025, time.September, 30, 23, 59, 59, 999500000, time.UTC)
		_, err := store.CreateSwipe(ctx, buildTestSwipe("u4", "dogecoin", domain.ActionLike, lastInstant))
		require.NoError(t, err)

		start, next := domain.MonthWindow(testEpoch)
		counts, err := store.CountSwipesByCoinBetween(ctx, []domain.Action{domain.ActionLike}, start, next)
		require.NoError(t, err)
		assert.Contains(t, counts, CoinCount{CoinID: "dogecoin", Count: 1})

		start, next = domain.MonthWindow(next)
		counts, err = store.CountSwipesByCoinBetween(ctx, []domain.Action{domain.ActionLike}, start, next)
		require.NoError(t, err)
		assert.Empty(t, counts)
	})

	t.Run("swipe on unknown coin violates foreign key", func(t *testing.T) {
		_, err := store.CreateSwipe(ctx, buildTestSwipe("u1", "unknown-coin", domain.ActionLike, testEpoch))
		assert.Error(t, err)
	})
}

// =============================================================================
// Test: Challenge Progress
// =============================================================================

func testChallengeProgress(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing progress returns nil", func(t *testing.T) {
		progress, err := store.GetChallengeProgress(ctx, "nobody", domain.DEFAULT_CHALLENGE_KEY)
		require.NoError(t, err)
		assert.Nil(t, progress)
	})

	t.Run("reset then guarded increment", func(t *testing.T) {
		progress, err := store.ResetChallengeProgress(ctx, "u1", "like_24h", testEpoch)
		require.NoError(t, err)
		require.NotNil(t, progress)
		assert.NotZero(t, progress.ID)
		assert.Equal(t, 1, progress.Count)
		assert.True(t, progress.PeriodStart.Equal(testEpoch))

		progress, err = store.IncrementChallengeProgress(ctx, "u1", "like_24h", testEpoch)
		require.NoError(t, err)
		require.NotNil(t, progress)
		assert.Equal(t, 2, progress.Count)

		stale, err := store.IncrementChallengeProgress(ctx, "u1", "like_24h", testEpoch.Add(-time.Hour))
		require.NoError(t, err)
		assert.Nil(t, stale, "a stale window start must not match")

		stored, err := store.GetChallengeProgress(ctx, "u1", "like_24h")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 2, stored.Count)
	})

	t.Run("reset of an existing row starts a new window", func(t *testing.T) {
		next := testEpoch.Add(25 * time.Hour)
		progress, err := store.ResetChallengeProgress(ctx, "u1", "like_24h", next)
		require.NoError(t, err)
		assert.Equal(t, 1, progress.Count)
		assert.True(t, progress.PeriodStart.Equal(next))

		list, err := store.ListChallengeProgress(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 1, list[0].Count)
	})

	t.Run("list orders most recent window first", func(t *testing.T) {
		_, err := store.ResetChallengeProgress(ctx, "u2", "like_24h", testEpoch)
		require.NoError(t, err)
		_, err = store.ResetChallengeProgress(ctx, "u2", "like_12h", testEpoch.Add(time.Hour))
		require.NoError(t, err)

		list, err := store.ListChallengeProgress(ctx, "u2")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "like_12h", list[0].Key)
		assert.Equal(t, "like_24h", list[1].Key)
	})
}

// =============================================================================
// Test: Badges
// =============================================================================

func testBadges(t *testing.T, store Store) {
	ctx := context.Background()

	first, err := store.UpsertBadge(ctx, buildTestBadge("like_50_24h", 50))
	require.NoError(t, err)
	_, err = store.UpsertBadge(ctx, buildTestBadge("like_10_24h", 10))
	require.NoError(t, err)

	t.Run("upsert is idempotent and preserves id", func(t *testing.T) {
		input := buildTestBadge("like_50_24h", 50)
		input.Icon = "Medal"
		again, err := store.UpsertBadge(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "Medal", again.Icon)

		badges, err := store.ListBadges(ctx)
		require.NoError(t, err)
		require.Len(t, badges, 2)
		assert.Equal(t, "like_10_24h", badges[0].Key)
		assert.Equal(t, "like_50_24h", badges[1].Key)
	})

	t.Run("invalid definition is rejected", func(t *testing.T) {
		_, err := store.UpsertBadge(ctx, buildTestBadge("like_0_24h", 0))
		assert.Error(t, err)
	})

	t.Run("list by window", func(t *testing.T) {
		other := buildTestBadge("like_5_1h", 5)
		other.WindowHours = 1
		_, err := store.UpsertBadge(ctx, other)
		require.NoError(t, err)

		badges, err := store.ListBadgesByWindow(ctx, 24)
		require.NoError(t, err)
		require.Len(t, badges, 2)

		badges, err = store.ListBadgesByWindow(ctx, 1)
		require.NoError(t, err)
		require.Len(t, badges, 1)
		assert.Equal(t, "like_5_1h", badges[0].Key)
	})

	t.Run("user badge unlocks once", func(t *testing.T) {
		created, err := store.CreateUserBadge(ctx, "u1", first.ID, testEpoch)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = store.CreateUserBadge(ctx, "u1", first.ID, testEpoch.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, created)

		userBadges, err := store.ListUserBadges(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, userBadges, 1)
		assert.Equal(t, "like_50_24h", userBadges[0].Badge.Key)
		assert.True(t, userBadges[0].UnlockedAt.Equal(testEpoch))
	})

	t.Run("user without badges", func(t *testing.T) {
		userBadges, err := store.ListUserBadges(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, userBadges)
	})
}

// =============================================================================
// Test: Seasons
// =============================================================================

func testSeasons(t *testing.T, store Store) {
	ctx := context.Background()

	season, err := store.UpsertSeason(ctx, buildTestSeason(testEpoch))
	require.NoError(t, err)
	require.NotZero(t, season.ID)
	assert.Equal(t, "2025-09", season.Key)
	assert.Equal(t, "Season 2025-09", season.Name)

	t.Run("upsert is idempotent", func(t *testing.T) {
		again, err := store.UpsertSeason(ctx, buildTestSeason(testEpoch.Add(24*time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, season.ID, again.ID)
		assert.True(t, again.StartsAt.Equal(season.StartsAt))
	})

	t.Run("get by key", func(t *testing.T) {
		found, err := store.GetSeasonByKey(ctx, "2025-09")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, season.ID, found.ID)

		missing, err := store.GetSeasonByKey(ctx, "1999-01")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("get at bounds", func(t *testing.T) {
		start, end := domain.MonthRange(testEpoch)

		found, err := store.GetSeasonAt(ctx, start)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, season.ID, found.ID)

		found, err = store.GetSeasonAt(ctx, end)
		require.NoError(t, err)
		require.NotNil(t, found)

		found, err = store.GetSeasonAt(ctx, end.Add(500*time.Microsecond))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, season.ID, found.ID)

		missing, err := store.GetSeasonAt(ctx, end.Add(time.Millisecond))
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Test: Season Likes
// =============================================================================

func testSeasonLikes(t *testing.T, store Store) {
	ctx := context.Background()
	seedCoins(t, store, "bitcoin", "ethereum", "solana")

	season, err := store.UpsertSeason(ctx, buildTestSeason(testEpoch))
	require.NoError(t, err)

	t.Run("increment is cumulative", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			like, err := store.IncrementSeasonLike(ctx, season.ID, "bitcoin")
			require.NoError(t, err)
			assert.Equal(t, i, like.Likes)
		}
		like, err := store.IncrementSeasonLike(ctx, season.ID, "ethereum")
		require.NoError(t, err)
		assert.Equal(t, 1, like.Likes)

		likes, err := store.ListSeasonLikes(ctx, season.ID, 0)
		require.NoError(t, err)
		require.Len(t, likes, 2)
		assert.Equal(t, "bitcoin", likes[0].CoinID)
		assert.Equal(t, 3, likes[0].Likes)
	})

	t.Run("replace swaps the whole set", func(t *testing.T) {
		updated, err := store.ReplaceSeasonLikes(ctx, season.ID, []CoinCount{
			{CoinID: "solana", Count: 7},
			{CoinID: "ethereum", Count: 7},
			{CoinID: "bitcoin", Count: 0},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, updated)

		likes, err := store.ListSeasonLikes(ctx, season.ID, 10)
		require.NoError(t, err)
		require.Len(t, likes, 2)
		assert.Equal(t, "ethereum", likes[0].CoinID)
		assert.Equal(t, "solana", likes[1].CoinID)
	})

	t.Run("replace with nothing clears the season", func(t *testing.T) {
		updated, err := store.ReplaceSeasonLikes(ctx, season.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, updated)

		likes, err := store.ListSeasonLikes(ctx, season.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, likes)
	})

	t.Run("record like with season increment", func(t *testing.T) {
		input := buildTestSwipe("u1", "solana", domain.ActionLike, testEpoch)
		swipe, like, err := store.CreateSwipeWithSeasonLike(ctx, input, season.ID)
		require.NoError(t, err)
		assert.Equal(t, input.ID, swipe.ID)
		assert.Equal(t, 1, like.Likes)

		_, like, err = store.CreateSwipeWithSeasonLike(ctx,
			buildTestSwipe("u2", "solana", domain.ActionLike, testEpoch), season.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, like.Likes)
	})

	t.Run("record like with unknown season leaves no swipe", func(t *testing.T) {
		input := buildTestSwipe("u9", "bitcoin", domain.ActionLike, testEpoch)
		_, _, err := store.CreateSwipeWithSeasonLike(ctx, input, season.ID+1000)
		require.Error(t, err)

		counts, err := store.CountSwipesByCoinBetween(ctx,
			[]domain.Action{domain.ActionLike}, testEpoch, testEpoch.Add(time.Second))
		require.NoError(t, err)
		assert.NotContains(t, counts, CoinCount{CoinID: "bitcoin", Count: 1})
	})

	t.Run("season lock hands a working store to fn", func(t *testing.T) {
		err := store.WithSeasonLock(ctx, season.ID, func(tx Store) error {
			_, err := tx.ReplaceSeasonLikes(ctx, season.ID, []CoinCount{{CoinID: "bitcoin", Count: 4}})
			return err
		})
		require.NoError(t, err)

		likes, err := store.ListSeasonLikes(ctx, season.ID, 0)
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.Equal(t, 4, likes[0].Likes)
	})

	t.Run("season lock rolls back when fn fails", func(t *testing.T) {
		boom := fmt.Errorf("boom")
		err := store.WithSeasonLock(ctx, season.ID, func(tx Store) error {
			if _, err := tx.ReplaceSeasonLikes(ctx, season.ID, nil); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		likes, err := store.ListSeasonLikes(ctx, season.ID, 0)
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.Equal(t, "bitcoin", likes[0].CoinID)
	})

	t.Run("season lock on unknown season fails", func(t *testing.T) {
		called := false
		err := store.WithSeasonLock(ctx, season.ID+1000, func(Store) error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
	})

	t.Run("recompute runs", func(t *testing.T) {
		details, err := json.Marshal(map[string]int{"scanned": 12, "skipped": 1})
		require.NoError(t, err)

		for i := range 2 {
			started := testEpoch.Add(time.Duration(i) * time.Hour)
			_, err := store.CreateRecomputeRun(ctx, CreateRecomputeRunInput{
				SeasonID:   season.ID,
				Source:     "snapshot",
				Updated:    i + 1,
				Details:    details,
				StartedAt:  started,
				FinishedAt: started.Add(time.Second),
			})
			require.NoError(t, err)
		}

		runs, err := store.ListRecomputeRuns(ctx, season.ID, 1)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 2, runs[0].Updated)
		assert.JSONEq(t, `{"scanned":12,"skipped":1}`, string(runs[0].Details))
	})
}

// =============================================================================
// Test: Key-Value Store
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "season_recompute:2025-09:last_at", "2025-09-10T12:00:00Z"))

		value, err := store.GetKeyValue(ctx, "season_recompute:2025-09:last_at")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-10T12:00:00Z", value)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "marker", "v1"))
		require.NoError(t, store.SetKeyValue(ctx, "marker", "v2"))

		value, err := store.GetKeyValue(ctx, "marker")
		require.NoError(t, err)
		assert.Equal(t, "v2", value)
	})

	t.Run("missing key returns empty string", func(t *testing.T) {
		value, err := store.GetKeyValue(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestCalculateSafeBatchSize(t *testing.T) {
	assert.Equal(t, 10, calculateSafeBatchSize(10, 3))
	assert.Equal(t, (65535-1000)/3, calculateSafeBatchSize(100000, 3))
	assert.Equal(t, 64535, calculateSafeBatchSize(0, 0))
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, open)
	assert.Equal(t, 5, idle)
	assert.Equal(t, 5*time.Minute, lifetime)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(3, 10, time.Hour, time.Hour)
	assert.Equal(t, 3, open)
	assert.Equal(t, 3, idle)
}

// RunStoreTests runs every store test against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Coins", testCoins},
		{"Swipes", testSwipes},
		{"ChallengeProgress", testChallengeProgress},
		{"Badges", testBadges},
		{"Seasons", testSeasons},
		{"SeasonLikes", testSeasonLikes},
		{"KeyValueStore", testKeyValueStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
