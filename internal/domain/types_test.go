package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Action
		wantErr  bool
	}{
		{name: "like", raw: "like", expected: ActionLike},
		{name: "superlike", raw: "superlike", expected: ActionSuperlike},
		{name: "dislike", raw: "dislike", expected: ActionDislike},
		{name: "mixed case and spaces", raw: "  Like ", expected: ActionLike},
		{name: "empty", raw: "", wantErr: true},
		{name: "unknown", raw: "reject", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := ParseAction(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, KindValidation, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestActionIsLike(t *testing.T) {
	assert.True(t, ActionLike.IsLike())
	assert.False(t, ActionSuperlike.IsLike())
	assert.False(t, ActionDislike.IsLike())
}

func TestLeaderboardActions(t *testing.T) {
	assert.Equal(t, []Action{ActionLike}, LeaderboardActions(false))
	assert.Equal(t, []Action{ActionLike, ActionSuperlike}, LeaderboardActions(true))
}

func TestMonthKeyAndRange(t *testing.T) {
	tests := []struct {
		name          string
		at            time.Time
		expectedKey   string
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "middle of month",
			at:            time.Date(2025, 9, 15, 12, 30, 0, 0, time.UTC),
			expectedKey:   "2025-09",
			expectedStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 9, 30, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:          "leap february",
			at:            time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
			expectedKey:   "2024-02",
			expectedStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:          "december rolls year",
			at:            time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC),
			expectedKey:   "2025-12",
			expectedStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 12, 31, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:          "non-UTC input uses UTC month",
			at:            time.Date(2025, 10, 1, 1, 0, 0, 0, time.FixedZone("CEST", 2*3600)),
			expectedKey:   "2025-09",
			expectedStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 9, 30, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, MonthKey(tt.at))
			start, end := MonthRange(tt.at)
			assert.True(t, tt.expectedStart.Equal(start), "start %s", start)
			assert.True(t, tt.expectedEnd.Equal(end), "end %s", end)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	// sub-millisecond instants after the display end still belong to the month
	lastMicro := time.Date(2025, 9, 30, 23, 59, 59, 999500000, time.UTC)

	start, next := MonthWindow(lastMicro)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), next)
	assert.Equal(t, "2025-09", MonthKey(lastMicro))
	assert.True(t, !lastMicro.Before(start) && lastMicro.Before(next))

	_, end := MonthRange(lastMicro)
	assert.True(t, lastMicro.After(end))
	assert.Equal(t, next, end.Add(time.Millisecond))
}

func TestParseMonthKey(t *testing.T) {
	start, err := ParseMonthKey("2025-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)

	for _, key := range []string{"", "2025-3", "2025-13", "march", "2025-03-01"} {
		_, err := ParseMonthKey(key)
		assert.Error(t, err, key)
		assert.Equal(t, KindValidation, KindOf(err), key)
	}
}

func TestSeasonName(t *testing.T) {
	assert.Equal(t, "Season 2025-09", SeasonName("2025-09"))
}

func TestCoinFallback(t *testing.T) {
	fallback := CoinFallback("bitcoin")
	assert.Equal(t, "BITCOIN", fallback.Symbol)
	assert.Equal(t, "bitcoin", fallback.Name)
	assert.Nil(t, fallback.Category)

	assert.Equal(t, "BTC", NormalizeSymbol("btc", "bitcoin"))
	assert.Equal(t, "BITCOIN", NormalizeSymbol("  ", "bitcoin"))
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection refused")
	storeErr := NewStoreError("failed to create swipe", cause)
	wrapped := fmt.Errorf("ingest: %w", storeErr)

	assert.Equal(t, KindStore, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, storeErr.Error(), "connection refused")

	notFound := NewNotFoundError("season not found", ErrSeasonNotFound)
	assert.True(t, IsNotFound(notFound))
	assert.ErrorIs(t, notFound, ErrSeasonNotFound)

	assert.Equal(t, KindAuth, KindOf(NewAuthError("invalid admin key")))
	assert.Equal(t, KindConflict, KindOf(NewConflictError("busy", ErrRecomputeInProgress)))
	assert.Equal(t, KindRateLimited, KindOf(NewRateLimitedError("slow down")))
	assert.Equal(t, KindStore, KindOf(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}
