package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	CoinID string
	Likes  int
}

func TestUseCache_Local(t *testing.T) {
	ctx := context.Background()
	c := NewLocal(100, time.Minute)

	calls := 0
	load := func() ([]entry, error) {
		calls++
		return []entry{{CoinID: "bitcoin", Likes: 3}}, nil
	}

	v, hit, err := UseCache(ctx, c, "leaderboard:alltime:20:false", time.Minute, load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []entry{{CoinID: "bitcoin", Likes: 3}}, v)

	v, hit, err = UseCache(ctx, c, "leaderboard:alltime:20:false", time.Minute, load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "bitcoin", v[0].CoinID)
	assert.Equal(t, 1, calls)

	require.NoError(t, c.Delete(ctx, "leaderboard:alltime:20:false"))
	_, hit, err = UseCache(ctx, c, "leaderboard:alltime:20:false", time.Minute, load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
}

func TestUseCache_CallbackError(t *testing.T) {
	ctx := context.Background()
	c := NewLocal(100, time.Minute)

	_, _, err := UseCache(ctx, c, "k", time.Minute, func() (int, error) {
		return 0, errors.New("store down")
	})
	assert.EqualError(t, err, "store down")

	var v int
	assert.ErrorIs(t, c.Get(ctx, "k", &v), ErrCacheMiss, "failures are not cached")
}
