package gamification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipto/swipto-api/internal/gamification"
	"github.com/swipto/swipto-api/internal/mocks"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

func buildBadges() []schema.Badge {
	return []schema.Badge{
		{ID: "b-10", Key: "like_10_24h", Target: 10, WindowHours: 24},
		{ID: "b-50", Key: "like_50_24h", Target: 50, WindowHours: 24},
		{ID: "b-100", Key: "like_100_24h", Target: 100, WindowHours: 24},
	}
}

func TestBadgeEvaluator_UnlocksCrossedThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	at := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

	st.EXPECT().ListBadgesByWindow(gomock.Any(), 24).Return(buildBadges(), nil)
	st.EXPECT().CreateUserBadge(gomock.Any(), "user-1", "b-10", at).Return(false, nil)
	st.EXPECT().CreateUserBadge(gomock.Any(), "user-1", "b-50", at).Return(true, nil)

	unlocked, err := gamification.NewBadgeEvaluator(st).Evaluate(context.Background(), "user-1", 24, 57, at)
	require.NoError(t, err)
	assert.Equal(t, []string{"like_50_24h"}, unlocked)
}

func TestBadgeEvaluator_BelowAllTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().ListBadgesByWindow(gomock.Any(), 24).Return(buildBadges(), nil)

	unlocked, err := gamification.NewBadgeEvaluator(st).Evaluate(context.Background(), "user-1", 24, 9, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, unlocked)
	assert.Empty(t, unlocked)
}

func TestBadgeEvaluator_IdempotentOnRepeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	at := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)
	held := map[string]bool{}

	st.EXPECT().ListBadgesByWindow(gomock.Any(), 24).Return(buildBadges()[:1], nil).Times(2)
	st.EXPECT().
		CreateUserBadge(gomock.Any(), "user-1", "b-10", at).
		DoAndReturn(func(_ context.Context, userID, badgeID string, _ time.Time) (bool, error) {
			key := userID + "/" + badgeID
			if held[key] {
				return false, nil
			}
			held[key] = true
			return true, nil
		}).
		Times(2)

	evaluator := gamification.NewBadgeEvaluator(st)
	first, err := evaluator.Evaluate(context.Background(), "user-1", 24, 10, at)
	require.NoError(t, err)
	second, err := evaluator.Evaluate(context.Background(), "user-1", 24, 10, at)
	require.NoError(t, err)

	assert.Equal(t, []string{"like_10_24h"}, first)
	assert.Empty(t, second)
}

func TestBadgeEvaluator_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().ListBadgesByWindow(gomock.Any(), 24).Return(nil, errors.New("timeout"))

	_, err := gamification.NewBadgeEvaluator(st).Evaluate(context.Background(), "user-1", 24, 10, time.Now())
	assert.Error(t, err)
}

func TestSeedBadges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().
		UpsertBadge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.UpsertBadgeInput) (*schema.Badge, error) {
			return &schema.Badge{ID: "id-" + in.Key, Key: in.Key, Target: in.Target, WindowHours: in.WindowHours, Icon: in.Icon}, nil
		}).
		Times(len(gamification.DefaultBadges))

	seeded, err := gamification.SeedBadges(context.Background(), st, gamification.DefaultBadges)
	require.NoError(t, err)
	require.Len(t, seeded, 3)
	assert.Equal(t, "like_10_24h", seeded[0].Key)
	assert.Equal(t, "ThumbsUp", seeded[0].Icon)
	assert.Equal(t, "Medal", seeded[1].Icon)
	assert.Equal(t, 100, seeded[2].Target)
	assert.Equal(t, "Trophy", seeded[2].Icon)
}
