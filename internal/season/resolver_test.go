package season_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/mocks"
	"github.com/swipto/swipto-api/internal/season"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func buildSeason(key string) *schema.Season {
	at, _ := domain.ParseMonthKey(key)
	start, end := domain.MonthRange(at)
	return &schema.Season{ID: 7, Key: key, Name: domain.SeasonName(key), StartsAt: start, EndsAt: end}
}

func TestResolver_Ensure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	resolver := season.NewResolver(st, clock)

	at := time.Date(2025, time.September, 30, 23, 59, 59, 0, time.UTC)
	st.EXPECT().GetSeasonAt(gomock.Any(), at).Return(nil, nil)
	st.EXPECT().
		UpsertSeason(gomock.Any(), store.UpsertSeasonInput{
			Key:      "2025-09",
			Name:     "Season 2025-09",
			StartsAt: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2025, time.September, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		}).
		Return(buildSeason("2025-09"), nil).
		Times(1)

	s, err := resolver.Ensure(context.Background(), at)
	require.NoError(t, err)
	assert.Equal(t, "2025-09", s.Key)

	// same month is served without another write
	s, err = resolver.Ensure(context.Background(), at.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "2025-09", s.Key)

	// a stored season with current bounds is read, not rewritten
	st.EXPECT().GetSeasonAt(gomock.Any(), at.Add(time.Second)).Return(buildSeason("2025-10"), nil)

	s, err = resolver.Ensure(context.Background(), at.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "2025-10", s.Key)
}

func TestResolver_EnsureRefreshesStaleBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	at := time.Date(2025, time.September, 12, 0, 0, 0, 0, time.UTC)

	stale := buildSeason("2025-09")
	stale.EndsAt = time.Date(2025, time.September, 30, 23, 59, 59, 0, time.UTC)
	st.EXPECT().GetSeasonAt(gomock.Any(), at).Return(stale, nil)
	st.EXPECT().
		UpsertSeason(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.UpsertSeasonInput) (*schema.Season, error) {
			assert.Equal(t, "2025-09", in.Key)
			assert.Equal(t, buildSeason("2025-09").EndsAt, in.EndsAt)
			return buildSeason(in.Key), nil
		})

	s, err := season.NewResolver(st, mocks.NewMockClock(ctrl)).Ensure(context.Background(), at)
	require.NoError(t, err)
	assert.Equal(t, buildSeason("2025-09").EndsAt, s.EndsAt)
}

func TestResolver_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))

	st.EXPECT().GetSeasonAt(gomock.Any(), gomock.Any()).Return(nil, nil)
	st.EXPECT().
		UpsertSeason(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.UpsertSeasonInput) (*schema.Season, error) {
			assert.Equal(t, time.Date(2026, time.February, 28, 23, 59, 59, int(999*time.Millisecond), time.UTC), in.EndsAt)
			return buildSeason(in.Key), nil
		})

	s, err := season.NewResolver(st, clock).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-02", s.Key)
}

func TestResolver_EnsureStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	resolver := season.NewResolver(st, mocks.NewMockClock(ctrl))

	st.EXPECT().GetSeasonAt(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	_, err := resolver.Ensure(context.Background(), time.Now())
	require.Error(t, err)
	assert.Equal(t, domain.KindStore, domain.KindOf(err))

	st.EXPECT().GetSeasonAt(gomock.Any(), gomock.Any()).Return(nil, nil)
	st.EXPECT().UpsertSeason(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	_, err = resolver.Ensure(context.Background(), time.Now())
	require.Error(t, err)
	assert.Equal(t, domain.KindStore, domain.KindOf(err))
}

func TestResolver_ByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	resolver := season.NewResolver(st, mocks.NewMockClock(ctrl))

	st.EXPECT().GetSeasonByKey(gomock.Any(), "2025-09").Return(buildSeason("2025-09"), nil)
	s, err := resolver.ByKey(context.Background(), "2025-09")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), s.ID)

	st.EXPECT().GetSeasonByKey(gomock.Any(), "2024-01").Return(nil, nil)
	_, err = resolver.ByKey(context.Background(), "2024-01")
	assert.True(t, domain.IsNotFound(err))
	assert.ErrorIs(t, err, domain.ErrSeasonNotFound)

	_, err = resolver.ByKey(context.Background(), "2024-1")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
