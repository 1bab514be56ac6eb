package season_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redsync/redsync/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/mocks"
	"github.com/swipto/swipto-api/internal/season"
)

func setupRedisLocker(t *testing.T) (season.Locker, *mocks.MockRedisMutexFactory) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	rc := mocks.NewMockRedisClient(ctrl)
	factory := mocks.NewMockRedisMutexFactory(ctrl)
	rc.EXPECT().NewMutexFactory().Return(factory)

	return season.NewRedisLocker(rc), factory
}

func TestRedisLocker_TryLock(t *testing.T) {
	locker, factory := setupRedisLocker(t)
	mutex := mocks.NewMockRedisMutex(gomock.NewController(t))

	factory.EXPECT().NewMutex("swipto:lock:season-recompute:2025-09", gomock.Any(), gomock.Any()).Return(mutex)
	mutex.EXPECT().TryLockContext(gomock.Any()).Return(nil)
	mutex.EXPECT().UnlockContext(gomock.Any()).Return(true, nil)

	unlock, err := locker.TryLock(context.Background(), "2025-09")
	require.NoError(t, err)
	unlock()
}

func TestRedisLocker_Held(t *testing.T) {
	locker, factory := setupRedisLocker(t)
	mutex := mocks.NewMockRedisMutex(gomock.NewController(t))

	factory.EXPECT().NewMutex(gomock.Any(), gomock.Any(), gomock.Any()).Return(mutex).Times(2)

	mutex.EXPECT().TryLockContext(gomock.Any()).Return(redsync.ErrFailed)
	_, err := locker.TryLock(context.Background(), "2025-09")
	assert.ErrorIs(t, err, domain.ErrRecomputeInProgress)

	mutex.EXPECT().TryLockContext(gomock.Any()).Return(&redsync.ErrTaken{Nodes: []int{0}})
	_, err = locker.TryLock(context.Background(), "2025-09")
	assert.ErrorIs(t, err, domain.ErrRecomputeInProgress)
}

func TestRedisLocker_RedisError(t *testing.T) {
	locker, factory := setupRedisLocker(t)
	mutex := mocks.NewMockRedisMutex(gomock.NewController(t))

	factory.EXPECT().NewMutex(gomock.Any(), gomock.Any(), gomock.Any()).Return(mutex)
	mutex.EXPECT().TryLockContext(gomock.Any()).Return(errors.New("dial tcp: connection refused"))

	_, err := locker.TryLock(context.Background(), "2025-09")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRecomputeInProgress)
}

func TestNoopLocker(t *testing.T) {
	locker := season.NewNoopLocker()

	unlock, err := locker.TryLock(context.Background(), "2025-09")
	require.NoError(t, err)
	unlock()

	_, err = locker.TryLock(context.Background(), "2025-09")
	assert.NoError(t, err)
}
