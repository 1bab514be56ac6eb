package season

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
)

const (
	lockPrefix = "swipto:lock:season-recompute:"
	lockExpiry = 10 * time.Minute
)

// Locker provides a single-flight section per season
//
//go:generate mockgen -source=lock.go -destination=../mocks/season_lock.go -package=mocks -mock_names=Locker=MockSeasonLocker
type Locker interface {
	// TryLock acquires the season's lock without waiting.
	// Returns domain.ErrRecomputeInProgress when another holder has it.
	TryLock(ctx context.Context, seasonKey string) (unlock func(), err error)
}

type redisLocker struct {
	factory adapter.RedisMutexFactory
}

// NewRedisLocker creates a redsync-backed locker
func NewRedisLocker(rc adapter.RedisClient) Locker {
	return &redisLocker{factory: rc.NewMutexFactory()}
}

func (l *redisLocker) TryLock(ctx context.Context, seasonKey string) (func(), error) {
	mutex := l.factory.NewMutex(lockPrefix+seasonKey, redsync.WithExpiry(lockExpiry), redsync.WithTries(1))

	if err := mutex.TryLockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		var takenValue redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) || errors.As(err, &takenValue) {
			return nil, domain.ErrRecomputeInProgress
		}
		return nil, fmt.Errorf("failed to acquire season lock: %w", err)
	}

	return func() {
		// the caller's context may already be done
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := mutex.UnlockContext(ctx); err != nil {
			logger.Warn("Failed to release season lock", zap.String("season", seasonKey), zap.Error(err))
		}
	}, nil
}

type noopLocker struct{}

// NewNoopLocker returns a locker that never blocks, for deployments without Redis
func NewNoopLocker() Locker {
	logger.Warn("Redis is not configured, season recomputes are not single-flight across instances")
	return noopLocker{}
}

func (noopLocker) TryLock(context.Context, string) (func(), error) {
	return func() {}, nil
}
