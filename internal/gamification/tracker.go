package gamification

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/store"
)

// maxIncrementAttempts bounds guarded increments that lose to a concurrent reset
const maxIncrementAttempts = 2

// Tracker applies qualifying events to a user's challenge window
//
//go:generate mockgen -source=tracker.go -destination=../mocks/tracker.go -package=mocks -mock_names=Tracker=MockTracker
type Tracker interface {
	// Track counts one event at `at` and returns the progress after it
	Track(ctx context.Context, userID string, challenge domain.Challenge, at time.Time) (*Progress, error)
}

type tracker struct {
	store store.Store
}

// NewTracker creates a new challenge tracker
func NewTracker(st store.Store) Tracker {
	return &tracker{store: st}
}

// Track loads the progress, decides between reset and increment and writes the result.
// The increment is guarded by the period start so it never lands in a window that a
// concurrent reset has replaced; in that case the progress is reloaded and re-evaluated.
// If the window is still live after the last attempt a conflict error is returned.
func (t *tracker) Track(ctx context.Context, userID string, challenge domain.Challenge, at time.Time) (*Progress, error) {
	current, err := t.store.GetChallengeProgress(ctx, userID, challenge.Key)
	if err != nil {
		return nil, domain.NewStoreError("failed to load challenge progress", err)
	}

	for attempt := 0; attempt < maxIncrementAttempts; attempt++ {
		progress := progressFromSchema(current)
		if Evaluate(progress, at, challenge.Window()).Reset {
			return t.reset(ctx, userID, challenge.Key, at)
		}

		updated, err := t.store.IncrementChallengeProgress(ctx, userID, challenge.Key, progress.PeriodStart)
		if err != nil {
			return nil, domain.NewStoreError("failed to increment challenge progress", err)
		}
		if updated != nil {
			return progressFromSchema(updated), nil
		}

		logger.DebugCtx(ctx, "Challenge window changed concurrently, reloading",
			zap.String("userId", userID),
			zap.String("key", challenge.Key),
			zap.Int("attempt", attempt+1),
		)

		current, err = t.store.GetChallengeProgress(ctx, userID, challenge.Key)
		if err != nil {
			return nil, domain.NewStoreError("failed to reload challenge progress", err)
		}
	}

	// only an expired window may be reset; a live one that keeps moving is reported, not wiped
	if Evaluate(progressFromSchema(current), at, challenge.Window()).Reset {
		return t.reset(ctx, userID, challenge.Key, at)
	}

	logger.WarnCtx(ctx, "Challenge increment kept losing to concurrent updates",
		zap.String("userId", userID),
		zap.String("key", challenge.Key),
	)
	return nil, domain.NewConflictError("Challenge progress changed concurrently", domain.ErrProgressContention)
}

func (t *tracker) reset(ctx context.Context, userID, key string, at time.Time) (*Progress, error) {
	p, err := t.store.ResetChallengeProgress(ctx, userID, key, at)
	if err != nil {
		return nil, domain.NewStoreError("failed to reset challenge progress", err)
	}
	return progressFromSchema(p), nil
}
