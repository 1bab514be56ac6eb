package gamification

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

// DefaultBadges is the seeded badge catalog
var DefaultBadges = []store.UpsertBadgeInput{
	{
		Key:         "like_10_24h",
		Name:        "10 likes in 24h",
		Description: "Reach 10 likes within 24 hours",
		Target:      10,
		WindowHours: 24,
		Icon:        "ThumbsUp",
	},
	{
		Key:         "like_50_24h",
		Name:        "50 likes in 24h",
		Description: "Reach 50 likes within 24 hours",
		Target:      50,
		WindowHours: 24,
		Icon:        "Medal",
	},
	{
		Key:         "like_100_24h",
		Name:        "100 likes in 24h",
		Description: "Reach 100 likes within 24 hours",
		Target:      100,
		WindowHours: 24,
		Icon:        "Trophy",
	},
}

// SeedBadges upserts the given definitions by key and returns the stored rows
func SeedBadges(ctx context.Context, st store.Store, badges []store.UpsertBadgeInput) ([]schema.Badge, error) {
	seeded := make([]schema.Badge, 0, len(badges))
	for _, b := range badges {
		badge, err := st.UpsertBadge(ctx, b)
		if err != nil {
			return nil, domain.NewStoreError("failed to seed badge "+b.Key, err)
		}
		seeded = append(seeded, *badge)
	}

	logger.InfoCtx(ctx, "Seeded badge catalog", zap.Int("count", len(seeded)))

	return seeded, nil
}

// BadgeEvaluator unlocks badges whose target has been reached in the current window
//
//go:generate mockgen -source=badges.go -destination=../mocks/badges.go -package=mocks -mock_names=BadgeEvaluator=MockBadgeEvaluator
type BadgeEvaluator interface {
	// Evaluate returns the keys of the badges newly unlocked by this call, in target order
	Evaluate(ctx context.Context, userID string, windowHours int, count int, at time.Time) ([]string, error)
}

type badgeEvaluator struct {
	store store.Store
}

// NewBadgeEvaluator creates a new badge evaluator
func NewBadgeEvaluator(st store.Store) BadgeEvaluator {
	return &badgeEvaluator{store: st}
}

// Evaluate checks every badge of the window with count >= target. Unlocks are idempotent,
// so a badge already held is skipped and never reported twice.
func (e *badgeEvaluator) Evaluate(ctx context.Context, userID string, windowHours int, count int, at time.Time) ([]string, error) {
	badges, err := e.store.ListBadgesByWindow(ctx, windowHours)
	if err != nil {
		return nil, domain.NewStoreError("failed to list badges", err)
	}

	unlocked := []string{}
	for _, b := range badges {
		if count < b.Target {
			continue
		}

		created, err := e.store.CreateUserBadge(ctx, userID, b.ID, at)
		if err != nil {
			return unlocked, domain.NewStoreError("failed to unlock badge", err)
		}
		if created {
			unlocked = append(unlocked, b.Key)
		}
	}

	return unlocked, nil
}
