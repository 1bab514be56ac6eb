package swipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/gamification"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/messaging"
	"github.com/swipto/swipto-api/internal/metrics"
	"github.com/swipto/swipto-api/internal/ratelimit"
	"github.com/swipto/swipto-api/internal/season"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

// Input is a swipe as received from a client
type Input struct {
	UserID string
	CoinID string
	// Action is the raw action string, validated by Ingest
	Action string
	// Coin is optional display metadata; when nil a fallback row is ensured
	Coin *domain.CoinMetadata
}

// SeasonLikeView is the season counter after a like
type SeasonLikeView struct {
	SeasonKey string `json:"seasonKey"`
	CoinID    string `json:"coinId"`
	Likes     int    `json:"likes"`
}

// Result is the outcome of an ingested swipe
type Result struct {
	SwipeID        string                     `json:"swipeId"`
	Progress       *gamification.ProgressView `json:"progress"`
	UnlockedBadges []string                   `json:"unlockedBadges"`
	SeasonLike     *SeasonLikeView            `json:"seasonLike,omitempty"`
}

// CacheInvalidator drops cached read views made stale by a swipe
type CacheInvalidator interface {
	Invalidate(ctx context.Context, seasonKey string)
}

// Ingestor records swipes and applies their gamification side effects
//
//go:generate mockgen -source=ingest.go -destination=../mocks/ingestor.go -package=mocks -mock_names=Ingestor=MockIngestor,CacheInvalidator=MockCacheInvalidator
type Ingestor interface {
	Ingest(ctx context.Context, in Input) (*Result, error)
}

type ingestor struct {
	store       store.Store
	tracker     gamification.Tracker
	badges      gamification.BadgeEvaluator
	seasons     season.Resolver
	limiter     ratelimit.Limiter
	publisher   messaging.Publisher
	invalidator CacheInvalidator
	clock       adapter.Clock
	metrics     *metrics.Metrics
	challenge   domain.Challenge
}

// NewIngestor creates a swipe ingestor. limiter, publisher and invalidator may be nil.
func NewIngestor(
	st store.Store,
	tracker gamification.Tracker,
	badges gamification.BadgeEvaluator,
	seasons season.Resolver,
	limiter ratelimit.Limiter,
	publisher messaging.Publisher,
	invalidator CacheInvalidator,
	clock adapter.Clock,
	m *metrics.Metrics,
	challenge domain.Challenge,
) Ingestor {
	return &ingestor{
		store:       st,
		tracker:     tracker,
		badges:      badges,
		seasons:     seasons,
		limiter:     limiter,
		publisher:   publisher,
		invalidator: invalidator,
		clock:       clock,
		metrics:     m,
		challenge:   challenge,
	}
}

func (i *ingestor) validate(in Input) (Input, domain.Action, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.CoinID = strings.TrimSpace(in.CoinID)

	if in.UserID == "" {
		return in, "", domain.NewValidationError("Missing userId")
	}
	if in.CoinID == "" {
		return in, "", domain.NewValidationError("Missing coinId")
	}

	action, err := domain.ParseAction(in.Action)
	if err != nil {
		return in, "", err
	}

	return in, action, nil
}

// Ingest validates the swipe, appends it to the ledger and then applies gamification.
// A like is written together with its season increment. Only the ledger append is fatal;
// later steps log their failures and leave their part of the result empty.
func (i *ingestor) Ingest(ctx context.Context, in Input) (*Result, error) {
	in, action, err := i.validate(in)
	if err != nil {
		return nil, err
	}

	if err := i.allow(ctx, in.UserID); err != nil {
		return nil, err
	}

	if err := i.ensureCoin(ctx, in); err != nil {
		return nil, err
	}

	now := i.clock.Now()
	swipe, seasonLike, err := i.record(ctx, store.CreateSwipeInput{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		UserID:    in.UserID,
		CoinID:    in.CoinID,
		Action:    action,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	i.metrics.SwipeIngested(string(action))

	result := &Result{
		SwipeID:        swipe.ID,
		UnlockedBadges: []string{},
		SeasonLike:     seasonLike,
	}

	if action == i.challenge.Action {
		result.Progress, result.UnlockedBadges = i.applyChallenge(ctx, in.UserID, now)
	} else {
		result.Progress = i.currentProgress(ctx, in.UserID, now)
	}

	var seasonKey string
	if seasonLike != nil {
		seasonKey = seasonLike.SeasonKey
	}

	if i.invalidator != nil {
		i.invalidator.Invalidate(ctx, seasonKey)
	}

	i.publish(ctx, swipe, result.UnlockedBadges)

	return result, nil
}

func (i *ingestor) allow(ctx context.Context, userID string) error {
	if i.limiter == nil {
		return nil
	}

	decision, err := i.limiter.Allow(ctx, "swipes:"+userID)
	if err != nil {
		// fail open
		logger.WarnCtx(ctx, "Rate limiter unavailable", zap.Error(err))
		return nil
	}
	if !decision.Allowed {
		i.metrics.SwipeRateLimited()
		return domain.NewRateLimitedError("Too many swipes, retry in " + decision.RetryAfter.Round(time.Second).String())
	}

	return nil
}

func (i *ingestor) ensureCoin(ctx context.Context, in Input) error {
	if in.Coin == nil {
		if err := i.store.EnsureCoins(ctx, []string{in.CoinID}); err != nil {
			return domain.NewStoreError("failed to ensure coin", err)
		}
		return nil
	}

	fallback := domain.CoinFallback(in.CoinID)
	name := strings.TrimSpace(in.Coin.Name)
	if name == "" {
		name = fallback.Name
	}

	if err := i.store.UpsertCoin(ctx, store.UpsertCoinInput{
		CoinID:   in.CoinID,
		Symbol:   domain.NormalizeSymbol(in.Coin.Symbol, in.CoinID),
		Name:     name,
		Category: in.Coin.Category,
	}); err != nil {
		return domain.NewStoreError("failed to upsert coin", err)
	}

	return nil
}

func (i *ingestor) applyChallenge(ctx context.Context, userID string, at time.Time) (*gamification.ProgressView, []string) {
	progress, err := i.tracker.Track(ctx, userID, i.challenge, at)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to update challenge progress: %w", err), zap.String("userId", userID))
		return nil, []string{}
	}

	unlocked, err := i.badges.Evaluate(ctx, userID, i.challenge.WindowHours, progress.Count, at)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to evaluate badges: %w", err), zap.String("userId", userID))
	}
	if unlocked == nil {
		unlocked = []string{}
	}
	for _, key := range unlocked {
		i.metrics.BadgeUnlocked(key)
	}

	return gamification.NewProgressView(progress, i.challenge.Window(), at), unlocked
}

// record appends the swipe to the ledger. Likes carry their season increment in the same transaction;
// when the season cannot be resolved or the combined write fails the bare swipe is still recorded.
func (i *ingestor) record(ctx context.Context, input store.CreateSwipeInput) (*schema.Swipe, *SeasonLikeView, error) {
	if input.Action.IsLike() {
		if swipe, view, ok := i.recordLike(ctx, input); ok {
			return swipe, view, nil
		}
	}

	swipe, err := i.store.CreateSwipe(ctx, input)
	if err != nil {
		return nil, nil, domain.NewStoreError("failed to record swipe", err)
	}

	return swipe, nil, nil
}

func (i *ingestor) recordLike(ctx context.Context, input store.CreateSwipeInput) (*schema.Swipe, *SeasonLikeView, bool) {
	s, err := i.seasons.Ensure(ctx, input.CreatedAt)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve season: %w", err))
		return nil, nil, false
	}

	swipe, like, err := i.store.CreateSwipeWithSeasonLike(ctx, input, s.ID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record like with season increment: %w", err),
			zap.String("season", s.Key),
			zap.String("coinId", input.CoinID),
		)
		return nil, nil, false
	}

	return swipe, &SeasonLikeView{
		SeasonKey: s.Key,
		CoinID:    input.CoinID,
		Likes:     like.Likes,
	}, true
}

// currentProgress reports the user's challenge state for swipes that do not count toward it
func (i *ingestor) currentProgress(ctx context.Context, userID string, at time.Time) *gamification.ProgressView {
	p, err := i.store.GetChallengeProgress(ctx, userID, i.challenge.Key)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load challenge progress", zap.String("userId", userID), zap.Error(err))
		return nil
	}
	if p == nil {
		return nil
	}

	return gamification.NewProgressView(&gamification.Progress{
		Key:         p.Key,
		Count:       p.Count,
		PeriodStart: p.PeriodStart,
	}, i.challenge.Window(), at)
}

func (i *ingestor) publish(ctx context.Context, swipe *schema.Swipe, unlocked []string) {
	if i.publisher == nil {
		return
	}

	events := []*domain.Event{{
		Type:       domain.EventSwipeRecorded,
		UserID:     swipe.UserID,
		SwipeID:    swipe.ID,
		CoinID:     swipe.CoinID,
		Action:     swipe.Action,
		OccurredAt: swipe.CreatedAt,
	}}
	for _, key := range unlocked {
		events = append(events, &domain.Event{
			Type:       domain.EventBadgeUnlocked,
			UserID:     swipe.UserID,
			SwipeID:    swipe.ID,
			BadgeKey:   key,
			OccurredAt: swipe.CreatedAt,
		})
	}

	for _, event := range events {
		err := i.publisher.PublishEvent(ctx, event)
		i.metrics.EventPublished(string(event.Type), err)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to publish event",
				zap.String("type", string(event.Type)),
				zap.String("swipeId", swipe.ID),
				zap.Error(err),
			)
		}
	}
}
