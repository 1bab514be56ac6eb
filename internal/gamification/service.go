package gamification

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

// ProgressView is the client-facing shape of a challenge window
type ProgressView struct {
	Key         string    `json:"key"`
	Count       int       `json:"count"`
	PeriodStart time.Time `json:"periodStart"`
	ResetsAt    time.Time `json:"resetsAt"`
	Active      bool      `json:"active"`
}

// Mission is a badge with the user's progress towards it
type Mission struct {
	Code        string     `json:"code"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Target      int        `json:"target"`
	Progress    int        `json:"progress"`
	Icon        string     `json:"icon"`
	Completed   bool       `json:"completed"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// MissionsView is the combined badge and challenge view of a user
type MissionsView struct {
	Missions  []Mission     `json:"missions"`
	Challenge *ProgressView `json:"challenge"`
}

// UserBadgeView is an unlocked badge
type UserBadgeView struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// Service serves the read side of gamification
//
//go:generate mockgen -source=service.go -destination=../mocks/gamification.go -package=mocks -mock_names=Service=MockGamificationService
type Service interface {
	// Missions returns every badge ordered by target with the user's current window count
	Missions(ctx context.Context, userID string) (*MissionsView, error)
	// ListChallenges returns all challenge windows of the user, most recent first
	ListChallenges(ctx context.Context, userID string) ([]ProgressView, error)
	// ListUserBadges returns the user's unlocked badges, newest first
	ListUserBadges(ctx context.Context, userID string) ([]UserBadgeView, error)
	// SeedBadges upserts the default badge catalog
	SeedBadges(ctx context.Context) ([]schema.Badge, error)
}

type service struct {
	store     store.Store
	clock     adapter.Clock
	challenge domain.Challenge
}

// NewService creates a new gamification read service
func NewService(st store.Store, clock adapter.Clock, challenge domain.Challenge) Service {
	return &service{
		store:     st,
		clock:     clock,
		challenge: challenge,
	}
}

// NewProgressView builds the view of a window as seen at `now`
func NewProgressView(p *Progress, window time.Duration, now time.Time) *ProgressView {
	if p == nil {
		return nil
	}
	return &ProgressView{
		Key:         p.Key,
		Count:       p.Count,
		PeriodStart: p.PeriodStart,
		ResetsAt:    p.PeriodStart.Add(window),
		Active:      Active(p, now, window),
	}
}

func (s *service) Missions(ctx context.Context, userID string) (*MissionsView, error) {
	if userID == "" {
		return nil, domain.NewValidationError("Missing userId")
	}

	var (
		badges     []schema.Badge
		progress   *schema.ChallengeProgress
		userBadges []schema.UserBadge
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		badges, err = s.store.ListBadges(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = s.store.GetChallengeProgress(gctx, userID, s.challenge.Key)
		return err
	})
	g.Go(func() error {
		var err error
		userBadges, err = s.store.ListUserBadges(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewStoreError("failed to load missions", err)
	}

	now := s.clock.Now()
	window := s.challenge.Window()
	current := progressFromSchema(progress)

	count := 0
	if Active(current, now, window) {
		count = current.Count
	}

	unlockedAt := make(map[string]time.Time, len(userBadges))
	for _, ub := range userBadges {
		unlockedAt[ub.BadgeID] = ub.UnlockedAt
	}

	missions := make([]Mission, 0, len(badges))
	for _, b := range badges {
		m := Mission{
			Code:        b.Key,
			Label:       b.Name,
			Description: b.Description,
			Target:      b.Target,
			Progress:    count,
			Icon:        b.Icon,
			Completed:   count >= b.Target,
		}
		if at, ok := unlockedAt[b.ID]; ok {
			m.Unlocked = true
			m.UnlockedAt = &at
		}
		missions = append(missions, m)
	}

	return &MissionsView{
		Missions:  missions,
		Challenge: NewProgressView(current, window, now),
	}, nil
}

func (s *service) ListChallenges(ctx context.Context, userID string) ([]ProgressView, error) {
	if userID == "" {
		return nil, domain.NewValidationError("Missing userId")
	}

	rows, err := s.store.ListChallengeProgress(ctx, userID)
	if err != nil {
		return nil, domain.NewStoreError("failed to list challenges", err)
	}

	now := s.clock.Now()
	views := make([]ProgressView, 0, len(rows))
	for i := range rows {
		// only the configured challenge has a known window; others are shown with the same length
		views = append(views, *NewProgressView(progressFromSchema(&rows[i]), s.challenge.Window(), now))
	}

	return views, nil
}

func (s *service) ListUserBadges(ctx context.Context, userID string) ([]UserBadgeView, error) {
	if userID == "" {
		return nil, domain.NewValidationError("Missing userId")
	}

	rows, err := s.store.ListUserBadges(ctx, userID)
	if err != nil {
		return nil, domain.NewStoreError("failed to list user badges", err)
	}

	views := make([]UserBadgeView, 0, len(rows))
	for _, ub := range rows {
		views = append(views, UserBadgeView{
			ID:          ub.Badge.ID,
			Code:        ub.Badge.Key,
			Label:       ub.Badge.Name,
			Description: ub.Badge.Description,
			Icon:        ub.Badge.Icon,
			UnlockedAt:  ub.UnlockedAt,
		})
	}

	return views, nil
}

func (s *service) SeedBadges(ctx context.Context) ([]schema.Badge, error) {
	return SeedBadges(ctx, s.store, DefaultBadges)
}
