package season

import (
	"context"
	"sync"
	"time"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

// View is the client-facing shape of a season
type View struct {
	Key      string    `json:"key"`
	Name     string    `json:"name"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

// NewView converts a stored season
func NewView(s *schema.Season) *View {
	if s == nil {
		return nil
	}
	return &View{
		Key:      s.Key,
		Name:     s.Name,
		StartsAt: s.StartsAt,
		EndsAt:   s.EndsAt,
	}
}

// Resolver maps instants and keys to stored seasons
//
//go:generate mockgen -source=resolver.go -destination=../mocks/season_resolver.go -package=mocks -mock_names=Resolver=MockSeasonResolver
type Resolver interface {
	// Ensure returns the season of at's UTC month, creating it or refreshing its bounds
	Ensure(ctx context.Context, at time.Time) (*schema.Season, error)
	// Current ensures the season containing now
	Current(ctx context.Context) (*schema.Season, error)
	// ByKey looks a season up without creating it
	ByKey(ctx context.Context, key string) (*schema.Season, error)
}

type resolver struct {
	store store.Store
	clock adapter.Clock

	mu     sync.RWMutex
	recent *schema.Season
}

// NewResolver creates a new season resolver
func NewResolver(st store.Store, clock adapter.Clock) Resolver {
	return &resolver{store: st, clock: clock}
}

func (r *resolver) Ensure(ctx context.Context, at time.Time) (*schema.Season, error) {
	key := domain.MonthKey(at)

	r.mu.RLock()
	recent := r.recent
	r.mu.RUnlock()
	if recent != nil && recent.Key == key {
		return recent, nil
	}

	start, end := domain.MonthRange(at)
	s, err := r.store.GetSeasonAt(ctx, at)
	if err != nil {
		return nil, domain.NewStoreError("failed to get season", err)
	}

	// a stored row with the wrong key or stale bounds is rewritten
	if s == nil || s.Key != key || !s.StartsAt.Equal(start) || !s.EndsAt.Equal(end) {
		s, err = r.store.UpsertSeason(ctx, store.UpsertSeasonInput{
			Key:      key,
			Name:     domain.SeasonName(key),
			StartsAt: start,
			EndsAt:   end,
		})
		if err != nil {
			return nil, domain.NewStoreError("failed to ensure season", err)
		}
	}

	r.mu.Lock()
	r.recent = s
	r.mu.Unlock()

	return s, nil
}

func (r *resolver) Current(ctx context.Context) (*schema.Season, error) {
	return r.Ensure(ctx, r.clock.Now())
}

func (r *resolver) ByKey(ctx context.Context, key string) (*schema.Season, error) {
	if _, err := domain.ParseMonthKey(key); err != nil {
		return nil, err
	}

	s, err := r.store.GetSeasonByKey(ctx, key)
	if err != nil {
		return nil, domain.NewStoreError("failed to get season", err)
	}
	if s == nil {
		return nil, domain.NewNotFoundError("Season not found", domain.ErrSeasonNotFound)
	}

	return s, nil
}
