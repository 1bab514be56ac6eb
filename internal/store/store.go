package store

import (
	"context"
	"time"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertCoin creates or refreshes a coin's display metadata (latest write wins)
	UpsertCoin(ctx context.Context, input UpsertCoinInput) error
	// EnsureCoins inserts fallback metadata for coins that have no directory entry yet
	EnsureCoins(ctx context.Context, coinIDs []string) error
	// GetCoinsByIDs retrieves coins by their identifiers; unknown ids are omitted
	GetCoinsByIDs(ctx context.Context, coinIDs []string) ([]schema.Coin, error)

	// CreateSwipe appends a swipe to the ledger
	CreateSwipe(ctx context.Context, input CreateSwipeInput) (*schema.Swipe, error)
	// CreateSwipeWithSeasonLike appends a like and increments its season counter in one transaction
	// that holds a shared lock on the season row, so a season rebuild sees both writes or neither
	CreateSwipeWithSeasonLike(ctx context.Context, input CreateSwipeInput, seasonID uint64) (*schema.Swipe, *schema.SeasonLike, error)
	// CountLikesByCoin groups all swipes with the given actions by coin, highest count first
	CountLikesByCoin(ctx context.Context, actions []domain.Action, limit int) ([]CoinCount, error)
	// CountSwipesByCoinBetween groups swipes created within [from, to) by coin
	CountSwipesByCoinBetween(ctx context.Context, actions []domain.Action, from, to time.Time) ([]CoinCount, error)

	// GetChallengeProgress retrieves a user's progress for a challenge, nil if none
	GetChallengeProgress(ctx context.Context, userID, key string) (*schema.ChallengeProgress, error)
	// ResetChallengeProgress starts a new window at the given time with a count of 1
	ResetChallengeProgress(ctx context.Context, userID, key string, at time.Time) (*schema.ChallengeProgress, error)
	// IncrementChallengeProgress atomically adds one to the count if the window still starts at periodStart.
	// Returns nil when no row matched, i.e. the window was reset concurrently.
	IncrementChallengeProgress(ctx context.Context, userID, key string, periodStart time.Time) (*schema.ChallengeProgress, error)
	// ListChallengeProgress retrieves all challenge progress of a user, most recent window first
	ListChallengeProgress(ctx context.Context, userID string) ([]schema.ChallengeProgress, error)

	// UpsertBadge creates or updates a badge definition by key
	UpsertBadge(ctx context.Context, input UpsertBadgeInput) (*schema.Badge, error)
	// ListBadges retrieves all badges ordered by target
	ListBadges(ctx context.Context) ([]schema.Badge, error)
	// ListBadgesByWindow retrieves the badges evaluated against a window, ordered by target
	ListBadgesByWindow(ctx context.Context, windowHours int) ([]schema.Badge, error)
	// CreateUserBadge records an unlock; returns false when the user already had the badge
	CreateUserBadge(ctx context.Context, userID, badgeID string, at time.Time) (bool, error)
	// ListUserBadges retrieves a user's unlocked badges with their definitions, newest first
	ListUserBadges(ctx context.Context, userID string) ([]schema.UserBadge, error)

	// UpsertSeason creates a season or refreshes its name and bounds
	UpsertSeason(ctx context.Context, input UpsertSeasonInput) (*schema.Season, error)
	// GetSeasonByKey retrieves a season by key, nil if absent
	GetSeasonByKey(ctx context.Context, key string) (*schema.Season, error)
	// GetSeasonAt retrieves the season whose month contains at, nil if absent
	GetSeasonAt(ctx context.Context, at time.Time) (*schema.Season, error)

	// IncrementSeasonLike atomically adds one like for a coin in a season under a shared season lock
	IncrementSeasonLike(ctx context.Context, seasonID uint64, coinID string) (*schema.SeasonLike, error)
	// ListSeasonLikes retrieves a season's counters, highest first
	ListSeasonLikes(ctx context.Context, seasonID uint64, limit int) ([]schema.SeasonLike, error)
	// ReplaceSeasonLikes deletes a season's counters and inserts the given counts in one transaction
	// holding the season row exclusively
	ReplaceSeasonLikes(ctx context.Context, seasonID uint64, counts []CoinCount) (int, error)
	// WithSeasonLock runs fn in a transaction holding the season row FOR UPDATE.
	// Live season like increments wait until fn returns.
	WithSeasonLock(ctx context.Context, seasonID uint64, fn func(tx Store) error) error
	// CreateRecomputeRun records a finished recompute
	CreateRecomputeRun(ctx context.Context, input CreateRecomputeRunInput) (*schema.SeasonRecomputeRun, error)
	// ListRecomputeRuns retrieves a season's recompute history, newest first
	ListRecomputeRuns(ctx context.Context, seasonID uint64, limit int) ([]schema.SeasonRecomputeRun, error)

	// SetKeyValue stores a key-value pair
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key, empty if absent
	GetKeyValue(ctx context.Context, key string) (string, error)
}

// UpsertCoinInput holds the metadata written for a coin
type UpsertCoinInput struct {
	CoinID   string
	Symbol   string
	Name     string
	Category *string
}

// CreateSwipeInput holds a swipe to append to the ledger
type CreateSwipeInput struct {
	ID        string
	UserID    string
	CoinID    string
	Action    domain.Action
	CreatedAt time.Time
}

// CoinCount is an aggregated count for one coin
type CoinCount struct {
	CoinID string `gorm:"column:coin_id"`
	Count  int    `gorm:"column:like_count"`
}

// UpsertBadgeInput holds a badge definition
type UpsertBadgeInput struct {
	Key         string
	Name        string
	Description string
	Target      int
	WindowHours int
	Icon        string
}

// UpsertSeasonInput holds the canonical values of a season
type UpsertSeasonInput struct {
	Key      string
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
}

// CreateRecomputeRunInput holds the outcome of a recompute
type CreateRecomputeRunInput struct {
	SeasonID   uint64
	Source     string
	Updated    int
	Details    []byte
	StartedAt  time.Time
	FinishedAt time.Time
}
