package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool applies pool settings to the sql.DB behind a GORM connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings fills zero values with defaults
// (20 open, 5 idle, 5m lifetime, 10m idle time) and keeps idle <= open.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize keeps a bulk insert under PostgreSQL's 65535 bind parameter limit.
// A fixed headroom is reserved for ON CONFLICT parameters and GORM-added columns.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	safeBatchSize := max((maxParams-totalHeadroom)/max(fieldsPerRecord, 1), 1)
	if totalRecords > 0 && safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

func actionStrings(actions []domain.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a))
	}
	return out
}

// =============================================================================
// Coin Operations
// =============================================================================

// UpsertCoin creates or refreshes a coin. A nil category keeps the stored one.
func (s *pgStore) UpsertCoin(ctx context.Context, input UpsertCoinInput) error {
	if input.CoinID == "" {
		return fmt.Errorf("coin id is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = input.CoinID
	}
	coin := schema.Coin{
		CoinID:   input.CoinID,
		Symbol:   domain.NormalizeSymbol(input.Symbol, input.CoinID),
		Name:     name,
		Category: input.Category,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "coin_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"symbol":     coin.Symbol,
				"name":       coin.Name,
				"category":   gorm.Expr("COALESCE(EXCLUDED.category, coins.category)"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).
		Create(&coin).Error
	if err != nil {
		return fmt.Errorf("failed to upsert coin: %w", err)
	}

	return nil
}

// EnsureCoins inserts fallback rows for unknown coins and leaves existing rows untouched
func (s *pgStore) EnsureCoins(ctx context.Context, coinIDs []string) error {
	seen := make(map[string]struct{}, len(coinIDs))
	coins := make([]schema.Coin, 0, len(coinIDs))
	for _, id := range coinIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		fallback := domain.CoinFallback(id)
		coins = append(coins, schema.Coin{
			CoinID: id,
			Symbol: fallback.Symbol,
			Name:   fallback.Name,
		})
	}
	if len(coins) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(coins, calculateSafeBatchSize(len(coins), 6)).Error
	if err != nil {
		return fmt.Errorf("failed to ensure coins: %w", err)
	}

	return nil
}

// GetCoinsByIDs retrieves coins by their identifiers
func (s *pgStore) GetCoinsByIDs(ctx context.Context, coinIDs []string) ([]schema.Coin, error) {
	if len(coinIDs) == 0 {
		return []schema.Coin{}, nil
	}

	var coins []schema.Coin
	err := s.db.WithContext(ctx).Where("coin_id IN ?", coinIDs).Find(&coins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get coins by ids: %w", err)
	}

	return coins, nil
}

// =============================================================================
// Swipe Operations
// =============================================================================

// CreateSwipe appends a swipe to the ledger
func (s *pgStore) CreateSwipe(ctx context.Context, input CreateSwipeInput) (*schema.Swipe, error) {
	swipe := &schema.Swipe{
		ID:        input.ID,
		UserID:    input.UserID,
		CoinID:    input.CoinID,
		Action:    input.Action,
		CreatedAt: input.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(swipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}

	return swipe, nil
}

// CountLikesByCoin groups swipes by coin. Ties are ordered by coin id ascending.
func (s *pgStore) CountLikesByCoin(ctx context.Context, actions []domain.Action, limit int) ([]CoinCount, error) {
	var counts []CoinCount

	query := s.db.WithContext(ctx).
		Model(&schema.Swipe{}).
		Select("coin_id, COUNT(*) AS like_count").
		Where("action IN ?", actionStrings(actions)).
		Group("coin_id").
		Order("like_count DESC, coin_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count swipes by coin: %w", err)
	}

	return counts, nil
}

// CountSwipesByCoinBetween groups swipes created within [from, to) by coin
func (s *pgStore) CountSwipesByCoinBetween(ctx context.Context, actions []domain.Action, from, to time.Time) ([]CoinCount, error) {
	var counts []CoinCount

	err := s.db.WithContext(ctx).
		Model(&schema.Swipe{}).
		Select("coin_id, COUNT(*) AS like_count").
		Where("action IN ?", actionStrings(actions)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("coin_id").
		Order("like_count DESC, coin_id ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count swipes between: %w", err)
	}

	return counts, nil
}

// =============================================================================
// Challenge Progress Operations
// =============================================================================

// GetChallengeProgress retrieves a user's progress for a challenge
func (s *pgStore) GetChallengeProgress(ctx context.Context, userID, key string) (*schema.ChallengeProgress, error) {
	var progress schema.ChallengeProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get challenge progress: %w", err)
	}

	return &progress, nil
}

// ResetChallengeProgress upserts the progress to {count: 1, period_start: at}
func (s *pgStore) ResetChallengeProgress(ctx context.Context, userID, key string, at time.Time) (*schema.ChallengeProgress, error) {
	progress := schema.ChallengeProgress{
		UserID:      userID,
		Key:         key,
		Count:       1,
		PeriodStart: at,
		UpdatedAt:   at,
	}

	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"count":        1,
					"period_start": at,
					"updated_at":   gorm.Expr("now()"),
				}),
			},
			clause.Returning{},
		).
		Create(&progress).Error
	if err != nil {
		return nil, fmt.Errorf("failed to reset challenge progress: %w", err)
	}

	return &progress, nil
}

// IncrementChallengeProgress adds one to the count, guarded by the window start
func (s *pgStore) IncrementChallengeProgress(ctx context.Context, userID, key string, periodStart time.Time) (*schema.ChallengeProgress, error) {
	var progress schema.ChallengeProgress

	result := s.db.WithContext(ctx).
		Model(&progress).
		Clauses(clause.Returning{}).
		Where("user_id = ? AND key = ? AND period_start = ?", userID, key, periodStart).
		Updates(map[string]interface{}{
			"count":      gorm.Expr("count + 1"),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to increment challenge progress: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &progress, nil
}

// ListChallengeProgress retrieves all challenge progress of a user
func (s *pgStore) ListChallengeProgress(ctx context.Context, userID string) ([]schema.ChallengeProgress, error) {
	var progress []schema.ChallengeProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("period_start DESC").
		Find(&progress).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list challenge progress: %w", err)
	}

	return progress, nil
}

// =============================================================================
// Badge Operations
// =============================================================================

// UpsertBadge creates or updates a badge by key; the id of an existing badge is preserved
func (s *pgStore) UpsertBadge(ctx context.Context, input UpsertBadgeInput) (*schema.Badge, error) {
	if input.Key == "" || input.Target <= 0 || input.WindowHours <= 0 {
		return nil, fmt.Errorf("invalid badge definition %q", input.Key)
	}

	badge := schema.Badge{
		ID:          uuid.NewString(),
		Key:         input.Key,
		Name:        input.Name,
		Description: input.Description,
		Target:      input.Target,
		WindowHours: input.WindowHours,
		Icon:        input.Icon,
	}

	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"name":         badge.Name,
					"description":  badge.Description,
					"target":       badge.Target,
					"window_hours": badge.WindowHours,
					"icon":         badge.Icon,
					"updated_at":   gorm.Expr("now()"),
				}),
			},
			clause.Returning{},
		).
		Create(&badge).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert badge: %w", err)
	}

	return &badge, nil
}

// ListBadges retrieves all badges ordered by target
func (s *pgStore) ListBadges(ctx context.Context) ([]schema.Badge, error) {
	var badges []schema.Badge
	err := s.db.WithContext(ctx).Order("target ASC, key ASC").Find(&badges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}

	return badges, nil
}

// ListBadgesByWindow retrieves badges evaluated against the given window
func (s *pgStore) ListBadgesByWindow(ctx context.Context, windowHours int) ([]schema.Badge, error) {
	var badges []schema.Badge
	err := s.db.WithContext(ctx).
		Where("window_hours = ?", windowHours).
		Order("target ASC, key ASC").
		Find(&badges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list badges by window: %w", err)
	}

	return badges, nil
}

// CreateUserBadge inserts an unlock, doing nothing when (user, badge) already exists
func (s *pgStore) CreateUserBadge(ctx context.Context, userID, badgeID string, at time.Time) (bool, error) {
	userBadge := schema.UserBadge{
		UserID:     userID,
		BadgeID:    badgeID,
		UnlockedAt: at,
	}

	result := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
			DoNothing: true,
		}).
		Create(&userBadge)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create user badge: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ListUserBadges retrieves a user's unlocked badges with their definitions
func (s *pgStore) ListUserBadges(ctx context.Context, userID string) ([]schema.UserBadge, error) {
	var userBadges []schema.UserBadge
	err := s.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC, id DESC").
		Find(&userBadges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user badges: %w", err)
	}

	return userBadges, nil
}

// =============================================================================
// Season Operations
// =============================================================================

// UpsertSeason creates a season or refreshes its name and bounds
func (s *pgStore) UpsertSeason(ctx context.Context, input UpsertSeasonInput) (*schema.Season, error) {
	season := schema.Season{
		Key:      input.Key,
		Name:     input.Name,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}

	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"name":      input.Name,
					"starts_at": input.StartsAt,
					"ends_at":   input.EndsAt,
				}),
			},
			clause.Returning{},
		).
		Create(&season).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert season: %w", err)
	}

	return &season, nil
}

// GetSeasonByKey retrieves a season by key
func (s *pgStore) GetSeasonByKey(ctx context.Context, key string) (*schema.Season, error) {
	var season schema.Season
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get season by key: %w", err)
	}

	return &season, nil
}

// GetSeasonAt retrieves the season with starts_at <= at < ends_at + 1ms.
// ends_at is stored at millisecond precision while timestamps carry microseconds.
func (s *pgStore) GetSeasonAt(ctx context.Context, at time.Time) (*schema.Season, error) {
	var season schema.Season
	err := s.db.WithContext(ctx).
		Where("starts_at <= ? AND ends_at + interval '1 millisecond' > ?", at, at).
		Order("starts_at DESC").
		First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get season at time: %w", err)
	}

	return &season, nil
}

// =============================================================================
// Season Like Operations
// =============================================================================

// lockSeason takes a row lock on a season inside tx. strength is "SHARE" or "UPDATE".
func lockSeason(tx *gorm.DB, seasonID uint64, strength string) error {
	var season schema.Season
	err := tx.Clauses(clause.Locking{Strength: strength}).
		Select("id").
		Where("id = ?", seasonID).
		Take(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("season %d does not exist", seasonID)
		}
		return fmt.Errorf("failed to lock season: %w", err)
	}

	return nil
}

// IncrementSeasonLike upserts a counter with likes = likes + 1.
// The shared season lock makes the increment wait for a running rebuild of the same season.
func (s *pgStore) IncrementSeasonLike(ctx context.Context, seasonID uint64, coinID string) (*schema.SeasonLike, error) {
	like := schema.SeasonLike{
		SeasonID: seasonID,
		CoinID:   coinID,
		Likes:    1,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSeason(tx, seasonID, "SHARE"); err != nil {
			return err
		}

		return tx.Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "season_id"}, {Name: "coin_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"likes": gorm.Expr("season_likes.likes + 1"),
				}),
			},
			clause.Returning{},
		).Create(&like).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to increment season like: %w", err)
	}

	return &like, nil
}

// CreateSwipeWithSeasonLike records a like and its season increment atomically.
// The season row is locked before the swipe is inserted so a concurrent ledger
// rebuild either counts the swipe and overwrites the increment, or runs first
// and the increment lands on top of the rebuilt counter.
func (s *pgStore) CreateSwipeWithSeasonLike(ctx context.Context, input CreateSwipeInput, seasonID uint64) (*schema.Swipe, *schema.SeasonLike, error) {
	var (
		swipe *schema.Swipe
		like  *schema.SeasonLike
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSeason(tx, seasonID, "SHARE"); err != nil {
			return err
		}

		txStore := &pgStore{db: tx}

		var err error
		swipe, err = txStore.CreateSwipe(ctx, input)
		if err != nil {
			return err
		}

		like, err = txStore.IncrementSeasonLike(ctx, seasonID, input.CoinID)
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record like: %w", err)
	}

	return swipe, like, nil
}

// ListSeasonLikes retrieves a season's counters ordered by likes, then coin id
func (s *pgStore) ListSeasonLikes(ctx context.Context, seasonID uint64, limit int) ([]schema.SeasonLike, error) {
	var likes []schema.SeasonLike

	query := s.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("likes DESC, coin_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("failed to list season likes: %w", err)
	}

	return likes, nil
}

// ReplaceSeasonLikes rebuilds a season's counters. Non-positive counts are skipped.
func (s *pgStore) ReplaceSeasonLikes(ctx context.Context, seasonID uint64, counts []CoinCount) (int, error) {
	rows := make([]schema.SeasonLike, 0, len(counts))
	for _, c := range counts {
		if c.CoinID == "" || c.Count <= 0 {
			continue
		}
		rows = append(rows, schema.SeasonLike{
			SeasonID: seasonID,
			CoinID:   c.CoinID,
			Likes:    c.Count,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSeason(tx, seasonID, "UPDATE"); err != nil {
			return err
		}

		if err := tx.Where("season_id = ?", seasonID).Delete(&schema.SeasonLike{}).Error; err != nil {
			return fmt.Errorf("failed to delete season likes: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(rows, calculateSafeBatchSize(len(rows), 3)).Error; err != nil {
			return fmt.Errorf("failed to insert season likes: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to replace season likes: %w", err)
	}

	return len(rows), nil
}

// WithSeasonLock runs fn against a transaction-bound store holding the season row FOR UPDATE
func (s *pgStore) WithSeasonLock(ctx context.Context, seasonID uint64, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSeason(tx, seasonID, "UPDATE"); err != nil {
			return err
		}

		return fn(&pgStore{db: tx})
	})
}

// CreateRecomputeRun records a finished recompute
func (s *pgStore) CreateRecomputeRun(ctx context.Context, input CreateRecomputeRunInput) (*schema.SeasonRecomputeRun, error) {
	run := &schema.SeasonRecomputeRun{
		SeasonID:   input.SeasonID,
		Source:     input.Source,
		Updated:    input.Updated,
		StartedAt:  input.StartedAt,
		FinishedAt: input.FinishedAt,
	}
	if len(input.Details) > 0 {
		run.Details = datatypes.JSON(input.Details)
	}

	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to create recompute run: %w", err)
	}

	return run, nil
}

// ListRecomputeRuns retrieves a season's recompute history
func (s *pgStore) ListRecomputeRuns(ctx context.Context, seasonID uint64, limit int) ([]schema.SeasonRecomputeRun, error) {
	var runs []schema.SeasonRecomputeRun

	query := s.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("started_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recompute runs: %w", err)
	}

	return runs, nil
}

// =============================================================================
// Key-Value Operations
// =============================================================================

// SetKeyValue stores a key-value pair, overwriting any previous value
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValue{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      value,
				"updated_at": gorm.Expr("now()"),
			}),
		}).
		Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValue
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}
