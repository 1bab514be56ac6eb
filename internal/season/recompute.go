package season

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/metrics"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

const defaultRunsLimit = 20

// Request selects the season and the source to rebuild from
type Request struct {
	// SeasonKey is a "YYYY-MM" key; empty or "current" selects the current season
	SeasonKey string
	// Source is "ledger" or "snapshot"; empty selects the ledger
	Source string
}

// Result is the outcome of a recompute
type Result struct {
	Updated   int    `json:"updated"`
	SeasonKey string `json:"seasonKey"`
	Source    string `json:"source"`
}

// RunView is one entry of the recompute audit log
type RunView struct {
	ID         uint64         `json:"id"`
	Source     string         `json:"source"`
	Updated    int            `json:"updated"`
	Details    datatypes.JSON `json:"details"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
}

// RunHistory is a season's recompute audit log plus the finish time of its latest run
type RunHistory struct {
	SeasonKey string     `json:"seasonKey"`
	LastRunAt *time.Time `json:"lastRunAt"`
	Runs      []RunView  `json:"runs"`
}

// Recomputer rebuilds a season's like counters from a source
//
//go:generate mockgen -source=recompute.go -destination=../mocks/season_recomputer.go -package=mocks -mock_names=Recomputer=MockSeasonRecomputer
type Recomputer interface {
	Recompute(ctx context.Context, req Request) (*Result, error)
	// ListRuns returns the recompute history of a season, newest first
	ListRuns(ctx context.Context, seasonKey string, limit int) (*RunHistory, error)
}

type recomputer struct {
	store    store.Store
	resolver Resolver
	locker   Locker
	sources  map[string]Source
	clock    adapter.Clock
	json     adapter.JSON
	metrics  *metrics.Metrics
}

// NewRecomputer creates a new recomputer over the given sources
func NewRecomputer(
	st store.Store,
	resolver Resolver,
	locker Locker,
	clock adapter.Clock,
	jsonAdapter adapter.JSON,
	m *metrics.Metrics,
	sources ...Source,
) Recomputer {
	byName := make(map[string]Source, len(sources))
	for _, s := range sources {
		byName[s.Name()] = s
	}
	return &recomputer{
		store:    st,
		resolver: resolver,
		locker:   locker,
		sources:  byName,
		clock:    clock,
		json:     jsonAdapter,
		metrics:  m,
	}
}

// LastRunKey is the key-value entry holding the finish time of a season's latest recompute
func LastRunKey(seasonKey string) string {
	return "season_recompute:" + seasonKey + ":last_at"
}

func (r *recomputer) resolve(ctx context.Context, key string) (*schema.Season, error) {
	if key == "" || key == domain.CURRENT_SEASON_KEY {
		return r.resolver.Current(ctx)
	}
	return r.resolver.ByKey(ctx, key)
}

func (r *recomputer) Recompute(ctx context.Context, req Request) (*Result, error) {
	sourceName := strings.ToLower(strings.TrimSpace(req.Source))
	if sourceName == "" {
		sourceName = SourceLedger
	}
	source, ok := r.sources[sourceName]
	if !ok {
		return nil, &domain.Error{
			Kind:    domain.KindValidation,
			Message: "Unknown source " + sourceName,
			Err:     domain.ErrUnknownSnapshotSource,
		}
	}

	s, err := r.resolve(ctx, req.SeasonKey)
	if err != nil {
		return nil, err
	}

	startedAt := r.clock.Now()
	updated, err := r.run(ctx, s, source, startedAt)

	status := "success"
	switch {
	case errors.Is(err, domain.ErrRecomputeInProgress):
		status = "conflict"
	case err != nil:
		status = "error"
	}
	r.metrics.RecomputeFinished(sourceName, status, r.clock.Since(startedAt))

	if err != nil {
		return nil, err
	}

	return &Result{
		Updated:   updated,
		SeasonKey: s.Key,
		Source:    sourceName,
	}, nil
}

func (r *recomputer) run(ctx context.Context, s *schema.Season, source Source, startedAt time.Time) (int, error) {
	unlock, err := r.locker.TryLock(ctx, s.Key)
	if err != nil {
		if errors.Is(err, domain.ErrRecomputeInProgress) {
			return 0, domain.NewConflictError("Recompute already in progress", err)
		}
		return 0, domain.NewStoreError("failed to lock season", err)
	}
	defer unlock()

	// external sources are read before taking the row lock so live likes are not held up by a slow scan
	var tally *Tally
	if !source.Transactional() {
		if tally, err = source.Count(ctx, r.store, s); err != nil {
			return 0, domain.NewStoreError("failed to count season likes", err)
		}
	}

	var updated int
	err = r.store.WithSeasonLock(ctx, s.ID, func(tx store.Store) error {
		if tally == nil {
			var err error
			if tally, err = source.Count(ctx, tx, s); err != nil {
				return domain.NewStoreError("failed to count season likes", err)
			}
		}

		coinIDs, counts := sortedCounts(tally)
		if err := tx.EnsureCoins(ctx, coinIDs); err != nil {
			return domain.NewStoreError("failed to ensure coins", err)
		}

		var err error
		if updated, err = tx.ReplaceSeasonLikes(ctx, s.ID, counts); err != nil {
			return domain.NewStoreError("failed to replace season likes", err)
		}
		return nil
	})
	if err != nil {
		var classified *domain.Error
		if errors.As(err, &classified) {
			return 0, err
		}
		return 0, domain.NewStoreError("failed to lock season likes", err)
	}

	finishedAt := r.clock.Now()

	// the counters are already committed; audit failures are logged only
	details, err := r.json.Marshal(tally)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to encode recompute details", zap.Error(err))
		details = nil
	}
	if _, err := r.store.CreateRecomputeRun(ctx, store.CreateRecomputeRunInput{
		SeasonID:   s.ID,
		Source:     source.Name(),
		Updated:    updated,
		Details:    details,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to record recompute run", zap.String("season", s.Key), zap.Error(err))
	}
	if err := r.store.SetKeyValue(ctx, LastRunKey(s.Key), finishedAt.Format(time.RFC3339)); err != nil {
		logger.WarnCtx(ctx, "Failed to store last recompute time", zap.String("season", s.Key), zap.Error(err))
	}

	logger.InfoCtx(ctx, "Recomputed season likes",
		zap.String("season", s.Key),
		zap.String("source", source.Name()),
		zap.Int("updated", updated),
		zap.Int("documents", tally.Documents),
		zap.Int("skipped", tally.Skipped),
	)

	return updated, nil
}

func sortedCounts(tally *Tally) ([]string, []store.CoinCount) {
	coinIDs := make([]string, 0, len(tally.Counts))
	for coinID := range tally.Counts {
		coinIDs = append(coinIDs, coinID)
	}
	sort.Strings(coinIDs)

	counts := make([]store.CoinCount, 0, len(coinIDs))
	for _, coinID := range coinIDs {
		counts = append(counts, store.CoinCount{CoinID: coinID, Count: tally.Counts[coinID]})
	}
	return coinIDs, counts
}

func (r *recomputer) ListRuns(ctx context.Context, seasonKey string, limit int) (*RunHistory, error) {
	s, err := r.resolver.ByKey(ctx, seasonKey)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultRunsLimit
	}

	runs, err := r.store.ListRecomputeRuns(ctx, s.ID, limit)
	if err != nil {
		return nil, domain.NewStoreError("failed to list recompute runs", err)
	}

	views := make([]RunView, 0, len(runs))
	for _, run := range runs {
		views = append(views, RunView{
			ID:         run.ID,
			Source:     run.Source,
			Updated:    run.Updated,
			Details:    run.Details,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
		})
	}

	history := &RunHistory{SeasonKey: s.Key, Runs: views}

	lastRun, err := r.store.GetKeyValue(ctx, LastRunKey(s.Key))
	if err != nil {
		return nil, domain.NewStoreError("failed to read last recompute time", err)
	}
	if lastRun != "" {
		at, err := time.Parse(time.RFC3339, lastRun)
		if err != nil {
			logger.WarnCtx(ctx, "Ignoring malformed last recompute time", zap.String("season", s.Key), zap.String("value", lastRun))
		} else {
			history.LastRunAt = &at
		}
	}

	return history, nil
}
