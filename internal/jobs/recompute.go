package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/season"
)

// RecomputeJob rebuilds several seasons concurrently
//
//go:generate mockgen -source=recompute.go -destination=../mocks/recompute_job.go -package=mocks -mock_names=RecomputeJob=MockRecomputeJob
type RecomputeJob interface {
	// Run recomputes each season key from source. Seasons that do not exist or are
	// already being recomputed are skipped; other failures are joined into the returned error.
	Run(ctx context.Context, keys []string, source string) ([]season.Result, error)
}

type recomputeJob struct {
	recomputer season.Recomputer
	workers    int
}

// NewRecomputeJob creates a recompute job with a bounded worker pool
func NewRecomputeJob(recomputer season.Recomputer, workers int) RecomputeJob {
	if workers <= 0 {
		workers = 1
	}
	return &recomputeJob{recomputer: recomputer, workers: workers}
}

func (j *recomputeJob) Run(ctx context.Context, keys []string, source string) ([]season.Result, error) {
	pool := pond.NewPool(j.workers, pond.WithContext(ctx))

	var (
		mu      sync.Mutex
		results []season.Result
		errs    []error
	)

	for _, key := range keys {
		pool.Submit(func() {
			res, err := j.recomputer.Recompute(ctx, season.Request{SeasonKey: key, Source: source})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				results = append(results, *res)
			case domain.IsNotFound(err):
				logger.InfoCtx(ctx, "Season does not exist, skipping recompute", zap.String("season", key))
			case domain.KindOf(err) == domain.KindConflict:
				logger.WarnCtx(ctx, "Season recompute already running, skipping", zap.String("season", key))
			default:
				errs = append(errs, fmt.Errorf("season %s: %w", key, err))
			}
		})
	}

	pool.StopAndWait()

	return results, errors.Join(errs...)
}

// SeasonKeys returns "current" followed by the keys of the `back` previous months
func SeasonKeys(now time.Time, back int) []string {
	keys := []string{domain.CURRENT_SEASON_KEY}

	start, _ := domain.MonthRange(now)
	for i := 1; i <= back; i++ {
		keys = append(keys, domain.MonthKey(start.AddDate(0, -i, 0)))
	}

	return keys
}
