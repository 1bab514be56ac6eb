package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/logger"
)

// SchedulerConfig holds the periodic recompute settings
type SchedulerConfig struct {
	// Spec is a cron expression or descriptor such as "@every 15m"
	Spec        string
	Source      string
	SeasonsBack int
}

// Scheduler runs the recompute job on a cron schedule
type Scheduler struct {
	cfg   SchedulerConfig
	job   RecomputeJob
	clock adapter.Clock
	cron  *cron.Cron
}

// NewScheduler creates a scheduler. Overlapping ticks are skipped.
func NewScheduler(cfg SchedulerConfig, job RecomputeJob, clock adapter.Clock) *Scheduler {
	cronLogger := NewCronLogger(logger.Default())
	return &Scheduler{
		cfg:   cfg,
		job:   job,
		clock: clock,
		cron: cron.New(
			cron.WithLocation(clock.Now().Location()),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
	}
}

// Run schedules the job and blocks until ctx is done, then waits for a running tick
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.Spec, func() { s.Tick(ctx) }); err != nil {
		return fmt.Errorf("invalid recompute schedule %q: %w", s.cfg.Spec, err)
	}

	logger.InfoCtx(ctx, "Starting recompute scheduler",
		zap.String("spec", s.cfg.Spec),
		zap.String("source", s.cfg.Source),
		zap.Int("seasons_back", s.cfg.SeasonsBack),
	)

	s.cron.Start()
	<-ctx.Done()

	logger.InfoCtx(ctx, "Stopping recompute scheduler")
	<-s.cron.Stop().Done()

	return nil
}

// Tick recomputes the current season and the configured number of previous months
func (s *Scheduler) Tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	keys := SeasonKeys(s.clock.Now(), s.cfg.SeasonsBack)
	results, err := s.job.Run(ctx, keys, s.cfg.Source)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("scheduled recompute failed: %w", err), zap.Strings("seasons", keys))
	}

	for _, res := range results {
		logger.InfoCtx(ctx, "Scheduled recompute finished",
			zap.String("season", res.SeasonKey),
			zap.String("source", res.Source),
			zap.Int("updated", res.Updated),
		)
	}
}
