package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/config"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/gamification"
	"github.com/swipto/swipto-api/internal/jobs"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/providers/vendors/firestore"
	"github.com/swipto/swipto-api/internal/season"
	"github.com/swipto/swipto-api/internal/store"
)

// runtime holds the dependencies shared by every command
type runtime struct {
	cfg        *config.JobsConfig
	clock      adapter.Clock
	store      store.Store
	resolver   season.Resolver
	recomputer season.Recomputer
	redis      adapter.RedisClient
	firestore  adapter.Firestore
}

func main() {
	rt := &runtime{}

	app := &cli.App{
		Name:  "swipto-jobs",
		Usage: "Seed and recompute Swipto gamification data",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to configuration file"},
			&cli.StringFlag{Name: "env", Value: "config/", Usage: "Path to environment files"},
		},
		Before: func(c *cli.Context) error {
			return rt.init(c.Context, c.String("config"), c.String("env"))
		},
		After: func(c *cli.Context) error {
			rt.close()
			return nil
		},
		Commands: []*cli.Command{
			commandSeed(rt),
			commandRecompute(rt),
			commandSchedule(rt),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error(err, zap.String("component", "jobs"))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func (rt *runtime) init(ctx context.Context, configFile, envPath string) error {
	config.ChdirRepoRoot()
	cfg, err := config.LoadJobsConfig(configFile, envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	rt.cfg = cfg

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		LogFile:         cfg.LogFile,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "swipto-jobs",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		return fmt.Errorf("failed to configure connection pool: %w", err)
	}

	rt.clock = adapter.NewClock()
	rt.store = store.NewPGStore(db)
	rt.resolver = season.NewResolver(rt.store, rt.clock)

	var locker season.Locker
	if cfg.Redis.Addr != "" {
		rt.redis = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := rt.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		locker = season.NewRedisLocker(rt.redis)
	} else {
		locker = season.NewNoopLocker()
	}

	sources := []season.Source{season.NewLedgerSource()}
	if cfg.Vendors.FirestoreProject != "" {
		fsClient, err := adapter.NewFirestore(ctx, cfg.Vendors.FirestoreProject, cfg.Vendors.FirestoreCredentialsFile)
		if err != nil {
			return err
		}
		rt.firestore = fsClient
		sources = append(sources, season.NewSnapshotSource(firestore.NewClient(fsClient)))
	}

	// jobs run outside the API process, so there is no scrape endpoint for metrics
	rt.recomputer = season.NewRecomputer(rt.store, rt.resolver, locker, rt.clock, adapter.NewJSON(), nil, sources...)

	return nil
}

func (rt *runtime) close() {
	if rt.redis != nil {
		if err := rt.redis.Close(); err != nil {
			logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	if rt.firestore != nil {
		if err := rt.firestore.Close(); err != nil {
			logger.Warn("Failed to close Firestore client", zap.Error(err))
		}
	}
	logger.Flush(2 * time.Second)
}

func commandSeed(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Upsert the badge catalog and ensure the current season exists",
		Action: func(c *cli.Context) error {
			svc := gamification.NewService(rt.store, rt.clock, domain.DefaultChallenge)
			_, err := jobs.Seed(c.Context, svc, rt.resolver)
			return err
		},
	}
}

func commandRecompute(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "recompute",
		Usage: "Rebuild season like counters from a source",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "season", Value: cli.NewStringSlice(domain.CURRENT_SEASON_KEY), Usage: "Season keys (YYYY-MM or current)"},
			&cli.StringFlag{Name: "source", Value: season.SourceLedger, Usage: "ledger or snapshot"},
			&cli.IntFlag{Name: "workers", Value: 2, Usage: "Seasons recomputed concurrently"},
		},
		Action: func(c *cli.Context) error {
			job := jobs.NewRecomputeJob(rt.recomputer, c.Int("workers"))
			results, err := job.Run(c.Context, c.StringSlice("season"), c.String("source"))
			for _, res := range results {
				logger.InfoCtx(c.Context, "Recompute finished",
					zap.String("season", res.SeasonKey),
					zap.String("source", res.Source),
					zap.Int("updated", res.Updated),
				)
			}
			return err
		},
	}
}

func commandSchedule(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Recompute the current and previous seasons on a cron schedule",
		Action: func(c *cli.Context) error {
			sc := rt.cfg.Scheduler
			job := jobs.NewRecomputeJob(rt.recomputer, sc.WorkerPoolSize)
			scheduler := jobs.NewScheduler(jobs.SchedulerConfig{
				Spec:        sc.RecomputeSpec,
				Source:      sc.Source,
				SeasonsBack: sc.SeasonsBack,
			}, job, rt.clock)

			return scheduler.Run(c.Context)
		},
	}
}
