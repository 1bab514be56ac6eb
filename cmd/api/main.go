package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/api/middleware"
	"github.com/swipto/swipto-api/internal/api/rest"
	"github.com/swipto/swipto-api/internal/api/server"
	"github.com/swipto/swipto-api/internal/cache"
	"github.com/swipto/swipto-api/internal/config"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/gamification"
	"github.com/swipto/swipto-api/internal/leaderboard"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/market"
	"github.com/swipto/swipto-api/internal/messaging"
	"github.com/swipto/swipto-api/internal/metrics"
	"github.com/swipto/swipto-api/internal/providers/jetstream"
	"github.com/swipto/swipto-api/internal/providers/vendors/coingecko"
	"github.com/swipto/swipto-api/internal/providers/vendors/firestore"
	"github.com/swipto/swipto-api/internal/ratelimit"
	"github.com/swipto/swipto-api/internal/season"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/swipe"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

const (
	localCacheSize = 1000
	marketCacheTTL = 60 * time.Second
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		LogFile:         cfg.LogFile,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "swipto-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Swipto API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Vendors.HTTPTimeout)
	m := metrics.New()

	// Redis backs the shared cache, the rate limiter and the recompute lock when configured
	var redisClient adapter.RedisClient
	var leaderboardCache, marketCache cache.Cache
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Failed to close Redis client", zap.Error(err))
			}
		}()
		leaderboardCache = cache.NewRedis(redisClient.Universal(), false, 0)
		marketCache = leaderboardCache
		logger.InfoCtx(ctx, "Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.WarnCtx(ctx, "Redis not configured, using in-process cache, rate limits and locks")
		if cfg.Leaderboard.CacheTTL > 0 {
			leaderboardCache = cache.NewLocal(localCacheSize, cfg.Leaderboard.CacheTTL)
		}
		marketCache = cache.NewLocal(localCacheSize, marketCacheTTL)
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.SwipesPerMinute > 0 {
		limiter, err = ratelimit.New(ratelimit.Config{
			PerMinute: cfg.RateLimit.SwipesPerMinute,
			Burst:     cfg.RateLimit.Burst,
		}, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
	}

	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, domain events are disabled")
	}

	var locker season.Locker
	if redisClient != nil {
		locker = season.NewRedisLocker(redisClient)
	} else {
		locker = season.NewNoopLocker()
	}

	challenge := domain.Challenge{
		Key:         cfg.Gamification.ChallengeKey,
		Action:      domain.ActionLike,
		WindowHours: cfg.Gamification.WindowHours,
	}

	// Domain services
	resolver := season.NewResolver(dataStore, clock)
	board := leaderboard.NewService(leaderboard.Config{
		DefaultLimit: cfg.Leaderboard.DefaultLimit,
		MaxLimit:     cfg.Leaderboard.MaxLimit,
		CacheTTL:     cfg.Leaderboard.CacheTTL,
	}, dataStore, resolver, leaderboardCache, m)

	sources := []season.Source{season.NewLedgerSource()}
	if cfg.Vendors.FirestoreProject != "" {
		fsClient, err := adapter.NewFirestore(ctx, cfg.Vendors.FirestoreProject, cfg.Vendors.FirestoreCredentialsFile)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create Firestore client", zap.Error(err), zap.String("project", cfg.Vendors.FirestoreProject))
		}
		defer func() {
			if err := fsClient.Close(); err != nil {
				logger.WarnCtx(ctx, "Failed to close Firestore client", zap.Error(err))
			}
		}()
		sources = append(sources, season.NewSnapshotSource(firestore.NewClient(fsClient)))
	}
	recomputer := season.NewRecomputer(dataStore, resolver, locker, clock, jsonAdapter, m, sources...)

	ingestor := swipe.NewIngestor(
		dataStore,
		gamification.NewTracker(dataStore),
		gamification.NewBadgeEvaluator(dataStore),
		resolver,
		limiter,
		publisher,
		board,
		clock,
		m,
		challenge,
	)

	handler := rest.NewHandler(cfg.Debug, cfg.Auth.RequireUserToken, rest.Services{
		Ingestor:     ingestor,
		Leaderboard:  board,
		Seasons:      resolver,
		Recomputer:   recomputer,
		Gamification: gamification.NewService(dataStore, clock, challenge),
		Markets: market.NewService(
			coingecko.NewClient(httpClient, cfg.Vendors.CoinGeckoURL, cfg.Vendors.CoinGeckoAPIKey),
			marketCache,
		),
	})

	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey:     cfg.Auth.JWTPublicKey,
			APIKeys:          cfg.Auth.APIKeys,
			RequireUserToken: cfg.Auth.RequireUserToken,
		},
		Admin: rest.AdminConfig{
			AdminKey: cfg.Admin.AdminKey,
			CronKey:  cfg.Admin.CronKey,
		},
	}

	srv := server.New(serverConfig, handler, m)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Shutdown context must not derive from the canceled ctx
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
