package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/swipto/swipto-api/internal/adapter"
	"github.com/swipto/swipto-api/internal/logger"
)

const (
	defaultKeyPrefix = "swipto:ratelimit:"
	// redisRetryAfter is how long the limiter stays local after a Redis error
	redisRetryAfter = 30 * time.Second
	// maxLocalKeys bounds the per-key local limiters; the set is dropped when exceeded
	maxLocalKeys = 10000
)

// Config holds the limits applied per key
type Config struct {
	PerMinute int
	Burst     int
	KeyPrefix string
}

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether an action identified by key may proceed now
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type limiter struct {
	cfg         Config
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock

	mu    sync.Mutex
	local map[string]*rate.Limiter

	redisDownSince atomic.Int64
}

// New creates a limiter. A nil Redis client keeps every decision in-process.
func New(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if cfg.PerMinute <= 0 {
		return nil, fmt.Errorf("per_minute must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.PerMinute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}

	l := &limiter{
		cfg:   cfg,
		clock: clock,
		local: make(map[string]*rate.Limiter),
	}
	if rc != nil {
		l.distributed = rc.NewRateLimiter()
	}

	return l, nil
}

// Allow never blocks; a rejected call reports how long to wait
func (l *limiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.useRedis() {
		res, err := l.distributed.Allow(ctx, l.cfg.KeyPrefix+key, redis_rate.Limit{
			Rate:   l.cfg.PerMinute,
			Burst:  l.cfg.Burst,
			Period: time.Minute,
		})
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}, nil
		}

		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		l.redisDownSince.Store(l.clock.Now().UnixNano())
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
	}

	return l.allowLocal(key), nil
}

func (l *limiter) useRedis() bool {
	if l.distributed == nil {
		return false
	}

	downSince := l.redisDownSince.Load()
	if downSince == 0 {
		return true
	}

	if l.clock.Since(time.Unix(0, downSince)) < redisRetryAfter {
		return false
	}

	l.redisDownSince.Store(0)
	return true
}

func (l *limiter) allowLocal(key string) Decision {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		if len(l.local) >= maxLocalKeys {
			l.local = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(rate.Limit(float64(l.cfg.PerMinute)/60.0), l.cfg.Burst)
		l.local[key] = lim
	}
	l.mu.Unlock()

	now := l.clock.Now()
	if lim.AllowN(now, 1) {
		return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
	}

	retryAfter := time.Duration(float64(time.Minute) / float64(l.cfg.PerMinute))
	return Decision{Allowed: false, RetryAfter: retryAfter}
}
