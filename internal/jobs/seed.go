package jobs

import (
	"context"

	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/gamification"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/season"
)

// SeedResult summarizes a seed run
type SeedResult struct {
	Badges    []string `json:"badges"`
	SeasonKey string   `json:"seasonKey"`
}

// Seed upserts the badge catalog and ensures the current season exists
func Seed(ctx context.Context, svc gamification.Service, resolver season.Resolver) (*SeedResult, error) {
	badges, err := svc.SeedBadges(ctx)
	if err != nil {
		return nil, err
	}

	current, err := resolver.Current(ctx)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{
		Badges:    make([]string, 0, len(badges)),
		SeasonKey: current.Key,
	}
	for _, b := range badges {
		result.Badges = append(result.Badges, b.Key)
	}

	logger.InfoCtx(ctx, "Seed completed", zap.Strings("badges", result.Badges), zap.String("season", result.SeasonKey))

	return result, nil
}
