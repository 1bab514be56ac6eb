package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/swipto/swipto-api/internal/leaderboard"
	"github.com/swipto/swipto-api/internal/market"
)

const MAX_RUNS_PAGE_SIZE = 100

// LeaderboardQueryParams holds query parameters for GET /leaderboard.
// Values are kept raw because malformed input falls back to defaults instead of failing.
type LeaderboardQueryParams struct {
	Limit            string `form:"limit"`
	IncludeSuperlike string `form:"includeSuperlike"`
	SeasonKey        string `form:"seasonKey"`
}

// ParseLeaderboardQuery parses query parameters for GET /leaderboard
func ParseLeaderboardQuery(c *gin.Context) (leaderboard.Query, error) {
	var params LeaderboardQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return leaderboard.Query{}, err
	}

	// non-numeric limits are treated as absent
	limit, err := strconv.Atoi(strings.TrimSpace(params.Limit))
	if err != nil {
		limit = 0
	}

	return leaderboard.Query{
		Limit:            limit,
		IncludeSuperlike: parseBool(params.IncludeSuperlike),
		SeasonKey:        strings.TrimSpace(params.SeasonKey),
	}, nil
}

// UserQueryParams holds the userId query parameter of the per-user read endpoints
type UserQueryParams struct {
	UserID string `form:"userId"`
}

// MarketQueryParams holds query parameters for GET /markets
type MarketQueryParams struct {
	VsCurrency string   `form:"vsCurrency"`
	Category   string   `form:"category"`
	Top        int      `form:"top"`
	PriceMin   *float64 `form:"priceMin"`
	PriceMax   *float64 `form:"priceMax"`
	VolumeMin  *float64 `form:"volumeMin"`
	VolumeMax  *float64 `form:"volumeMax"`
}

// ParseMarketQuery parses query parameters for GET /markets
func ParseMarketQuery(c *gin.Context) (market.Filter, error) {
	var params MarketQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return market.Filter{}, err
	}

	return market.Filter{
		VsCurrency: strings.TrimSpace(params.VsCurrency),
		Category:   strings.TrimSpace(params.Category),
		Top:        params.Top,
		PriceMin:   params.PriceMin,
		PriceMax:   params.PriceMax,
		VolumeMin:  params.VolumeMin,
		VolumeMax:  params.VolumeMax,
	}, nil
}

// RecomputeParams selects the season and source of an admin recompute.
// They may be sent as query parameters or as a JSON body.
type RecomputeParams struct {
	SeasonKey string `form:"seasonKey" json:"seasonKey"`
	Source    string `form:"source" json:"source"`
}

// ParseRecomputeParams reads query parameters, then lets a JSON body override them
func ParseRecomputeParams(c *gin.Context) (RecomputeParams, error) {
	var params RecomputeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return params, err
	}

	if c.Request.ContentLength > 0 {
		var body RecomputeParams
		if err := c.ShouldBindJSON(&body); err != nil {
			return params, err
		}
		if body.SeasonKey != "" {
			params.SeasonKey = body.SeasonKey
		}
		if body.Source != "" {
			params.Source = body.Source
		}
	}

	params.SeasonKey = strings.TrimSpace(params.SeasonKey)
	params.Source = strings.TrimSpace(params.Source)
	return params, nil
}

// RunsQueryParams holds query parameters for the recompute audit log
type RunsQueryParams struct {
	Limit int `form:"limit,default=20"`
}

// ParseRunsQuery parses query parameters for GET /admin/seasons/:key/runs
func ParseRunsQuery(c *gin.Context) (*RunsQueryParams, error) {
	var params RunsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_RUNS_PAGE_SIZE {
		params.Limit = MAX_RUNS_PAGE_SIZE
	}

	return &params, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
