package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swipto/swipto-api/internal/api/middleware"
	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/gamification"
	"github.com/swipto/swipto-api/internal/jobs"
	"github.com/swipto/swipto-api/internal/leaderboard"
	"github.com/swipto/swipto-api/internal/market"
	"github.com/swipto/swipto-api/internal/season"
	"github.com/swipto/swipto-api/internal/swipe"
)

const serviceName = "swipto-api"

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// IngestSwipe records a swipe and applies gamification
	// POST /api/v1/swipes
	IngestSwipe(c *gin.Context)

	// GetLeaderboard ranks coins by likes, all-time or for a season
	// GET /api/v1/leaderboard?limit=<limit>&includeSuperlike=<bool>&seasonKey=<YYYY-MM|current>
	GetLeaderboard(c *gin.Context)

	// LeaderboardMethodNotAllowed answers non-GET calls on the leaderboard
	LeaderboardMethodNotAllowed(c *gin.Context)

	// GetCurrentSeason returns the current season, creating it if needed
	// GET /api/v1/seasons/current
	GetCurrentSeason(c *gin.Context)

	// ListBadges returns the badges unlocked by a user
	// GET /api/v1/badges?userId=<id>
	ListBadges(c *gin.Context)

	// GetMissions returns badges with the user's progress
	// GET /api/v1/missions?userId=<id>
	GetMissions(c *gin.Context)

	// ListChallenges returns the challenge windows of a user
	// GET /api/v1/challenges?userId=<id>
	ListChallenges(c *gin.Context)

	// ListMarkets returns coin listings for swiping
	// GET /api/v1/markets?vsCurrency=<cur>&category=<cat>&top=<n>&priceMin=&priceMax=&volumeMin=&volumeMax=
	ListMarkets(c *gin.Context)

	// RecomputeSeason rebuilds a season's like counters (requires x-admin-key)
	// POST /api/v1/admin/seasons/recompute?seasonKey=<YYYY-MM>&source=<ledger|snapshot>
	RecomputeSeason(c *gin.Context)

	// ListRecomputeRuns returns the recompute audit log of a season (requires x-admin-key)
	// GET /api/v1/admin/seasons/:key/runs?limit=<limit>
	ListRecomputeRuns(c *gin.Context)

	// SeedBadges upserts the badge catalog and ensures the current season (requires x-admin-key)
	// POST /api/v1/admin/badges/seed
	SeedBadges(c *gin.Context)

	// AggregateSeasonLikes recomputes the current season from the ledger (requires x-cron-key)
	// POST /api/v1/jobs/aggregate-season-likes
	AggregateSeasonLikes(c *gin.Context)
}

// Services bundles the domain services the handlers delegate to
type Services struct {
	Ingestor     swipe.Ingestor
	Leaderboard  leaderboard.Service
	Seasons      season.Resolver
	Recomputer   season.Recomputer
	Gamification gamification.Service
	Markets      market.Service
}

// SwipeRequest is the body of POST /swipes
type SwipeRequest struct {
	UserID string     `json:"userId"`
	CoinID string     `json:"coinId"`
	Action string     `json:"action"`
	Coin   *SwipeCoin `json:"coin"`
}

// SwipeCoin is optional display metadata sent by clients that already know the coin
type SwipeCoin struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Category *string `json:"category"`
}

// SwipeResponse is the body returned after ingestion
type SwipeResponse struct {
	OK bool `json:"ok"`
	*swipe.Result
}

// LeaderboardResponse wraps a leaderboard in the success envelope
type LeaderboardResponse struct {
	Success bool `json:"success"`
	*leaderboard.Result
}

// handler implements the Handler interface
type handler struct {
	debug            bool
	requireUserToken bool
	services         Services
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, requireUserToken bool, services Services) Handler {
	return &handler{
		debug:            debug,
		requireUserToken: requireUserToken,
		services:         services,
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}

func (h *handler) IngestSwipe(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	// clients that omit the action are liking
	if strings.TrimSpace(req.Action) == "" {
		req.Action = string(domain.ActionLike)
	}

	if err := h.authorizeSwiper(c, req.UserID); err != nil {
		respondDomainError(c, err)
		return
	}

	input := swipe.Input{
		UserID: req.UserID,
		CoinID: req.CoinID,
		Action: req.Action,
	}
	if req.Coin != nil {
		input.Coin = &domain.CoinMetadata{
			Symbol:   req.Coin.Symbol,
			Name:     req.Coin.Name,
			Category: req.Coin.Category,
		}
	}

	result, err := h.services.Ingestor.Ingest(c.Request.Context(), input)
	if err != nil {
		respondDomainError(c, err,
			zap.String("userId", req.UserID),
			zap.String("coinId", req.CoinID),
		)
		return
	}

	c.JSON(http.StatusOK, SwipeResponse{OK: true, Result: result})
}

// authorizeSwiper binds a user token to the swiped userId. API key callers act for any user.
func (h *handler) authorizeSwiper(c *gin.Context, userID string) error {
	authType, subject := middleware.AuthInfo(c)

	switch authType {
	case middleware.AuthTypeAPIKey:
		return nil
	case middleware.AuthTypeJWT:
		if subject != strings.TrimSpace(userID) {
			return domain.NewAuthError("Token subject does not match userId")
		}
		return nil
	default:
		if h.requireUserToken {
			return domain.NewAuthError("Unauthorized")
		}
		return nil
	}
}

func (h *handler) GetLeaderboard(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	query, err := ParseLeaderboardQuery(c)
	if err != nil {
		respondLeaderboardError(c, domain.NewValidationError("Invalid query parameters"))
		return
	}

	result, err := h.services.Leaderboard.Get(c.Request.Context(), query)
	if err != nil {
		respondLeaderboardError(c, err, zap.String("seasonKey", query.SeasonKey))
		return
	}
	// clients expect "data" to be an array even when nothing was liked
	if result.Items == nil {
		result.Items = []leaderboard.Item{}
	}

	c.JSON(http.StatusOK, LeaderboardResponse{Success: true, Result: result})
}

func (h *handler) LeaderboardMethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodGet)
	c.JSON(http.StatusMethodNotAllowed, leaderboardErrorResponse{
		Success: false,
		Error:   "Method not allowed",
		Code:    errCodeMethodNotAllowed,
	})
}

func (h *handler) GetCurrentSeason(c *gin.Context) {
	current, err := h.services.Seasons.Current(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"season": season.NewView(current)})
}

// requireUserID reads the userId query parameter, answering 400 when it is missing
func requireUserID(c *gin.Context) (string, bool) {
	var params UserQueryParams
	if err := c.ShouldBindQuery(&params); err != nil || strings.TrimSpace(params.UserID) == "" {
		respondBadRequest(c, "Missing userId")
		return "", false
	}
	return strings.TrimSpace(params.UserID), true
}

func (h *handler) ListBadges(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	badges, err := h.services.Gamification.ListUserBadges(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, zap.String("userId", userID))
		return
	}

	c.JSON(http.StatusOK, badges)
}

func (h *handler) GetMissions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.services.Gamification.Missions(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, zap.String("userId", userID))
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *handler) ListChallenges(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	progress, err := h.services.Gamification.ListChallenges(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, zap.String("userId", userID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

func (h *handler) ListMarkets(c *gin.Context) {
	filter, err := ParseMarketQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters")
		return
	}

	listings, err := h.services.Markets.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err, zap.String("category", filter.Category))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  listings,
		"total": len(listings),
	})
}

func (h *handler) RecomputeSeason(c *gin.Context) {
	params, err := ParseRecomputeParams(c)
	if err != nil {
		respondBadRequest(c, "Invalid request")
		return
	}

	result, err := h.services.Recomputer.Recompute(c.Request.Context(), season.Request{
		SeasonKey: params.SeasonKey,
		Source:    params.Source,
	})
	if err != nil {
		respondDomainError(c, err,
			zap.String("seasonKey", params.SeasonKey),
			zap.String("source", params.Source),
		)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ListRecomputeRuns(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))

	params, err := ParseRunsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters")
		return
	}

	history, err := h.services.Recomputer.ListRuns(c.Request.Context(), key, params.Limit)
	if err != nil {
		respondDomainError(c, err, zap.String("seasonKey", key))
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *handler) SeedBadges(c *gin.Context) {
	result, err := jobs.Seed(c.Request.Context(), h.services.Gamification, h.services.Seasons)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) AggregateSeasonLikes(c *gin.Context) {
	result, err := h.services.Recomputer.Recompute(c.Request.Context(), season.Request{
		SeasonKey: domain.CURRENT_SEASON_KEY,
		Source:    season.SourceLedger,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
