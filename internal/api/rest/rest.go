package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swipto/swipto-api/internal/api/middleware"
)

// AdminConfig holds the shared secrets of operator routes
type AdminConfig struct {
	AdminKey string
	CronKey  string
}

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, adminCfg AdminConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Swipe ingestion; a user token is optional unless required by config
		v1.POST("/swipes", middleware.OptionalAuth(authCfg), handler.IngestSwipe)

		// Leaderboard (public, GET only)
		v1.GET("/leaderboard", handler.GetLeaderboard)
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
			v1.Handle(method, "/leaderboard", handler.LeaderboardMethodNotAllowed)
		}

		v1.GET("/seasons/current", handler.GetCurrentSeason)

		// Per-user gamification reads
		v1.GET("/badges", handler.ListBadges)
		v1.GET("/missions", handler.GetMissions)
		v1.GET("/challenges", handler.ListChallenges)

		v1.GET("/markets", handler.ListMarkets)

		// Operator endpoints (x-admin-key)
		admin := v1.Group("/admin", middleware.SharedKey(middleware.HeaderAdminKey, adminCfg.AdminKey))
		{
			admin.POST("/seasons/recompute", handler.RecomputeSeason)
			admin.GET("/seasons/:key/runs", handler.ListRecomputeRuns)
			admin.POST("/badges/seed", handler.SeedBadges)
		}

		// Scheduled jobs triggered by an external cron (x-cron-key)
		v1.POST("/jobs/aggregate-season-likes", middleware.SharedKey(middleware.HeaderCronKey, adminCfg.CronKey), handler.AggregateSeasonLikes)
	}
}
