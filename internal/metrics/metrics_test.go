package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SwipeIngested("like")
		m.BadgeUnlocked("like_10_24h")
		m.SwipeRateLimited()
		m.RecomputeFinished("ledger", "ok", time.Second)
		m.LeaderboardCache("alltime", true)
		m.EventPublished("swipes.recorded", nil)
	})
}

func TestDomainCounters(t *testing.T) {
	m := New()

	m.SwipeIngested("like")
	m.SwipeIngested("like")
	m.SwipeIngested("dislike")
	m.BadgeUnlocked("like_10_24h")
	m.RecomputeFinished("snapshot", "conflict", time.Millisecond)
	m.LeaderboardCache("season", false)
	m.EventPublished("badges.unlocked", errors.New("nats down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.swipesIngested.WithLabelValues("like")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.swipesIngested.WithLabelValues("dislike")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.badgesUnlocked.WithLabelValues("like_10_24h")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recomputes.WithLabelValues("snapshot", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("season", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsPublished.WithLabelValues("badges.unlocked", "error")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/v1/leaderboard", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "/api/v1/leaderboard", "200")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}
