package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipto/swipto-api/internal/api/middleware"
	"github.com/swipto/swipto-api/internal/api/rest"
	"github.com/swipto/swipto-api/internal/api/server"
	"github.com/swipto/swipto-api/internal/logger"
	"github.com/swipto/swipto-api/internal/metrics"
	"github.com/swipto/swipto-api/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func newServer(t *testing.T, m *metrics.Metrics) *server.Server {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	h := rest.NewHandler(false, false, rest.Services{
		Ingestor:     mocks.NewMockIngestor(ctrl),
		Leaderboard:  mocks.NewMockLeaderboardService(ctrl),
		Seasons:      mocks.NewMockSeasonResolver(ctrl),
		Recomputer:   mocks.NewMockSeasonRecomputer(ctrl),
		Gamification: mocks.NewMockGamificationService(ctrl),
		Markets:      mocks.NewMockMarketService(ctrl),
	})

	return server.New(server.Config{
		AllowedOrigins: []string{"https://swipto.app"},
		Admin:          rest.AdminConfig{AdminKey: "admin"},
	}, h, m)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := newServer(t, metrics.New()).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{endpoint="/health",method="GET",status="200"} 1`)
}

func TestRouter_WithoutMetrics(t *testing.T) {
	router := newServer(t, nil).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	router := newServer(t, nil).Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/leaderboard", nil)
	req.Header.Set("Origin", "https://swipto.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://swipto.app", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/leaderboard", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
