package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "swipto"

// Metrics owns the service collectors. All recording methods are no-ops on a nil receiver,
// so components can be built without metrics in tests.
type Metrics struct {
	registry *prometheus.Registry

	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	swipesIngested  *prometheus.CounterVec
	badgesUnlocked  *prometheus.CounterVec
	recomputes      *prometheus.CounterVec
	recomputeTime   *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
	rateLimited     prometheus.Counter
	eventsPublished *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry together with the Go and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "endpoint"},
		),
		swipesIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "swipes_ingested_total",
				Help:      "Swipes appended to the ledger",
			},
			[]string{"action"},
		),
		badgesUnlocked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "badges_unlocked_total",
				Help:      "Badges newly unlocked by users",
			},
			[]string{"badge"},
		),
		recomputes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "season_recomputes_total",
				Help:      "Season like recomputes by source and outcome",
			},
			[]string{"source", "status"},
		),
		recomputeTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "season_recompute_duration_seconds",
				Help:      "Duration of season like recomputes",
				Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60},
			},
			[]string{"source"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "leaderboard_cache_total",
				Help:      "Leaderboard cache lookups by mode and result",
			},
			[]string{"mode", "result"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "swipes_rate_limited_total",
				Help:      "Swipes rejected by the per-user rate limit",
			},
		),
		eventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Domain events published to the message broker",
			},
			[]string{"subject", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCounter,
		m.requestDuration,
		m.swipesIngested,
		m.badgesUnlocked,
		m.recomputes,
		m.recomputeTime,
		m.cacheHits,
		m.rateLimited,
		m.eventsPublished,
	)

	return m
}

// Registry exposes the registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request counts and durations keyed by the matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.requestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		m.requestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func (m *Metrics) SwipeIngested(action string) {
	if m == nil {
		return
	}
	m.swipesIngested.WithLabelValues(action).Inc()
}

func (m *Metrics) BadgeUnlocked(badgeKey string) {
	if m == nil {
		return
	}
	m.badgesUnlocked.WithLabelValues(badgeKey).Inc()
}

func (m *Metrics) SwipeRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// RecomputeFinished records a recompute outcome; status is "ok", "conflict" or "error"
func (m *Metrics) RecomputeFinished(source, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.recomputes.WithLabelValues(source, status).Inc()
	m.recomputeTime.WithLabelValues(source).Observe(duration.Seconds())
}

func (m *Metrics) LeaderboardCache(mode string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheHits.WithLabelValues(mode, result).Inc()
}

func (m *Metrics) EventPublished(subject string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.eventsPublished.WithLabelValues(subject, status).Inc()
}
