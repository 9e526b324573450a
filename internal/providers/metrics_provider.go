package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirfav/internal/services"
	"dirfav/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncGatewayRequests(endpoint string, status int)
	ObserveGatewayDuration(endpoint string, duration time.Duration)
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	gatewayRequests     *prometheus.CounterVec
	gatewayDuration     *prometheus.HistogramVec
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncGatewayRequests(endpoint string, status int) {
	m.gatewayRequests.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveGatewayDuration(endpoint string, duration time.Duration) {
	m.gatewayDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, favorites services.FavoritesServiceInterface, recent services.RecentViewsServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dirfav_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dirfav_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dirfav_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dirfav_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		gatewayRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dirfav_gateway_requests_total",
			Help: "Total number of upstream directory service requests",
		}, []string{"endpoint", "status"}),

		gatewayDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dirfav_gateway_request_duration_seconds",
			Help:    "Upstream directory service request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dirfav_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dirfav_favorite_photos",
		Help: "Current number of favorited photos",
	}, func() float64 {
		return float64(favorites.PhotoCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dirfav_favorite_posts",
		Help: "Current number of favorited posts",
	}, func() float64 {
		return float64(favorites.PostCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dirfav_recent_views",
		Help: "Current number of recent view entries",
	}, func() float64 {
		return float64(len(recent.List()))
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncGatewayRequests(_ string, _ int)               {}
func (n *noopMetrics) ObserveGatewayDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
