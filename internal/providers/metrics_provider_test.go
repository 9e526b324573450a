package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"dirfav/internal/models"
	"dirfav/internal/structures"
)

// --- minimal mocks for the gauge sources ---

type metricsTestFavorites struct{}

func (m *metricsTestFavorites) AddPhoto(_ models.FavoritePhoto)      {}
func (m *metricsTestFavorites) RemovePhoto(_ int)                    {}
func (m *metricsTestFavorites) IsPhotoFavorite(_ int) bool           { return false }
func (m *metricsTestFavorites) AddPost(_ models.FavoritePost)        {}
func (m *metricsTestFavorites) RemovePost(_ int)                     {}
func (m *metricsTestFavorites) IsPostFavorite(_ int) bool            { return false }
func (m *metricsTestFavorites) GetFavorites() models.FavoritesRecord { return models.FavoritesRecord{} }
func (m *metricsTestFavorites) PhotoCount() int                      { return 3 }
func (m *metricsTestFavorites) PostCount() int                       { return 1 }

type metricsTestRecent struct{}

func (m *metricsTestRecent) List() []models.RecentView       { return nil }
func (m *metricsTestRecent) Record(_ models.RecentViewInput) {}
func (m *metricsTestRecent) Clear()                          {}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, &metricsTestFavorites{}, &metricsTestRecent{})
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/favorites", 200)
	m.ObserveRequestDuration("/favorites", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncGatewayRequests("/users", 200)
	m.ObserveGatewayDuration("/users", time.Millisecond)
	m.ObservePersistenceDuration(time.Millisecond)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestFavorites{}, &metricsTestRecent{})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestFavorites{}, &metricsTestRecent{})

	// These should not panic
	m.IncRequestsTotal("/favorites", 200)
	m.IncRequestsTotal("/favorites", 404)
	m.ObserveRequestDuration("/favorites", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncGatewayRequests("/users", 200)
	m.ObserveGatewayDuration("/users", 20*time.Millisecond)
	m.ObservePersistenceDuration(100 * time.Millisecond)
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
