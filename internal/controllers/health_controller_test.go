package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirfav/internal/models"
	"dirfav/internal/services"
	"dirfav/internal/storage"
	"dirfav/internal/testutil"
)

func newHealthFixture() (*HealthController, services.FavoritesServiceInterface, services.RecentViewsServiceInterface) {
	store := storage.NewKVStore(&testutil.MockLogger{})
	favorites := services.NewFavoritesService(store)
	recent := services.NewRecentViewsService(store)
	return NewHealthController(favorites, recent, store), favorites, recent
}

func TestHealth_ReturnsOK(t *testing.T) {
	hc, favorites, recent := newHealthFixture()
	favorites.AddPhoto(models.FavoritePhoto{Photo: models.Photo{ID: 51}})
	recent.Record(models.RecentViewInput{ID: 2, Type: models.RecentTypeUser, Title: "x", Url: "/users/2"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, float64(1), resp["favorite_photos"])
	assert.Equal(t, float64(0), resp["favorite_posts"])
	assert.Equal(t, float64(1), resp["recent_views"])
	assert.Equal(t, true, resp["storage_available"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc, _, _ := newHealthFixture()

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"one minute", 60 * time.Second, "00:01:00"},
		{"one hour", time.Hour, "01:00:00"},
		{"mixed", time.Hour + time.Minute + time.Second, "01:01:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
