package controllers

import (
	"fmt"
	"net/http"
	"time"

	"dirfav/internal/services"
	"dirfav/internal/storage"
)

type HealthController struct {
	favorites services.FavoritesServiceInterface
	recent    services.RecentViewsServiceInterface
	store     storage.KVStoreInterface
	startTime time.Time
}

type healthResponse struct {
	Status           string  `json:"status"`
	Uptime           string  `json:"uptime"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
	FavoritePhotos   int     `json:"favorite_photos"`
	FavoritePosts    int     `json:"favorite_posts"`
	RecentViews      int     `json:"recent_views"`
	StorageAvailable bool    `json:"storage_available"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:           "ok",
		Uptime:           formatDuration(uptime),
		UptimeSeconds:    uptime.Seconds(),
		FavoritePhotos:   hc.favorites.PhotoCount(),
		FavoritePosts:    hc.favorites.PostCount(),
		RecentViews:      len(hc.recent.List()),
		StorageAvailable: hc.store.IsAvailable(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func NewHealthController(favorites services.FavoritesServiceInterface, recent services.RecentViewsServiceInterface, store storage.KVStoreInterface) *HealthController {
	return &HealthController{
		favorites: favorites,
		recent:    recent,
		store:     store,
		startTime: time.Now(),
	}
}
