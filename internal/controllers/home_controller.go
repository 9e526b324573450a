package controllers

import (
	"net/http"

	"dirfav/internal/models"
	"dirfav/internal/providers"
	"dirfav/internal/services"
	"dirfav/internal/storage"
)

// HomeController serves the landing summary: favorites counts, the recent
// views log and the state of the local partition.
type HomeController struct {
	logger    providers.Logger
	favorites services.FavoritesServiceInterface
	recent    services.RecentViewsServiceInterface
	prefs     services.PreferencesServiceInterface
	store     storage.KVStoreInterface
}

func NewHomeController(logger providers.Logger, favorites services.FavoritesServiceInterface, recent services.RecentViewsServiceInterface, prefs services.PreferencesServiceInterface, store storage.KVStoreInterface) *HomeController {
	return &HomeController{
		logger:    logger,
		favorites: favorites,
		recent:    recent,
		prefs:     prefs,
		store:     store,
	}
}

type homeResponse struct {
	Theme          string              `json:"theme"`
	FavoritePhotos int                 `json:"favoritePhotos"`
	FavoritePosts  int                 `json:"favoritePosts"`
	RecentViews    []models.RecentView `json:"recentViews"`
	Storage        storageInfoResponse `json:"storage"`
}

func (hc *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, homeResponse{
		Theme:          hc.prefs.GetTheme(),
		FavoritePhotos: hc.favorites.PhotoCount(),
		FavoritePosts:  hc.favorites.PostCount(),
		RecentViews:    hc.recent.List(),
		Storage: storageInfoResponse{
			Available: hc.store.IsAvailable(),
			SizeBytes: hc.store.EstimateSizeBytes(),
			Keys:      len(hc.store.Keys()),
		},
	})
}
