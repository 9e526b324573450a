package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"dirfav/internal/models"
	"dirfav/internal/providers"
	"dirfav/internal/services"
	"dirfav/internal/storage"
)

type SettingsController struct {
	logger providers.Logger
	prefs  services.PreferencesServiceInterface
	store  storage.KVStoreInterface
}

func NewSettingsController(logger providers.Logger, prefs services.PreferencesServiceInterface, store storage.KVStoreInterface) *SettingsController {
	return &SettingsController{logger: logger, prefs: prefs, store: store}
}

func (sc *SettingsController) GetPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sc.prefs.GetPreferences())
}

func (sc *SettingsController) PatchPreferences(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var patch models.PreferencesPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if v := validate.Struct(patch); !v.Validate() {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	sc.prefs.SetPreferences(patch)
	writeJSON(w, http.StatusOK, sc.prefs.GetPreferences())
}

func (sc *SettingsController) ResetPreferences(w http.ResponseWriter, r *http.Request) {
	sc.prefs.ResetPreferences()
	writeJSON(w, http.StatusOK, sc.prefs.GetPreferences())
}

type themeResponse struct {
	Theme string `json:"theme"`
}

func (sc *SettingsController) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeResponse{Theme: sc.prefs.GetTheme()})
}

func (sc *SettingsController) PutTheme(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var body themeResponse
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	switch body.Theme {
	case models.ThemeLight, models.ThemeDark, models.ThemeAuto:
	default:
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	sc.prefs.SetTheme(body.Theme)
	writeJSON(w, http.StatusOK, themeResponse{Theme: body.Theme})
}

type storageInfoResponse struct {
	Available bool `json:"available"`
	SizeBytes int  `json:"sizeBytes"`
	Keys      int  `json:"keys"`
}

// GetStorageInfo reports the whole partition: the size estimate counts
// every key present, not only this application's.
func (sc *SettingsController) GetStorageInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, storageInfoResponse{
		Available: sc.store.IsAvailable(),
		SizeBytes: sc.store.EstimateSizeBytes(),
		Keys:      len(sc.store.Keys()),
	})
}

// ClearStorage wipes the entire partition, favorites and preferences
// included. Matches the settings page "clear all data" action.
func (sc *SettingsController) ClearStorage(w http.ResponseWriter, r *http.Request) {
	sc.store.Clear()
	sc.logger.Infof(providers.TypeStorage, "Partition cleared by request")
	w.WriteHeader(http.StatusNoContent)
}
