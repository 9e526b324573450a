package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"dirfav/internal/models"
	"dirfav/internal/providers"
	"dirfav/internal/services"
)

type RecentController struct {
	logger providers.Logger
	recent services.RecentViewsServiceInterface
}

func NewRecentController(logger providers.Logger, recent services.RecentViewsServiceInterface) *RecentController {
	return &RecentController{logger: logger, recent: recent}
}

func (rc *RecentController) GetRecentViews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rc.recent.List())
}

// RecordView lets the rendering surface log views the API cannot observe
// itself, such as navigation served from its own cache.
func (rc *RecentController) RecordView(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var input models.RecentViewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if v := validate.Struct(input); !v.Validate() {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	rc.recent.Record(input)
	w.WriteHeader(http.StatusCreated)
}

func (rc *RecentController) ClearRecentViews(w http.ResponseWriter, r *http.Request) {
	rc.recent.Clear()
	w.WriteHeader(http.StatusNoContent)
}
