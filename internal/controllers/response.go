package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"dirfav/internal/models"
)

const maxRequestBodySize = 1 << 20 // 1 MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError maps the error taxonomy onto status codes: malformed ids are
// client errors, stale navigations are gone, everything else reaching a
// controller came from the remote directory service.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrEmptyTitle):
		http.Error(w, "Bad Request", http.StatusBadRequest)
	case errors.Is(err, models.ErrStaleNavigation):
		http.Error(w, "Stale Navigation", http.StatusGone)
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	default:
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}
}

// pathID parses a numeric path segment. Non-numeric or negative ids are
// rejected instead of being passed downstream.
func pathID(r *http.Request, name string) (int, error) {
	id, err := cast.ToIntE(r.PathValue(name))
	if err != nil || id < 0 {
		return 0, models.ErrInvalidID
	}
	return id, nil
}
