package services

import (
	"sync"
	"time"

	"dirfav/internal/models"
)

type RecentViewsServiceInterface interface {
	List() []models.RecentView
	Record(view models.RecentViewInput)
	Clear()
}

type RecentViewsService struct {
	mu  sync.Mutex
	kv  KVStore
	now func() time.Time
}

func NewRecentViewsService(kv KVStore) RecentViewsServiceInterface {
	return &RecentViewsService{kv: kv, now: time.Now}
}

func (rs *RecentViewsService) load() []models.RecentView {
	var views []models.RecentView
	rs.kv.GetJSON(models.KeyRecentViews, &views)
	return views
}

func (rs *RecentViewsService) List() []models.RecentView {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	views := rs.load()
	if views == nil {
		return make([]models.RecentView, 0)
	}
	return views
}

// Record drops any existing (type, id) entry, prepends the view stamped
// with the current time and truncates to the ten most recent.
func (rs *RecentViewsService) Record(view models.RecentViewInput) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	existing := rs.load()
	filtered := make([]models.RecentView, 0, len(existing)+1)
	filtered = append(filtered, models.RecentView{
		ID:        view.ID,
		Type:      view.Type,
		Title:     view.Title,
		Url:       view.Url,
		Timestamp: rs.now().UnixMilli(),
	})
	for _, v := range existing {
		if v.Type == view.Type && v.ID == view.ID {
			continue
		}
		filtered = append(filtered, v)
	}
	if len(filtered) > models.MaxRecentViews {
		filtered = filtered[:models.MaxRecentViews]
	}
	rs.kv.SetJSON(models.KeyRecentViews, filtered)
}

func (rs *RecentViewsService) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.kv.Remove(models.KeyRecentViews)
}
