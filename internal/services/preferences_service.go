package services

import (
	"sync"

	"dirfav/internal/models"
)

type PreferencesServiceInterface interface {
	GetPreferences() models.UserPreferences
	SetPreferences(patch models.PreferencesPatch)
	ResetPreferences()
	GetTheme() string
	SetTheme(theme string)
}

type PreferencesService struct {
	mu sync.Mutex
	kv KVStore
}

func NewPreferencesService(kv KVStore) PreferencesServiceInterface {
	return &PreferencesService{kv: kv}
}

func (ps *PreferencesService) GetPreferences() models.UserPreferences {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.load()
}

func (ps *PreferencesService) load() models.UserPreferences {
	var stored models.PreferencesPatch
	if !ps.kv.GetJSON(models.KeyPreferences, &stored) {
		return models.DefaultPreferences()
	}
	return models.MergeStored(stored)
}

// SetPreferences merges the given fields over the current record and
// persists the complete result.
func (ps *PreferencesService) SetPreferences(patch models.PreferencesPatch) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	updated := ps.load().Apply(patch)
	ps.kv.SetJSON(models.KeyPreferences, updated)
}

func (ps *PreferencesService) ResetPreferences() {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.kv.SetJSON(models.KeyPreferences, models.DefaultPreferences())
}

func (ps *PreferencesService) GetTheme() string {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	var theme string
	if !ps.kv.GetJSON(models.KeyTheme, &theme) {
		return models.ThemeLight
	}
	switch theme {
	case models.ThemeLight, models.ThemeDark, models.ThemeAuto:
		return theme
	}
	return models.ThemeLight
}

func (ps *PreferencesService) SetTheme(theme string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.kv.SetJSON(models.KeyTheme, theme)
}
