package models

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

type UserPreferences struct {
	Theme             string `json:"theme" validate:"required|in:light,dark,auto"`
	ItemsPerPage      int    `json:"itemsPerPage" validate:"required|in:6,12,24,48"`
	AutoPlayImages    bool   `json:"autoPlayImages"`
	ShowNotifications bool   `json:"showNotifications"`
	Language          string `json:"language" validate:"required"`
}

// PreferencesPatch carries a partial update; nil fields are left untouched.
type PreferencesPatch struct {
	Theme             *string `json:"theme" validate:"in:light,dark,auto"`
	ItemsPerPage      *int    `json:"itemsPerPage" validate:"in:6,12,24,48"`
	AutoPlayImages    *bool   `json:"autoPlayImages"`
	ShowNotifications *bool   `json:"showNotifications"`
	Language          *string `json:"language"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:             ThemeLight,
		ItemsPerPage:      12,
		AutoPlayImages:    true,
		ShowNotifications: true,
		Language:          "en",
	}
}

// MergeStored overlays a stored record on the defaults field by field.
// The record decodes through the pointer-field patch shape so an absent
// field is distinguishable from a stored zero value: absent and
// out-of-range fields keep the default, so a partial or corrupted record
// can never drop a setting or introduce unexpected values.
func MergeStored(stored PreferencesPatch) UserPreferences {
	out := DefaultPreferences()
	if stored.Theme != nil {
		switch *stored.Theme {
		case ThemeLight, ThemeDark, ThemeAuto:
			out.Theme = *stored.Theme
		}
	}
	if stored.ItemsPerPage != nil {
		switch *stored.ItemsPerPage {
		case 6, 12, 24, 48:
			out.ItemsPerPage = *stored.ItemsPerPage
		}
	}
	if stored.AutoPlayImages != nil {
		out.AutoPlayImages = *stored.AutoPlayImages
	}
	if stored.ShowNotifications != nil {
		out.ShowNotifications = *stored.ShowNotifications
	}
	if stored.Language != nil && *stored.Language != "" {
		out.Language = *stored.Language
	}
	return out
}

// Apply merges the patch over p, only touching fields the patch carries.
func (p UserPreferences) Apply(patch PreferencesPatch) UserPreferences {
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.ItemsPerPage != nil {
		p.ItemsPerPage = *patch.ItemsPerPage
	}
	if patch.AutoPlayImages != nil {
		p.AutoPlayImages = *patch.AutoPlayImages
	}
	if patch.ShowNotifications != nil {
		p.ShowNotifications = *patch.ShowNotifications
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	return p
}
