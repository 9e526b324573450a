package models

// Storage keys for the persisted local state partition.
const (
	KeyFavorites   = "favorites-storage"
	KeyPreferences = "user-preferences"
	KeyRecentViews = "recent-views"
	KeyTheme       = "app-theme"
)

// PartitionV1 is the on-disk envelope for the key-value partition.
// Entries map storage keys to their JSON-encoded values. Files written
// before the envelope was introduced are a bare top-level entries map and
// still load (see storage.FileManager).
type PartitionV1 struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}
