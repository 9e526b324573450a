package models

const (
	RecentTypeUser  = "user"
	RecentTypePost  = "post"
	RecentTypeAlbum = "album"
)

// MaxRecentViews bounds the persisted log; the least recently touched
// entry is dropped first.
const MaxRecentViews = 10

// RecentView records that an entity was visited. At most one entry per
// (Type, ID) pair; Timestamp is unix milliseconds of the latest visit.
type RecentView struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Url       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// RecentViewInput is the recordable part of a view; the store stamps the time.
type RecentViewInput struct {
	ID    int    `json:"id" validate:"min:0"`
	Type  string `json:"type" validate:"required|in:user,post,album"`
	Title string `json:"title" validate:"required"`
	Url   string `json:"url" validate:"required"`
}
