package models

type Album struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	// Photos is only populated on locally synthesized owner albums.
	Photos []Photo `json:"photos,omitempty"`
}

// Photo URLs are synthesized from the placeholder image service keyed by
// photo id; the upstream urls are dead and get overwritten by the gateway.
type Photo struct {
	ID           int    `json:"id"`
	AlbumID      int    `json:"albumId"`
	Title        string `json:"title"`
	Url          string `json:"url"`
	ThumbnailUrl string `json:"thumbnailUrl"`
}
