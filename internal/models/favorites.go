package models

// FavoritePhoto is a Photo stored by value plus the id of the user whose
// album it was favorited from.
type FavoritePhoto struct {
	Photo
	UserID int `json:"userId"`
}

type FavoritePost struct {
	Post
}

// FavoritesRecord is the combined persisted record. Both sequences keep
// insertion order; at most one entry per photo/post id.
type FavoritesRecord struct {
	Photos []FavoritePhoto `json:"photos"`
	Posts  []FavoritePost  `json:"posts"`
}
