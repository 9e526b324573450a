package services

import (
	"sync"

	"dirfav/internal/models"
)

type FavoritesServiceInterface interface {
	AddPhoto(photo models.FavoritePhoto)
	RemovePhoto(photoID int)
	IsPhotoFavorite(photoID int) bool
	AddPost(post models.FavoritePost)
	RemovePost(postID int)
	IsPostFavorite(postID int) bool
	GetFavorites() models.FavoritesRecord
	PhotoCount() int
	PostCount() int
}

// FavoritesService keeps the persisted favorites record. Every mutation
// reads, modifies and writes the full record under the lock, so rapid
// toggles on different entities cannot interleave.
type FavoritesService struct {
	mu sync.Mutex
	kv KVStore
}

func NewFavoritesService(kv KVStore) FavoritesServiceInterface {
	return &FavoritesService{kv: kv}
}

func (fs *FavoritesService) load() models.FavoritesRecord {
	var record models.FavoritesRecord
	fs.kv.GetJSON(models.KeyFavorites, &record)
	if record.Photos == nil {
		record.Photos = make([]models.FavoritePhoto, 0)
	}
	if record.Posts == nil {
		record.Posts = make([]models.FavoritePost, 0)
	}
	return record
}

// AddPhoto is idempotent: an already favorited photo keeps its original
// insertion position and the record is not rewritten.
func (fs *FavoritesService) AddPhoto(photo models.FavoritePhoto) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	record := fs.load()
	for _, p := range record.Photos {
		if p.ID == photo.ID {
			return
		}
	}
	record.Photos = append(record.Photos, photo)
	fs.kv.SetJSON(models.KeyFavorites, record)
}

func (fs *FavoritesService) RemovePhoto(photoID int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	record := fs.load()
	kept := record.Photos[:0]
	for _, p := range record.Photos {
		if p.ID != photoID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(record.Photos) {
		return
	}
	record.Photos = kept
	fs.kv.SetJSON(models.KeyFavorites, record)
}

func (fs *FavoritesService) IsPhotoFavorite(photoID int) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, p := range fs.load().Photos {
		if p.ID == photoID {
			return true
		}
	}
	return false
}

func (fs *FavoritesService) AddPost(post models.FavoritePost) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	record := fs.load()
	for _, p := range record.Posts {
		if p.ID == post.ID {
			return
		}
	}
	record.Posts = append(record.Posts, post)
	fs.kv.SetJSON(models.KeyFavorites, record)
}

func (fs *FavoritesService) RemovePost(postID int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	record := fs.load()
	kept := record.Posts[:0]
	for _, p := range record.Posts {
		if p.ID != postID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(record.Posts) {
		return
	}
	record.Posts = kept
	fs.kv.SetJSON(models.KeyFavorites, record)
}

func (fs *FavoritesService) IsPostFavorite(postID int) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, p := range fs.load().Posts {
		if p.ID == postID {
			return true
		}
	}
	return false
}

func (fs *FavoritesService) GetFavorites() models.FavoritesRecord {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.load()
}

func (fs *FavoritesService) PhotoCount() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.load().Photos)
}

func (fs *FavoritesService) PostCount() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.load().Posts)
}
