package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"dirfav/internal/models"
	"dirfav/internal/providers"
	"dirfav/internal/services"
)

type FavoritesController struct {
	logger    providers.Logger
	favorites services.FavoritesServiceInterface
}

func NewFavoritesController(logger providers.Logger, favorites services.FavoritesServiceInterface) *FavoritesController {
	return &FavoritesController{logger: logger, favorites: favorites}
}

func (fc *FavoritesController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fc.favorites.GetFavorites())
}

func (fc *FavoritesController) AddPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var photo models.FavoritePhoto
	if err := json.NewDecoder(r.Body).Decode(&photo); err != nil || photo.ID <= 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	fc.favorites.AddPhoto(photo)
	w.WriteHeader(http.StatusCreated)
}

func (fc *FavoritesController) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "photoId")
	if err != nil {
		writeError(w, err)
		return
	}
	fc.favorites.RemovePhoto(photoID)
	w.WriteHeader(http.StatusNoContent)
}

type membershipResponse struct {
	ID       int  `json:"id"`
	Favorite bool `json:"favorite"`
}

func (fc *FavoritesController) IsPhotoFavorite(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "photoId")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, membershipResponse{ID: photoID, Favorite: fc.favorites.IsPhotoFavorite(photoID)})
}

func (fc *FavoritesController) AddPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var post models.FavoritePost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil || post.ID <= 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	fc.favorites.AddPost(post)
	w.WriteHeader(http.StatusCreated)
}

func (fc *FavoritesController) RemovePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, err)
		return
	}
	fc.favorites.RemovePost(postID)
	w.WriteHeader(http.StatusNoContent)
}

func (fc *FavoritesController) IsPostFavorite(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, membershipResponse{ID: postID, Favorite: fc.favorites.IsPostFavorite(postID)})
}
