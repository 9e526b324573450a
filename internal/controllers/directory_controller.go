package controllers

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"dirfav/internal/loaders"
	"dirfav/internal/models"
	"dirfav/internal/providers"
	"dirfav/internal/services"
)

// DirectoryController serves the remote-backed pages: the users list,
// user detail with its lazily loaded tabs, and the composite post and
// album detail views. Detail views record a recent view as a side effect.
type DirectoryController struct {
	logger   providers.Logger
	loader   loaders.LoaderInterface
	sessions loaders.SessionRegistryInterface
	recent   services.RecentViewsServiceInterface
	cache    providers.CacheProviderInterface
}

func NewDirectoryController(logger providers.Logger, loader loaders.LoaderInterface, sessions loaders.SessionRegistryInterface, recent services.RecentViewsServiceInterface, cache providers.CacheProviderInterface) *DirectoryController {
	return &DirectoryController{
		logger:   logger,
		loader:   loader,
		sessions: sessions,
		recent:   recent,
		cache:    cache,
	}
}

func (dc *DirectoryController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := dc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	dc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (dc *DirectoryController) GetUsers(w http.ResponseWriter, r *http.Request) {
	dc.serveFromCacheOrCompute(w, "users", func() (any, error) {
		return dc.loader.Users(r.Context())
	})
}

type userDetailResponse struct {
	User models.User `json:"user"`
	Nav  string      `json:"nav"`
}

// GetUser starts a fresh page session; the returned nav token must
// accompany the tab requests for this navigation.
func (dc *DirectoryController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := dc.loader.User(r.Context(), userID)
	if err != nil {
		dc.logger.Errorf(providers.TypeGet, "User %d load failed: %s", userID, err)
		writeError(w, err)
		return
	}

	session := dc.sessions.Begin(userID)
	dc.recent.Record(models.RecentViewInput{
		ID:    user.ID,
		Type:  models.RecentTypeUser,
		Title: user.Name,
		Url:   fmt.Sprintf("/users/%d", user.ID),
	})

	writeJSON(w, http.StatusOK, userDetailResponse{User: user, Nav: session.Token})
}

func (dc *DirectoryController) tabSession(r *http.Request) (*loaders.PageSession, error) {
	userID, err := pathID(r, "userId")
	if err != nil {
		return nil, err
	}
	return dc.sessions.Lookup(userID, r.URL.Query().Get("nav"))
}

func (dc *DirectoryController) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	session, err := dc.tabSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	posts, err := dc.loader.UserPosts(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (dc *DirectoryController) GetUserAlbums(w http.ResponseWriter, r *http.Request) {
	session, err := dc.tabSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	albums, err := dc.loader.UserAlbums(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, albums)
}

func (dc *DirectoryController) GetUserTodos(w http.ResponseWriter, r *http.Request) {
	session, err := dc.tabSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	todos, err := dc.loader.UserTodos(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

func (dc *DirectoryController) GetPostDetail(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := dc.loader.PostDetail(r.Context(), userID, postID)
	if err != nil {
		dc.logger.Errorf(providers.TypeGet, "Post %d detail load failed: %s", postID, err)
		writeError(w, err)
		return
	}

	dc.recent.Record(models.RecentViewInput{
		ID:    detail.Post.ID,
		Type:  models.RecentTypePost,
		Title: detail.Post.Title,
		Url:   fmt.Sprintf("/users/%d/posts/%d", userID, detail.Post.ID),
	})

	writeJSON(w, http.StatusOK, detail)
}

func (dc *DirectoryController) GetAlbumDetail(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	albumID, err := pathID(r, "albumId")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := dc.loader.AlbumDetail(r.Context(), userID, albumID)
	if err != nil {
		dc.logger.Errorf(providers.TypeGet, "Album %d detail load failed: %s", albumID, err)
		writeError(w, err)
		return
	}

	dc.recent.Record(models.RecentViewInput{
		ID:    detail.Album.ID,
		Type:  models.RecentTypeAlbum,
		Title: detail.Album.Title,
		Url:   fmt.Sprintf("/users/%d/albums/%d", userID, detail.Album.ID),
	})

	writeJSON(w, http.StatusOK, detail)
}
