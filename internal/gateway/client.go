// Package gateway is the typed client for the remote directory service.
// The upstream is a fixed third-party read-only REST API: no retries, no
// caching, no auth. A non-2xx status or transport failure surfaces as an
// error to the caller.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"dirfav/internal/models"
	"dirfav/internal/providers"
	"dirfav/internal/structures"
)

type GatewayInterface interface {
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id int) (models.User, error)
	Posts(ctx context.Context) ([]models.Post, error)
	Post(ctx context.Context, id int) (models.Post, error)
	UserPosts(ctx context.Context, userID int) ([]models.Post, error)
	PostComments(ctx context.Context, postID int) ([]models.Comment, error)
	Albums(ctx context.Context) ([]models.Album, error)
	Album(ctx context.Context, id int) (models.Album, error)
	UserAlbums(ctx context.Context, userID int) ([]models.Album, error)
	AlbumPhotos(ctx context.Context, albumID int) ([]models.Photo, error)
	Todos(ctx context.Context) ([]models.Todo, error)
	UserTodos(ctx context.Context, userID int) ([]models.Todo, error)
}

type Client struct {
	httpClient *http.Client
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

func NewClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) GatewayInterface {
	rps := conf.Gateway.RequestsPerSec
	if rps <= 0 {
		rps = 20
	}
	burst := conf.Gateway.Burst
	if burst <= 0 {
		burst = 10
	}
	userAgent := conf.Gateway.UserAgent
	if userAgent == "" {
		userAgent = "dirfav/1.0"
	}

	return &Client{
		httpClient: &http.Client{Timeout: conf.Gateway.Timeout},
		logger:     logger,
		metrics:    metrics,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		baseURL:    conf.Gateway.BaseURL,
		userAgent:  userAgent,
	}
}

// get issues one upstream request and decodes the JSON body into out.
// endpoint is the low-cardinality path template used as the metric label.
func (c *Client) get(ctx context.Context, endpoint, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf(providers.TypeGateway, "Request %s failed: %s", path, err)
		c.metrics.IncGatewayRequests(endpoint, 0)
		return err
	}
	defer resp.Body.Close()

	c.metrics.IncGatewayRequests(endpoint, resp.StatusCode)
	c.metrics.ObserveGatewayDuration(endpoint, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Errorf(providers.TypeGateway, "Request %s returned status %d", path, resp.StatusCode)
		return fmt.Errorf("directory service returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response for %s: %w", path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return nil
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.get(ctx, "/users", "/users", &users)
	return users, err
}

func (c *Client) User(ctx context.Context, id int) (models.User, error) {
	var user models.User
	err := c.get(ctx, "/users/{id}", fmt.Sprintf("/users/%d", id), &user)
	return user, err
}

func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.get(ctx, "/posts", "/posts", &posts)
	return posts, err
}

func (c *Client) Post(ctx context.Context, id int) (models.Post, error) {
	var post models.Post
	err := c.get(ctx, "/posts/{id}", fmt.Sprintf("/posts/%d", id), &post)
	return post, err
}

func (c *Client) UserPosts(ctx context.Context, userID int) ([]models.Post, error) {
	var posts []models.Post
	err := c.get(ctx, "/users/{id}/posts", fmt.Sprintf("/users/%d/posts", userID), &posts)
	return posts, err
}

func (c *Client) PostComments(ctx context.Context, postID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.get(ctx, "/posts/{id}/comments", fmt.Sprintf("/posts/%d/comments", postID), &comments)
	return comments, err
}

func (c *Client) Albums(ctx context.Context) ([]models.Album, error) {
	var albums []models.Album
	err := c.get(ctx, "/albums", "/albums", &albums)
	return albums, err
}

func (c *Client) Album(ctx context.Context, id int) (models.Album, error) {
	var album models.Album
	err := c.get(ctx, "/albums/{id}", fmt.Sprintf("/albums/%d", id), &album)
	return album, err
}

func (c *Client) UserAlbums(ctx context.Context, userID int) ([]models.Album, error) {
	var albums []models.Album
	err := c.get(ctx, "/users/{id}/albums", fmt.Sprintf("/users/%d/albums", userID), &albums)
	return albums, err
}

// AlbumPhotos rewrites photo urls with the placeholder image service keyed
// by photo id. The upstream image hosting is dead; only the ids are stable.
func (c *Client) AlbumPhotos(ctx context.Context, albumID int) ([]models.Photo, error) {
	var photos []models.Photo
	err := c.get(ctx, "/albums/{id}/photos", fmt.Sprintf("/albums/%d/photos", albumID), &photos)
	if err != nil {
		return nil, err
	}
	for i := range photos {
		photos[i].Url = PhotoURL(photos[i].ID, 800, 600)
		photos[i].ThumbnailUrl = PhotoURL(photos[i].ID, 300, 200)
	}
	return photos, nil
}

func (c *Client) Todos(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	err := c.get(ctx, "/todos", "/todos", &todos)
	return todos, err
}

func (c *Client) UserTodos(ctx context.Context, userID int) ([]models.Todo, error) {
	var todos []models.Todo
	err := c.get(ctx, "/users/{id}/todos", fmt.Sprintf("/users/%d/todos", userID), &todos)
	return todos, err
}

// PhotoURL builds a placeholder image url keyed by photo id, so the same
// photo always resolves to the same image.
func PhotoURL(photoID, width, height int) string {
	return fmt.Sprintf("https://picsum.photos/%d/%d?random=%d", width, height, photoID)
}
