// Package loaders assembles the data a route needs before it renders.
// Composite loaders fan out their independent requests concurrently and
// fail as a unit: no partial result ever reaches a page.
package loaders

import (
	"context"

	"golang.org/x/sync/errgroup"

	"dirfav/internal/gateway"
	"dirfav/internal/models"
	"dirfav/internal/services"
)

type PostDetail struct {
	Post     models.Post      `json:"post"`
	Comments []models.Comment `json:"comments"`
	User     models.User      `json:"user"`
}

type AlbumDetail struct {
	Album  models.Album   `json:"album"`
	Photos []models.Photo `json:"photos"`
	User   models.User    `json:"user"`
}

type LoaderInterface interface {
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, userID int) (models.User, error)
	PostDetail(ctx context.Context, userID, postID int) (*PostDetail, error)
	AlbumDetail(ctx context.Context, userID, albumID int) (*AlbumDetail, error)
	UserPosts(ctx context.Context, session *PageSession) ([]models.Post, error)
	UserAlbums(ctx context.Context, session *PageSession) ([]models.Album, error)
	UserTodos(ctx context.Context, session *PageSession) ([]models.Todo, error)
}

type Loader struct {
	gw         gateway.GatewayInterface
	ownerTodos services.OwnerTodosServiceInterface
}

func NewLoader(gw gateway.GatewayInterface, ownerTodos services.OwnerTodosServiceInterface) LoaderInterface {
	return &Loader{gw: gw, ownerTodos: ownerTodos}
}

// Users returns the remote directory with the owner profile injected first.
func (l *Loader) Users(ctx context.Context) ([]models.User, error) {
	remote, err := l.gw.Users(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(remote)+1)
	users = append(users, services.OwnerProfile())
	users = append(users, remote...)
	return users, nil
}

// User resolves the owner profile locally; the sentinel id never reaches
// the network.
func (l *Loader) User(ctx context.Context, userID int) (models.User, error) {
	if userID == services.OwnerUserID {
		return services.OwnerProfile(), nil
	}
	return l.gw.User(ctx, userID)
}

func (l *Loader) PostDetail(ctx context.Context, userID, postID int) (*PostDetail, error) {
	var detail PostDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		post, err := l.gw.Post(gctx, postID)
		detail.Post = post
		return err
	})
	g.Go(func() error {
		comments, err := l.gw.PostComments(gctx, postID)
		detail.Comments = comments
		return err
	})
	g.Go(func() error {
		user, err := l.User(gctx, userID)
		detail.User = user
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (l *Loader) AlbumDetail(ctx context.Context, userID, albumID int) (*AlbumDetail, error) {
	var detail AlbumDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		album, err := l.gw.Album(gctx, albumID)
		detail.Album = album
		return err
	})
	g.Go(func() error {
		photos, err := l.gw.AlbumPhotos(gctx, albumID)
		detail.Photos = photos
		return err
	})
	g.Go(func() error {
		user, err := l.User(gctx, userID)
		detail.User = user
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &detail, nil
}

// UserPosts loads the posts tab once per page lifetime. Owner posts are
// synthesized locally on first access.
func (l *Loader) UserPosts(ctx context.Context, session *PageSession) ([]models.Post, error) {
	return session.posts.get(func() ([]models.Post, error) {
		if session.UserID == services.OwnerUserID {
			return services.OwnerPosts(), nil
		}
		return l.gw.UserPosts(ctx, session.UserID)
	})
}

func (l *Loader) UserAlbums(ctx context.Context, session *PageSession) ([]models.Album, error) {
	return session.albums.get(func() ([]models.Album, error) {
		if session.UserID == services.OwnerUserID {
			return services.OwnerAlbums(), nil
		}
		return l.gw.UserAlbums(ctx, session.UserID)
	})
}

// UserTodos serves owner todos live from the CRUD service so tab switches
// observe edits; remote todos are cached per page lifetime like the rest.
func (l *Loader) UserTodos(ctx context.Context, session *PageSession) ([]models.Todo, error) {
	if session.UserID == services.OwnerUserID {
		return l.ownerTodos.List(), nil
	}
	return session.todos.get(func() ([]models.Todo, error) {
		return l.gw.UserTodos(ctx, session.UserID)
	})
}
