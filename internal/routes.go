package internal

import (
	"net/http"

	"dirfav/internal/controllers"
	"dirfav/internal/providers"
	"dirfav/internal/structures"
)

func InitRoutes(
	home *controllers.HomeController,
	directory *controllers.DirectoryController,
	favorites *controllers.FavoritesController,
	recent *controllers.RecentController,
	settings *controllers.SettingsController,
	todos *controllers.TodosController,
	conf *structures.Config,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/{$}", http.HandlerFunc(home.Home))

	routers.Get("/users", http.HandlerFunc(directory.GetUsers))
	routers.Get("/users/{userId}", http.HandlerFunc(directory.GetUser))
	routers.Get("/users/{userId}/posts", http.HandlerFunc(directory.GetUserPosts))
	routers.Get("/users/{userId}/albums", http.HandlerFunc(directory.GetUserAlbums))
	routers.Get("/users/{userId}/todos", http.HandlerFunc(directory.GetUserTodos))
	routers.Get("/users/{userId}/posts/{postId}", http.HandlerFunc(directory.GetPostDetail))
	routers.Get("/users/{userId}/albums/{albumId}", http.HandlerFunc(directory.GetAlbumDetail))

	routers.Get("/favorites", http.HandlerFunc(favorites.GetFavorites))
	routers.Post("/favorites/photos", http.HandlerFunc(favorites.AddPhoto))
	routers.Get("/favorites/photos/{photoId}", http.HandlerFunc(favorites.IsPhotoFavorite))
	routers.Delete("/favorites/photos/{photoId}", http.HandlerFunc(favorites.RemovePhoto))
	routers.Post("/favorites/posts", http.HandlerFunc(favorites.AddPost))
	routers.Get("/favorites/posts/{postId}", http.HandlerFunc(favorites.IsPostFavorite))
	routers.Delete("/favorites/posts/{postId}", http.HandlerFunc(favorites.RemovePost))

	routers.Get("/recent", http.HandlerFunc(recent.GetRecentViews))
	routers.Post("/recent", http.HandlerFunc(recent.RecordView))
	routers.Delete("/recent", http.HandlerFunc(recent.ClearRecentViews))

	routers.Get("/settings", http.HandlerFunc(settings.GetPreferences))
	routers.Patch("/settings", http.HandlerFunc(settings.PatchPreferences))
	routers.Post("/settings/reset", http.HandlerFunc(settings.ResetPreferences))
	routers.Get("/settings/theme", http.HandlerFunc(settings.GetTheme))
	routers.Put("/settings/theme", http.HandlerFunc(settings.PutTheme))
	routers.Get("/settings/storage", http.HandlerFunc(settings.GetStorageInfo))
	routers.Delete("/settings/storage", http.HandlerFunc(settings.ClearStorage))

	routers.Post("/users/{userId}/todos", http.HandlerFunc(todos.AddTodo))
	routers.Post("/users/{userId}/todos/{todoId}/toggle", http.HandlerFunc(todos.ToggleTodo))
	routers.Delete("/users/{userId}/todos/{todoId}", http.HandlerFunc(todos.DeleteTodo))

	return routers
}
