//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"dirfav/internal"
	"dirfav/internal/controllers"
	"dirfav/internal/gateway"
	"dirfav/internal/loaders"
	"dirfav/internal/providers"
	"dirfav/internal/services"
	"dirfav/internal/storage"
	"dirfav/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,

		storage.NewKVStore,
		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,
		ProvideServiceKV,

		services.NewFavoritesService,
		services.NewRecentViewsService,
		services.NewPreferencesService,
		services.NewOwnerTodosService,

		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		gateway.NewClient,
		ProvideSessionRegistry,
		loaders.NewLoader,

		controllers.NewHomeController,
		controllers.NewDirectoryController,
		controllers.NewFavoritesController,
		controllers.NewRecentController,
		controllers.NewSettingsController,
		controllers.NewTodosController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
