//go:build wireinject
// +build wireinject

package di

import (
	"dialogd/internal"
	"dialogd/internal/codec"
	"dialogd/internal/controllers"
	"dialogd/internal/providers"
	"dialogd/internal/rotation"
	"dialogd/internal/services"
	"dialogd/internal/structures"
	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		services.NewDialogService,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		codec.NewZstdCompressor,
		controllers.NewDialogController,
		controllers.NewHealthController,
		rotation.NewScheduler,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
