//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"umc/internal"
	"umc/internal/loader"
	"umc/internal/providers"
	"umc/internal/services"
	"umc/internal/structures"
	"umc/internal/workbook"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,

		loader.NewDecompressor,
		loader.NewLoader,
		workbook.NewWriter,
		services.NewConverterService,
		internal.NewApp,
	)

	return nil, nil
}
