package components

import (
	"tripdesk/internal/pkg/clock"
	"tripdesk/internal/pkg/config"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store queries.PackageReadStore, cfg config.Config) queries.PricingQueries {
			return queries.NewPricingQueries(store, cfg.Pricing.DefaultNights, cfg.Pricing.BatchConcurrency)
		},
	),
)
