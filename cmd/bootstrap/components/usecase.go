package components

import (
	"click-collect/internal/domain/order"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/usecase"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	order.NewRandomCodes,
	order.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAccountCommands,
		commands.NewFavoriteCommands,
		commands.NewRatingCommands,
		commands.NewCartCommands,
		commands.NewOrderCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewFavoriteQueries,
		queries.NewRatingQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewSlotQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
