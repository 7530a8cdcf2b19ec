package components

import (
	"click-collect/internal/handler"
	"click-collect/internal/handler/api"
	"click-collect/internal/handler/middleware"
	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/cookie"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewCatalogHandler,
		api.NewFavoriteHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewPaymentHandler,
		api.NewUploadHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(
	auth commands.AuthCommands,
	account commands.AccountCommands,
	users queries.UserQueries,
	cfg config.Config,
	lifetimes cookie.TokenLifetimes,
) *api.AuthHandler {
	return api.NewAuthHandler(auth, account, users, cfg.Cookie, lifetimes)
}
