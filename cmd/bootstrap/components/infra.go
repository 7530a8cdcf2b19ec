package components

import (
	"context"
	"log/slog"

	"click-collect/internal/infra/cache"
	"click-collect/internal/infra/notify"
	"click-collect/internal/infra/upload"
	"click-collect/internal/pkg/config"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewCatalogCache,
		fx.Annotate(
			func(cfg config.Config) *notify.SMTPMailer { return notify.NewSMTPMailer(cfg.Mail) },
			fx.As(new(notify.Mailer)),
		),
		fx.Annotate(
			func(cfg config.Config) *notify.SMSClient { return notify.NewSMSClient(cfg.SMS) },
			fx.As(new(notify.SMSSender)),
		),
		fx.Annotate(
			notify.NewNotifier,
			fx.As(new(commands.Notifier)),
		),
		fx.Annotate(
			NewDispatcher,
			fx.As(new(commands.Dispatcher)),
		),
		fx.Annotate(
			func(cfg config.Config) *upload.CloudinarySigner { return upload.NewCloudinarySigner(cfg.Cloudinary) },
			fx.As(new(commands.ImageSigner)),
		),
	),
)

// NewCatalogCache degrades to no caching when Redis is not configured or not reachable.
func NewCatalogCache(lc fx.Lifecycle, cfg config.Config) shared.CatalogCache {
	if cfg.Redis.Addr == "" {
		return cache.Nop{}
	}
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		slog.Warn("catalog cache disabled", "error", err.Error())
		return cache.Nop{}
	}
	lc.Append(fx.StopHook(client.Close))
	return cache.NewRedisCache(client, cfg.Redis.TTL)
}

// NewDispatcher drains in-flight notifications on shutdown.
func NewDispatcher(lc fx.Lifecycle, cfg config.Config) *notify.Dispatcher {
	d := notify.NewDispatcher(cfg.App.NotifyTimeout)
	lc.Append(fx.StopHook(d.Wait))
	return d
}
