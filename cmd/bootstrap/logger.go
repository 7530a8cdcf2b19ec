package bootstrap

import (
	"fmt"
	"log/slog"

	"click-collect/internal/handler/middleware"
	"click-collect/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
		NewZapLogger,
	),
)

// FxLogger routes fx's own lifecycle events through zap.
var FxLogger = fx.WithLogger(func(z *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: z}
})

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}

func NewZapLogger(lc fx.Lifecycle) (*zap.Logger, error) {
	var (
		z   *zap.Logger
		err error
	)
	if gin.Mode() == gin.ReleaseMode {
		z, err = zap.NewProduction()
	} else {
		z, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}
	lc.Append(fx.StopHook(func() {
		_ = z.Sync()
	}))
	return z, nil
}
