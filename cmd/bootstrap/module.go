package bootstrap

import (
	"click-collect/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	FxLogger,
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.PersistenceModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
