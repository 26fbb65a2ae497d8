package bootstrap

import (
	"commerce-core/cmd/bootstrap/components"
	"commerce-core/internal/pkg/tracing"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	fx.Invoke(tracing.Setup),
	components.PersistenceModule,
	RedisModule,
	components.UseCaseModule,
	WorkerModule,
	components.HandlerModule,
)
