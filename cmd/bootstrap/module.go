package bootstrap

import (
	"marketplace-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.NotifierModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
