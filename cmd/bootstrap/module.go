package bootstrap

import (
	"event-sync-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
