package bootstrap

import (
	"hotel-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	StoreModule,
	GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
