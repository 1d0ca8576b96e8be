package bootstrap

import (
	"hiburan-booking-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	JWTModule,
	BackendModule,
	CountdownModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
