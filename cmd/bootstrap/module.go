package bootstrap

import (
	"tripdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.ReadStoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
