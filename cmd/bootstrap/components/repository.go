package components

import (
	"tripdesk/internal/infra/readstore"
	"tripdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var ReadStoreModule = fx.Module("readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewPackageReadStore,
			fx.As(new(queries.PackageReadStore)),
		),
	),
)
