package listing

import "go.uber.org/fx"

// Module exposes the listing service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
