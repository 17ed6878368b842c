package geo_fx

import (
	"go.uber.org/fx"

	"patrolms/pkg/geo"
)

var Module = fx.Provide(provideGeoProvider)

func provideGeoProvider() geo.Provider {
	return geo.NoopProvider{}
}
