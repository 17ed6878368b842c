package location_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"patrolms/internal/repositories"
	"patrolms/internal/services"
)

var Module = fx.Provide(provideLocationRepo, provideLocationService)

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideLocationService(locationRepo repositories.LocationRepository) services.LocationServiceInterface {
	return services.NewLocationService(locationRepo)
}
