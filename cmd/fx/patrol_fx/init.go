package patrol_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"patrolms/internal/repositories"
	"patrolms/internal/services"
	"patrolms/pkg/geo"
)

var Module = fx.Provide(providePatrolRepo, providePatrolService)

func providePatrolRepo(db *gorm.DB) repositories.PatrolRepository {
	return repositories.NewPatrolRepository(db)
}

func providePatrolService(
	patrolRepo repositories.PatrolRepository,
	logRepo repositories.PatrolLogRepository,
	userRepo repositories.UserRepository,
	locationRepo repositories.LocationRepository,
	geoProvider geo.Provider,
) services.PatrolServiceInterface {
	return services.NewPatrolService(patrolRepo, logRepo, userRepo, locationRepo, geoProvider)
}
