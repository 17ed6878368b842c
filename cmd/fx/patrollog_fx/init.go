package patrollog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"patrolms/internal/repositories"
	"patrolms/internal/services"
	"patrolms/pkg/geo"
)

var Module = fx.Provide(providePatrolLogRepo, providePatrolLogService)

func providePatrolLogRepo(db *gorm.DB) repositories.PatrolLogRepository {
	return repositories.NewPatrolLogRepository(db)
}

func providePatrolLogService(
	logRepo repositories.PatrolLogRepository,
	patrolRepo repositories.PatrolRepository,
	userRepo repositories.UserRepository,
	geoProvider geo.Provider,
) services.PatrolLogServiceInterface {
	return services.NewPatrolLogService(logRepo, patrolRepo, userRepo, geoProvider)
}
