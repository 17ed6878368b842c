package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"patrolms/internal/repositories"
	"patrolms/internal/services"
)

var Module = fx.Provide(provideUserRepo, provideUserService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}
