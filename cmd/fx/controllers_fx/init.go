package controllers_fx

import (
	"go.uber.org/fx"

	"patrolms/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewLocationController),
	fx.Provide(controllers.NewPatrolController),
	fx.Provide(controllers.NewPatrolLogController),
	fx.Provide(controllers.NewDashboardController))
