package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"patrolms/cmd/fx/controllers_fx"
	"patrolms/cmd/fx/dashboard_fx"
	"patrolms/cmd/fx/db_fx"
	"patrolms/cmd/fx/geo_fx"
	"patrolms/cmd/fx/location_fx"
	"patrolms/cmd/fx/patrol_fx"
	"patrolms/cmd/fx/patrollog_fx"
	"patrolms/cmd/fx/user_fx"
	"patrolms/internal/api/controllers"
	"patrolms/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		geo_fx.Module,
		user_fx.Module,
		location_fx.Module,
		patrol_fx.Module,
		patrollog_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	locationController *controllers.LocationController,
	patrolController *controllers.PatrolController,
	logController *controllers.PatrolLogController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, userController, locationController,
		patrolController, logController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	locationController *controllers.LocationController,
	patrolController *controllers.PatrolController,
	logController *controllers.PatrolLogController,
	dashboardController *controllers.DashboardController) {

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/register",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"),
		authController.Register)

	patrol := api.Group("/patrol")
	patrol.Use(middleware.JWTAuthMiddleware())
	patrol.GET("/dashboard-stats", dashboardController.GetDashboardStats)
	patrol.GET("/active", dashboardController.GetActivePatrols)
	patrol.GET("", patrolController.ListPatrols)
	patrol.POST("", middleware.RoleMiddleware("admin", "manager"), patrolController.CreatePatrol)
	patrol.GET("/:id", patrolController.GetPatrol)
	patrol.PUT("/:id", middleware.RoleMiddleware("admin", "manager"), patrolController.UpdatePatrol)
	patrol.DELETE("/:id", middleware.RoleMiddleware("admin", "manager"), patrolController.DeletePatrol)
	patrol.PUT("/:id/start", patrolController.StartPatrol)
	patrol.PUT("/:id/complete", patrolController.CompletePatrol)
	patrol.PUT("/:id/cancel", middleware.RoleMiddleware("admin", "manager"), patrolController.CancelPatrol)
	patrol.POST("/:id/checkpoint/:checkpointId", patrolController.CompleteCheckpoint)
	patrol.GET("/:id/logs", logController.GetPatrolLogs)
	patrol.POST("/:id/logs", logController.CreateLog)

	logs := api.Group("/logs")
	logs.Use(middleware.JWTAuthMiddleware())
	logs.GET("/:id", logController.GetLog)

	users := api.Group("/users")
	users.Use(middleware.JWTAuthMiddleware())
	users.GET("", middleware.RoleMiddleware("admin", "manager"), userController.ListUsers)
	users.GET("/officers", middleware.RoleMiddleware("admin", "manager"), userController.ListOfficers)
	users.GET("/:id", userController.GetUser)
	users.PUT("/:id", userController.UpdateUser)
	users.DELETE("/:id", middleware.RoleMiddleware("admin"), userController.DeleteUser)
	users.PUT("/:id/status", userController.UpdateUserStatus)
	users.GET("/:id/logs", logController.GetUserLogs)

	location := api.Group("/location")
	location.Use(middleware.JWTAuthMiddleware())
	location.GET("", locationController.ListLocations)
	location.POST("", middleware.RoleMiddleware("admin", "manager"), locationController.CreateLocation)
	location.GET("/:id", locationController.GetLocation)
	location.PUT("/:id", middleware.RoleMiddleware("admin", "manager"), locationController.UpdateLocation)
	location.DELETE("/:id", middleware.RoleMiddleware("admin"), locationController.DeleteLocation)
}
