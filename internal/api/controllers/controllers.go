package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dbm "patrolms/internal/models/db_models"
	"patrolms/internal/services"
)

// actorFromContext rebuilds the authenticated Actor from the claims the
// JWT middleware stored on the request context.
func actorFromContext(c *gin.Context) (services.Actor, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return services.Actor{}, false
	}
	return services.Actor{
		ID:   id,
		Role: dbm.UserRole(c.GetString("role")),
	}, true
}
