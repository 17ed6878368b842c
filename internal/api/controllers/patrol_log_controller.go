package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrolms/internal/models/request_models"
	"patrolms/internal/services"
	"patrolms/pkg/utils"
)

type PatrolLogController struct {
	logService services.PatrolLogServiceInterface
}

func NewPatrolLogController(logService services.PatrolLogServiceInterface) *PatrolLogController {
	return &PatrolLogController{
		logService: logService,
	}
}

// CreateLog godoc
// @Summary Append a log entry to a patrol
// @Description Assigned officer only; patrol must be in progress
// @Tags PatrolLog
// @Accept json
// @Produce json
// @Param id path string true "Patrol ID"
// @Param request body request_models.CreateLogRequest true "Log payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id}/logs [post]
func (l *PatrolLogController) CreateLog(c *gin.Context) {
	var req request_models.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	entry, err := l.logService.Append(c.Request.Context(), c.Param("id"), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, entry, "Log entry created")
}

// GetPatrolLogs godoc
// @Summary List the activity log for a patrol, newest first
// @Tags PatrolLog
// @Produce json
// @Param id path string true "Patrol ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id}/logs [get]
func (l *PatrolLogController) GetPatrolLogs(c *gin.Context) {
	logs, err := l.logService.ListForPatrol(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, logs, "Logs fetched successfully")
}

// GetUserLogs godoc
// @Summary List one officer's logs across all patrols, newest first
// @Description Visible to the officer themselves, admins and managers
// @Tags PatrolLog
// @Produce json
// @Param id path string true "Officer ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id}/logs [get]
func (l *PatrolLogController) GetUserLogs(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	logs, err := l.logService.ListForOfficer(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, logs, "Logs fetched successfully")
}

// GetLog godoc
// @Summary Get a single log entry
// @Tags PatrolLog
// @Produce json
// @Param id path string true "Log ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /logs/{id} [get]
func (l *PatrolLogController) GetLog(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	entry, err := l.logService.Get(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Log fetched successfully")
}
