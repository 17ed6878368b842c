package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrolms/internal/models/request_models"
	"patrolms/internal/services"
	"patrolms/pkg/utils"
)

type PatrolController struct {
	patrolService services.PatrolServiceInterface
}

func NewPatrolController(patrolService services.PatrolServiceInterface) *PatrolController {
	return &PatrolController{
		patrolService: patrolService,
	}
}

// CreatePatrol godoc
// @Summary Create a patrol
// @Description Schedule a new patrol with officers, route and checkpoints
// @Tags Patrol
// @Accept json
// @Produce json
// @Param request body request_models.CreatePatrolRequest true "Patrol payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol [post]
func (p *PatrolController) CreatePatrol(c *gin.Context) {
	var req request_models.CreatePatrolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	patrol, err := p.patrolService.Create(c.Request.Context(), req, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, patrol, "Patrol created successfully")
}

// ListPatrols godoc
// @Summary List patrols
// @Description Paginated patrol list with status and date range filters
// @Tags Patrol
// @Produce json
// @Param status    query string false "Filter by status"
// @Param startDate query string false "Start time lower bound (RFC3339 or YYYY-MM-DD)"
// @Param endDate   query string false "Start time upper bound (RFC3339 or YYYY-MM-DD)"
// @Param sort      query string false "startTime | -startTime | createdAt | -createdAt"
// @Param page      query int    false "Page number" default(1)
// @Param limit     query int    false "Page size" default(10)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol [get]
func (p *PatrolController) ListPatrols(c *gin.Context) {
	var q request_models.ListPatrolsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := p.patrolService.List(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Patrols fetched successfully")
}

// GetPatrol godoc
// @Summary Get a patrol with its activity log
// @Tags Patrol
// @Produce json
// @Param id path string true "Patrol ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id} [get]
func (p *PatrolController) GetPatrol(c *gin.Context) {
	detail, err := p.patrolService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Patrol fetched successfully")
}

// UpdatePatrol godoc
// @Summary Update a patrol
// @Description Full-document edit; creator or admin only, disallowed once terminal
// @Tags Patrol
// @Accept json
// @Produce json
// @Param id path string true "Patrol ID"
// @Param request body request_models.UpdatePatrolRequest true "Patrol payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id} [put]
func (p *PatrolController) UpdatePatrol(c *gin.Context) {
	var req request_models.UpdatePatrolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	patrol, err := p.patrolService.Update(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, patrol, "Patrol updated successfully")
}

// DeletePatrol godoc
// @Summary Delete a patrol
// @Tags Patrol
// @Produce json
// @Param id path string true "Patrol ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id} [delete]
func (p *PatrolController) DeletePatrol(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	if err := p.patrolService.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Patrol deleted successfully")
}

// StartPatrol godoc
// @Summary Start a scheduled patrol
// @Description Assigned officer only; emits a check-in log at the first route stop
// @Tags Patrol
// @Accept json
// @Produce json
// @Param id path string true "Patrol ID"
// @Param request body request_models.StartPatrolRequest false "Optional coordinates"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id}/start [put]
func (p *PatrolController) StartPatrol(c *gin.Context) {
	var req request_models.StartPatrolRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	patrol, err := p.patrolService.Start(c.Request.Context(), c.Param("id"), actor, req.Coordinates)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, patrol, "Patrol started")
}

// CompletePatrol godoc
// @Summary Complete an in-progress patrol
// @Description Assigned officer only; emits a check-out log at the last route stop
// @Tags Patrol
// @Accept json
// @Produce json
// @Param id path string true "Patrol ID"
// @Param request body request_models.CompletePatrolRequest false "Notes and optional coordinates"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id}/complete [put]
func (p *PatrolController) CompletePatrol(c *gin.Context) {
	var req request_models.CompletePatrolRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	patrol, err := p.patrolService.Complete(c.Request.Context(), c.Param("id"), actor, req.Notes, req.Coordinates)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, patrol, "Patrol completed")
}

// CancelPatrol godoc
// @Summary Cancel a patrol
// @Description Admin or manager only; allowed while scheduled or in progress
// @Tags Patrol
// @Produce json
// @Param id path string true "Patrol ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id}/cancel [put]
func (p *PatrolController) CancelPatrol(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	patrol, err := p.patrolService.Cancel(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, patrol, "Patrol cancelled")
}

// CompleteCheckpoint godoc
// @Summary Complete a checkpoint within a patrol
// @Description Assigned officer only; patrol must be in progress
// @Tags Patrol
// @Accept json
// @Produce json
// @Param id path string true "Patrol ID"
// @Param checkpointId path string true "Checkpoint ID"
// @Param request body request_models.CompleteCheckpointRequest false "Notes and optional coordinates"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/{id}/checkpoint/{checkpointId} [post]
func (p *PatrolController) CompleteCheckpoint(c *gin.Context) {
	var req request_models.CompleteCheckpointRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	patrol, err := p.patrolService.CompleteCheckpoint(
		c.Request.Context(), c.Param("id"), c.Param("checkpointId"), actor, req.Notes, req.Coordinates)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, patrol, "Checkpoint completed")
}
