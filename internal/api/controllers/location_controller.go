package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrolms/internal/models/request_models"
	"patrolms/internal/services"
	"patrolms/pkg/utils"
)

type LocationController struct {
	locationService services.LocationServiceInterface
}

func NewLocationController(locationService services.LocationServiceInterface) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// CreateLocation godoc
// @Summary Create a location
// @Description Admin and manager only
// @Tags Location
// @Accept json
// @Produce json
// @Param request body request_models.CreateLocationRequest true "Location payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /location [post]
func (l *LocationController) CreateLocation(c *gin.Context) {
	var req request_models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	location, err := l.locationService.Create(c.Request.Context(), req, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, location, "Location created successfully")
}

// ListLocations godoc
// @Summary List locations
// @Tags Location
// @Produce json
// @Param active query bool false "Only active locations"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /location [get]
func (l *LocationController) ListLocations(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	locations, err := l.locationService.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, locations, "Locations fetched successfully")
}

// GetLocation godoc
// @Summary Get a location by id
// @Tags Location
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /location/{id} [get]
func (l *LocationController) GetLocation(c *gin.Context) {
	location, err := l.locationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, location, "Location fetched successfully")
}

// UpdateLocation godoc
// @Summary Update a location
// @Description Admin and manager only
// @Tags Location
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body request_models.UpdateLocationRequest true "Location payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /location/{id} [put]
func (l *LocationController) UpdateLocation(c *gin.Context) {
	var req request_models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	location, err := l.locationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, location, "Location updated successfully")
}

// DeleteLocation godoc
// @Summary Delete a location
// @Description Admin only
// @Tags Location
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /location/{id} [delete]
func (l *LocationController) DeleteLocation(c *gin.Context) {
	if err := l.locationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Location deleted successfully")
}
