package controllers

import (
	"github.com/gin-gonic/gin"

	"patrolms/internal/services"
	"patrolms/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboardStats godoc
// @Summary Dashboard rollups
// @Description Active patrol count, on-duty officers, today's patrols, recent patrols
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/dashboard-stats [get]
func (d *DashboardController) GetDashboardStats(c *gin.Context) {
	stats, err := d.dashboardService.BuildStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Dashboard stats fetched successfully")
}

// GetActivePatrols godoc
// @Summary List patrols currently in progress
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patrol/active [get]
func (d *DashboardController) GetActivePatrols(c *gin.Context) {
	patrols, err := d.dashboardService.ActivePatrols(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, patrols, "Active patrols fetched successfully")
}
