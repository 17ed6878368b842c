package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrolms/internal/models/request_models"
	"patrolms/internal/services"
	"patrolms/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers godoc
// @Summary List all users
// @Description Admin and manager only
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users [get]
func (u *UserController) ListUsers(c *gin.Context) {
	users, err := u.userService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// ListOfficers godoc
// @Summary List officers
// @Description Admin and manager only
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/officers [get]
func (u *UserController) ListOfficers(c *gin.Context) {
	officers, err := u.userService.ListOfficers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, officers, "Officers fetched successfully")
}

// GetUser godoc
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (u *UserController) GetUser(c *gin.Context) {
	user, err := u.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User fetched successfully")
}

// UpdateUser godoc
// @Summary Update a user profile
// @Description The user themselves or an admin
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.UpdateUserRequest true "User payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (u *UserController) UpdateUser(c *gin.Context) {
	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	user, err := u.userService.Update(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User updated successfully")
}

// UpdateUserStatus godoc
// @Summary Update a user's duty status
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.UpdateUserStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id}/status [put]
func (u *UserController) UpdateUserStatus(c *gin.Context) {
	var req request_models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token identity")
		return
	}

	if err := u.userService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, actor); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Status updated successfully")
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Admin only
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (u *UserController) DeleteUser(c *gin.Context) {
	if err := u.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User deleted successfully")
}
