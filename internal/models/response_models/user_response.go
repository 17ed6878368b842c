package response_models

import (
	dbm "patrolms/internal/models/db_models"
)

type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	BadgeNumber string `json:"badge_number,omitempty"`
	Status      string `json:"status"`
}

func BuildUserResponse(u *dbm.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		BadgeNumber: u.BadgeNumber,
		Status:      string(u.Status),
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
