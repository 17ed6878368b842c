package request_models

type UpdateUserRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	BadgeNumber string `json:"badge_number"`
	Role        string `json:"role" binding:"omitempty,oneof=admin manager officer"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available on-duty active off-duty"`
}
