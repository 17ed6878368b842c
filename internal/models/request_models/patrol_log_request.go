package request_models

import "patrolms/pkg/geo"

type CreateLogRequest struct {
	LocationID  string           `json:"location_id" binding:"required,uuid4"`
	Action      string           `json:"action" binding:"required"`
	Description string           `json:"description"`
	Coordinates *geo.Coordinates `json:"coordinates"`
}
