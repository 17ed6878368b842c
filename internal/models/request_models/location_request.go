package request_models

type CreateLocationRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	LocationType   string   `json:"location_type" binding:"omitempty,oneof=building area checkpoint entrance perimeter other"`
	Latitude       *float64 `json:"latitude" binding:"required"`
	Longitude      *float64 `json:"longitude" binding:"required"`
	GeofenceRadius int      `json:"geofence_radius"`
	SecurityLevel  string   `json:"security_level" binding:"omitempty,oneof=low medium high restricted"`
	Notes          string   `json:"notes"`
}

type UpdateLocationRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	LocationType   string   `json:"location_type" binding:"omitempty,oneof=building area checkpoint entrance perimeter other"`
	Latitude       *float64 `json:"latitude" binding:"required"`
	Longitude      *float64 `json:"longitude" binding:"required"`
	GeofenceRadius int      `json:"geofence_radius"`
	SecurityLevel  string   `json:"security_level" binding:"omitempty,oneof=low medium high restricted"`
	IsActive       *bool    `json:"is_active"`
	Notes          string   `json:"notes"`
}
