package db_models

import "github.com/google/uuid"

type Location struct {
	BaseModel
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	LocationType   string    `gorm:"default:checkpoint" json:"location_type"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	GeofenceRadius int       `gorm:"default:50" json:"geofence_radius"` // meters
	SecurityLevel  string    `gorm:"default:medium" json:"security_level"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	Notes          string    `json:"notes"`
	CreatedByID    uuid.UUID `json:"created_by_id"`
}
