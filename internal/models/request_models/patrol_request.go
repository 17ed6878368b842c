package request_models

import (
	"time"

	"patrolms/pkg/geo"
)

type CheckpointSpec struct {
	LocationID   string    `json:"location_id" binding:"required,uuid4"`
	RequiredTime time.Time `json:"required_time" binding:"required"`
	Notes        string    `json:"notes"`
}

type CreatePatrolRequest struct {
	Title            string           `json:"title" binding:"required"`
	AssignedOfficers []string         `json:"assigned_officers" binding:"required,min=1,dive,uuid4"`
	Locations        []string         `json:"locations" binding:"required,min=1,dive,uuid4"`
	StartTime        time.Time        `json:"start_time" binding:"required"`
	EndTime          time.Time        `json:"end_time" binding:"required"`
	Checkpoints      []CheckpointSpec `json:"checkpoints" binding:"required,min=1,dive"`
	Notes            string           `json:"notes"`
	Priority         string           `json:"priority"`
	Recurrence       string           `json:"recurrence"`
}

// UpdatePatrolRequest is a full-document edit; it replaces the roster,
// route and checkpoint list wholesale.
type UpdatePatrolRequest struct {
	Title            string           `json:"title" binding:"required"`
	AssignedOfficers []string         `json:"assigned_officers" binding:"required,min=1,dive,uuid4"`
	Locations        []string         `json:"locations" binding:"required,min=1,dive,uuid4"`
	StartTime        time.Time        `json:"start_time" binding:"required"`
	EndTime          time.Time        `json:"end_time" binding:"required"`
	Checkpoints      []CheckpointSpec `json:"checkpoints" binding:"required,min=1,dive"`
	Notes            string           `json:"notes"`
	Priority         string           `json:"priority"`
	Recurrence       string           `json:"recurrence"`
}

type StartPatrolRequest struct {
	Coordinates *geo.Coordinates `json:"coordinates"`
}

type CompletePatrolRequest struct {
	Notes       string           `json:"notes"`
	Coordinates *geo.Coordinates `json:"coordinates"`
}

type CompleteCheckpointRequest struct {
	Notes       string           `json:"notes"`
	Coordinates *geo.Coordinates `json:"coordinates"`
}

type ListPatrolsQuery struct {
	Status    string `form:"status"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Sort      string `form:"sort"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}
