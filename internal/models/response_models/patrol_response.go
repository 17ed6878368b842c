package response_models

import (
	dbm "patrolms/internal/models/db_models"
	"patrolms/pkg/utils"
)

type LocationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func BuildLocationResponse(l *dbm.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
}

type CheckpointResponse struct {
	ID           string           `json:"id"`
	Location     LocationResponse `json:"location"`
	RequiredTime string           `json:"required_time"`
	ActualTime   string           `json:"actual_time,omitempty"`
	Status       string           `json:"status"`
	Notes        string           `json:"notes,omitempty"`
}

type PatrolResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Status      string               `json:"status"`
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	Priority    string               `json:"priority"`
	Recurrence  string               `json:"recurrence"`
	Notes       string               `json:"notes,omitempty"`
	CreatedBy   UserResponse         `json:"created_by"`
	Officers    []UserResponse       `json:"assigned_officers"`
	Route       []LocationResponse   `json:"locations"`
	Checkpoints []CheckpointResponse `json:"checkpoints"`
}

func BuildPatrolResponse(p *dbm.Patrol) PatrolResponse {
	out := PatrolResponse{
		ID:         p.ID.String(),
		Title:      p.Title,
		Status:     string(p.Status),
		StartTime:  utils.FormatRFC3339(p.StartTime),
		EndTime:    utils.FormatRFC3339(p.EndTime),
		Priority:   string(p.Priority),
		Recurrence: string(p.Recurrence),
		Notes:      p.Notes,
		CreatedBy:  BuildUserResponse(&p.CreatedBy),
	}

	out.Officers = make([]UserResponse, 0, len(p.Officers))
	for i := range p.Officers {
		out.Officers = append(out.Officers, BuildUserResponse(&p.Officers[i].Officer))
	}

	out.Route = make([]LocationResponse, 0, len(p.Route))
	for i := range p.Route {
		out.Route = append(out.Route, BuildLocationResponse(&p.Route[i].Location))
	}

	out.Checkpoints = make([]CheckpointResponse, 0, len(p.Checkpoints))
	for i := range p.Checkpoints {
		cp := &p.Checkpoints[i]
		cr := CheckpointResponse{
			ID:           cp.ID.String(),
			Location:     BuildLocationResponse(&cp.Location),
			RequiredTime: utils.FormatRFC3339(cp.RequiredTime),
			Status:       string(cp.Status),
			Notes:        cp.Notes,
		}
		if cp.ActualTime != nil {
			cr.ActualTime = utils.FormatRFC3339(*cp.ActualTime)
		}
		out.Checkpoints = append(out.Checkpoints, cr)
	}

	return out
}

type PagedPatrols struct {
	Items      []PatrolResponse `json:"items"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type PatrolDetailResponse struct {
	Patrol PatrolResponse `json:"patrol"`
	Logs   []LogResponse  `json:"logs"`
}
