package response_models

import (
	dbm "patrolms/internal/models/db_models"
	"patrolms/pkg/utils"
)

type LogResponse struct {
	ID          string           `json:"id"`
	PatrolID    string           `json:"patrol_id"`
	PatrolTitle string           `json:"patrol_title,omitempty"`
	Officer     UserResponse     `json:"officer"`
	Location    LocationResponse `json:"location"`
	Timestamp   string           `json:"timestamp"`
	Action      string           `json:"action"`
	Description string           `json:"description,omitempty"`
	Latitude    *float64         `json:"latitude,omitempty"`
	Longitude   *float64         `json:"longitude,omitempty"`
}

func BuildLogResponse(l *dbm.PatrolLog) LogResponse {
	return LogResponse{
		ID:          l.ID.String(),
		PatrolID:    l.PatrolID.String(),
		PatrolTitle: l.Patrol.Title,
		Officer:     BuildUserResponse(&l.Officer),
		Location:    BuildLocationResponse(&l.Location),
		Timestamp:   utils.FormatRFC3339(l.Timestamp),
		Action:      string(l.Action),
		Description: l.Description,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
	}
}

func BuildLogResponses(logs []dbm.PatrolLog) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, BuildLogResponse(&logs[i]))
	}
	return out
}
