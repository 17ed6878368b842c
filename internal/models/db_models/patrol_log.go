package db_models

import (
	"time"

	"github.com/google/uuid"
)

type LogAction string

const (
	ActionCheckIn        LogAction = "check-in"
	ActionCheckOut       LogAction = "check-out"
	ActionIncidentReport LogAction = "incident-report"
	ActionNote           LogAction = "note"
	ActionIssue          LogAction = "issue"
	ActionBreak          LogAction = "break"
)

// ValidLogAction reports whether s is one of the known log actions.
func ValidLogAction(s string) bool {
	switch LogAction(s) {
	case ActionCheckIn, ActionCheckOut, ActionIncidentReport, ActionNote, ActionIssue, ActionBreak:
		return true
	}
	return false
}

// PatrolLog is an append-only record of one event during a patrol.
// Rows are inserted with a server-assigned timestamp and never updated
// or deleted afterwards.
type PatrolLog struct {
	BaseModel
	PatrolID    uuid.UUID `gorm:"index" json:"patrol_id"`
	OfficerID   uuid.UUID `gorm:"index" json:"officer_id"`
	LocationID  uuid.UUID `json:"location_id"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
	Action      LogAction `json:"action"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`

	Officer  User     `gorm:"foreignKey:OfficerID" json:"officer"`
	Location Location `gorm:"foreignKey:LocationID" json:"location"`
	Patrol   Patrol   `gorm:"foreignKey:PatrolID" json:"patrol"`
}
