package db_models

import (
	"time"

	"github.com/google/uuid"
)

type PatrolStatus string

const (
	PatrolScheduled  PatrolStatus = "scheduled"
	PatrolInProgress PatrolStatus = "in-progress"
	PatrolCompleted  PatrolStatus = "completed"
	PatrolCancelled  PatrolStatus = "cancelled"
)

// Terminal reports whether no transition may leave the status.
func (s PatrolStatus) Terminal() bool {
	return s == PatrolCompleted || s == PatrolCancelled
}

// CanTransitionTo encodes the patrol state machine:
// scheduled -> in-progress -> completed, with cancel allowed from any
// non-terminal state.
func (s PatrolStatus) CanTransitionTo(next PatrolStatus) bool {
	switch next {
	case PatrolInProgress:
		return s == PatrolScheduled
	case PatrolCompleted:
		return s == PatrolInProgress
	case PatrolCancelled:
		return !s.Terminal()
	default:
		return false
	}
}

type PatrolPriority string

const (
	PriorityLow    PatrolPriority = "low"
	PriorityMedium PatrolPriority = "medium"
	PriorityHigh   PatrolPriority = "high"
	PriorityUrgent PatrolPriority = "urgent"
)

type Recurrence string

const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiWeekly Recurrence = "bi-weekly"
	RecurrenceMonthly  Recurrence = "monthly"
)

type Patrol struct {
	BaseModel
	Title       string         `json:"title"`
	CreatedByID uuid.UUID      `json:"created_by_id"`
	StartTime   time.Time      `json:"start_time"`
	EndTime     time.Time      `json:"end_time"`
	Status      PatrolStatus   `gorm:"default:scheduled" json:"status"`
	Notes       string         `json:"notes"`
	Priority    PatrolPriority `gorm:"default:medium" json:"priority"`
	Recurrence  Recurrence     `gorm:"default:none" json:"recurrence"`

	// Version guards read-modify-write cycles on the aggregate; every
	// lifecycle or checkpoint mutation compares and bumps it.
	Version int64 `gorm:"default:0" json:"version"`

	CreatedBy   User            `gorm:"foreignKey:CreatedByID" json:"created_by"`
	Officers    []PatrolOfficer `gorm:"foreignKey:PatrolID" json:"officers"`
	Route       []RouteStop     `gorm:"foreignKey:PatrolID" json:"route"`
	Checkpoints []Checkpoint    `gorm:"foreignKey:PatrolID" json:"checkpoints"`
}

// PatrolOfficer is an ordered assignment of an officer to a patrol.
type PatrolOfficer struct {
	BaseModel
	PatrolID  uuid.UUID `gorm:"index" json:"patrol_id"`
	OfficerID uuid.UUID `gorm:"index" json:"officer_id"`
	Position  int       `json:"position"`

	Officer User `gorm:"foreignKey:OfficerID" json:"officer"`
}

// RouteStop is an ordered location reference on a patrol's route.
type RouteStop struct {
	BaseModel
	PatrolID   uuid.UUID `gorm:"index" json:"patrol_id"`
	LocationID uuid.UUID `json:"location_id"`
	Position   int       `json:"position"`

	Location Location `gorm:"foreignKey:LocationID" json:"location"`
}

type CheckpointStatus string

const (
	CheckpointPending   CheckpointStatus = "pending"
	CheckpointCompleted CheckpointStatus = "completed"
	CheckpointMissed    CheckpointStatus = "missed"
)

// Checkpoint is a required stop inside a patrol. ActualTime is non-nil
// exactly when Status is completed.
type Checkpoint struct {
	BaseModel
	PatrolID     uuid.UUID        `gorm:"index" json:"patrol_id"`
	LocationID   uuid.UUID        `json:"location_id"`
	RequiredTime time.Time        `json:"required_time"`
	ActualTime   *time.Time       `json:"actual_time"`
	Status       CheckpointStatus `gorm:"default:pending" json:"status"`
	Notes        string           `json:"notes"`

	Location Location `gorm:"foreignKey:LocationID" json:"location"`
}

// IsAssigned reports whether the given officer is on the patrol's roster.
func (p *Patrol) IsAssigned(officerID uuid.UUID) bool {
	for _, po := range p.Officers {
		if po.OfficerID == officerID {
			return true
		}
	}
	return false
}

// FindCheckpoint returns the checkpoint with the given id, or nil.
func (p *Patrol) FindCheckpoint(checkpointID uuid.UUID) *Checkpoint {
	for i := range p.Checkpoints {
		if p.Checkpoints[i].ID == checkpointID {
			return &p.Checkpoints[i]
		}
	}
	return nil
}

// FirstRouteLocation returns the location id of the first stop on the route.
func (p *Patrol) FirstRouteLocation() uuid.UUID {
	if len(p.Route) == 0 {
		return uuid.Nil
	}
	return p.Route[0].LocationID
}

// LastRouteLocation returns the location id of the final stop on the route.
func (p *Patrol) LastRouteLocation() uuid.UUID {
	if len(p.Route) == 0 {
		return uuid.Nil
	}
	return p.Route[len(p.Route)-1].LocationID
}
