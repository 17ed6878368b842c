package services

import (
	"github.com/google/uuid"

	dbm "patrolms/internal/models/db_models"
	"patrolms/pkg/utils"
)

// Actor is the authenticated identity performing an operation. It is
// built from the verified token claims by the controller and passed
// explicitly; services never reach into request state.
type Actor struct {
	ID   uuid.UUID
	Role dbm.UserRole
}

type Operation string

const (
	OpCreatePatrol       Operation = "create"
	OpStartPatrol        Operation = "start"
	OpCompletePatrol     Operation = "complete"
	OpCancelPatrol       Operation = "cancel"
	OpUpdatePatrol       Operation = "update"
	OpDeletePatrol       Operation = "delete"
	OpCompleteCheckpoint Operation = "checkpoint-complete"
	OpAssignOfficers     Operation = "assign-officers"
	OpAppendLog          Operation = "append-log"
)

// Authorize is the single permission gate consulted before every
// mutating patrol operation:
//
//	create/cancel/assign-officers    admin or manager
//	update/delete                    patrol creator or admin
//	start/complete/checkpoint/log    a member of the patrol roster
//
// Denials are explicit errors, never silent no-ops. patrol may be nil
// only for OpCreatePatrol.
func Authorize(actor Actor, op Operation, patrol *dbm.Patrol) error {
	switch op {
	case OpCreatePatrol, OpCancelPatrol, OpAssignOfficers:
		if actor.Role == dbm.RoleAdmin || actor.Role == dbm.RoleManager {
			return nil
		}
		return utils.ErrNotAuthorized
	case OpUpdatePatrol, OpDeletePatrol:
		if actor.Role == dbm.RoleAdmin {
			return nil
		}
		if patrol != nil && patrol.CreatedByID == actor.ID {
			return nil
		}
		return utils.ErrNotAuthorized
	case OpStartPatrol, OpCompletePatrol, OpCompleteCheckpoint, OpAppendLog:
		if patrol != nil && patrol.IsAssigned(actor.ID) {
			return nil
		}
		return utils.ErrNotAssigned
	default:
		return utils.ErrNotAuthorized
	}
}
