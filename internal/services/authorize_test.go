package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	dbm "patrolms/internal/models/db_models"
	"patrolms/pkg/utils"
)

func TestAuthorize(t *testing.T) {
	creator := uuid.New()
	assigned := uuid.New()
	stranger := uuid.New()

	patrol := &dbm.Patrol{
		CreatedByID: creator,
		Officers:    []dbm.PatrolOfficer{{OfficerID: assigned}},
	}

	tests := []struct {
		name  string
		actor Actor
		op    Operation
		want  error
	}{
		{"admin creates", Actor{ID: stranger, Role: dbm.RoleAdmin}, OpCreatePatrol, nil},
		{"manager creates", Actor{ID: stranger, Role: dbm.RoleManager}, OpCreatePatrol, nil},
		{"officer cannot create", Actor{ID: assigned, Role: dbm.RoleOfficer}, OpCreatePatrol, utils.ErrNotAuthorized},
		{"manager cancels", Actor{ID: stranger, Role: dbm.RoleManager}, OpCancelPatrol, nil},
		{"officer cannot cancel", Actor{ID: assigned, Role: dbm.RoleOfficer}, OpCancelPatrol, utils.ErrNotAuthorized},
		{"admin updates any", Actor{ID: stranger, Role: dbm.RoleAdmin}, OpUpdatePatrol, nil},
		{"creator updates own", Actor{ID: creator, Role: dbm.RoleManager}, OpUpdatePatrol, nil},
		{"non-creator manager cannot update", Actor{ID: stranger, Role: dbm.RoleManager}, OpUpdatePatrol, utils.ErrNotAuthorized},
		{"creator deletes own", Actor{ID: creator, Role: dbm.RoleManager}, OpDeletePatrol, nil},
		{"officer cannot delete", Actor{ID: assigned, Role: dbm.RoleOfficer}, OpDeletePatrol, utils.ErrNotAuthorized},
		{"assigned officer starts", Actor{ID: assigned, Role: dbm.RoleOfficer}, OpStartPatrol, nil},
		{"unassigned officer cannot start", Actor{ID: stranger, Role: dbm.RoleOfficer}, OpStartPatrol, utils.ErrNotAssigned},
		{"unassigned admin cannot start", Actor{ID: stranger, Role: dbm.RoleAdmin}, OpStartPatrol, utils.ErrNotAssigned},
		{"assigned officer completes", Actor{ID: assigned, Role: dbm.RoleOfficer}, OpCompletePatrol, nil},
		{"unassigned cannot complete", Actor{ID: stranger, Role: dbm.RoleManager}, OpCompletePatrol, utils.ErrNotAssigned},
		{"assigned officer completes checkpoint", Actor{ID: assigned, Role: dbm.RoleOfficer}, OpCompleteCheckpoint, nil},
		{"unassigned cannot log", Actor{ID: stranger, Role: dbm.RoleOfficer}, OpAppendLog, utils.ErrNotAssigned},
		{"unknown operation denied", Actor{ID: assigned, Role: dbm.RoleAdmin}, Operation("bogus"), utils.ErrNotAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.op, patrol)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestAuthorizeCreateWithNilPatrol(t *testing.T) {
	assert.NoError(t, Authorize(Actor{ID: uuid.New(), Role: dbm.RoleAdmin}, OpCreatePatrol, nil))
	assert.ErrorIs(t, Authorize(Actor{ID: uuid.New(), Role: dbm.RoleOfficer}, OpCreatePatrol, nil), utils.ErrNotAuthorized)
}
