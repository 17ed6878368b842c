package services

import (
	"context"

	"github.com/google/uuid"

	dbm "patrolms/internal/models/db_models"
	"patrolms/internal/models/request_models"
	"patrolms/internal/models/response_models"
	"patrolms/internal/repositories"
	"patrolms/pkg/geo"
	"patrolms/pkg/utils"
)

type PatrolLogServiceInterface interface {
	Append(ctx context.Context, patrolID string, actor Actor, req request_models.CreateLogRequest) (*response_models.LogResponse, error)
	ListForPatrol(ctx context.Context, patrolID string) ([]response_models.LogResponse, error)
	ListForOfficer(ctx context.Context, officerID string, actor Actor) ([]response_models.LogResponse, error)
	Get(ctx context.Context, logID string, actor Actor) (*response_models.LogResponse, error)
}

type PatrolLogService struct {
	logRepo     repositories.PatrolLogRepository
	patrolRepo  repositories.PatrolRepository
	userRepo    repositories.UserRepository
	geoProvider geo.Provider
}

func NewPatrolLogService(
	logRepo repositories.PatrolLogRepository,
	patrolRepo repositories.PatrolRepository,
	userRepo repositories.UserRepository,
	geoProvider geo.Provider,
) PatrolLogServiceInterface {
	return &PatrolLogService{
		logRepo:     logRepo,
		patrolRepo:  patrolRepo,
		userRepo:    userRepo,
		geoProvider: geoProvider,
	}
}

func (s *PatrolLogService) Append(ctx context.Context, patrolID string, actor Actor, req request_models.CreateLogRequest) (*response_models.LogResponse, error) {
	pid, err := uuid.Parse(patrolID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	if !dbm.ValidLogAction(req.Action) {
		return nil, utils.ErrValidation
	}
	locID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	patrol, err := s.patrolRepo.GetByID(ctx, pid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if patrol == nil {
		return nil, utils.ErrPatrolNotFound
	}
	if err := Authorize(actor, OpAppendLog, patrol); err != nil {
		return nil, err
	}
	if patrol.Status != dbm.PatrolInProgress {
		return nil, utils.ErrInvalidState
	}

	entry := &dbm.PatrolLog{
		PatrolID:    patrol.ID,
		OfficerID:   actor.ID,
		LocationID:  locID,
		Action:      dbm.LogAction(req.Action),
		Description: req.Description,
	}
	if c := geo.Resolve(ctx, req.Coordinates, s.geoProvider, coordinateTimeout); c != nil {
		entry.Latitude = &c.Latitude
		entry.Longitude = &c.Longitude
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// A manual check-in marks the officer active on site.
	if entry.Action == dbm.ActionCheckIn {
		if err := s.userRepo.UpdateStatus(ctx, actor.ID, dbm.DutyActive); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	created, err := s.logRepo.GetByID(ctx, entry.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}
	out := response_models.BuildLogResponse(created)
	return &out, nil
}

func (s *PatrolLogService) ListForPatrol(ctx context.Context, patrolID string) ([]response_models.LogResponse, error) {
	pid, err := uuid.Parse(patrolID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	logs, err := s.logRepo.ListForPatrol(ctx, pid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildLogResponses(logs), nil
}

func (s *PatrolLogService) ListForOfficer(ctx context.Context, officerID string, actor Actor) ([]response_models.LogResponse, error) {
	oid, err := uuid.Parse(officerID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	if actor.ID != oid && actor.Role != dbm.RoleAdmin && actor.Role != dbm.RoleManager {
		return nil, utils.ErrNotAuthorized
	}

	officer, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if officer == nil {
		return nil, utils.ErrUserNotFound
	}

	logs, err := s.logRepo.ListForOfficer(ctx, oid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildLogResponses(logs), nil
}

func (s *PatrolLogService) Get(ctx context.Context, logID string, actor Actor) (*response_models.LogResponse, error) {
	id, err := uuid.Parse(logID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	entry, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrLogNotFound
	}
	if actor.Role != dbm.RoleAdmin && actor.Role != dbm.RoleManager && entry.OfficerID != actor.ID {
		return nil, utils.ErrNotAuthorized
	}
	out := response_models.BuildLogResponse(entry)
	return &out, nil
}
