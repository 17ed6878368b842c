package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	dbm "patrolms/internal/models/db_models"
	"patrolms/internal/models/request_models"
	"patrolms/internal/models/response_models"
	"patrolms/internal/repositories"
	"patrolms/pkg/geo"
	"patrolms/pkg/utils"
)

const coordinateTimeout = 2 * time.Second

type PatrolServiceInterface interface {
	Create(ctx context.Context, req request_models.CreatePatrolRequest, actor Actor) (*response_models.PatrolResponse, error)
	List(ctx context.Context, q request_models.ListPatrolsQuery) (*response_models.PagedPatrols, error)
	Get(ctx context.Context, patrolID string) (*response_models.PatrolDetailResponse, error)
	Update(ctx context.Context, patrolID string, req request_models.UpdatePatrolRequest, actor Actor) (*response_models.PatrolResponse, error)
	Delete(ctx context.Context, patrolID string, actor Actor) error
	Start(ctx context.Context, patrolID string, actor Actor, coords *geo.Coordinates) (*response_models.PatrolResponse, error)
	Complete(ctx context.Context, patrolID string, actor Actor, notes string, coords *geo.Coordinates) (*response_models.PatrolResponse, error)
	Cancel(ctx context.Context, patrolID string, actor Actor) (*response_models.PatrolResponse, error)
	CompleteCheckpoint(ctx context.Context, patrolID, checkpointID string, actor Actor, notes string, coords *geo.Coordinates) (*response_models.PatrolResponse, error)
}

type PatrolService struct {
	patrolRepo   repositories.PatrolRepository
	logRepo      repositories.PatrolLogRepository
	userRepo     repositories.UserRepository
	locationRepo repositories.LocationRepository
	geoProvider  geo.Provider
}

func NewPatrolService(
	patrolRepo repositories.PatrolRepository,
	logRepo repositories.PatrolLogRepository,
	userRepo repositories.UserRepository,
	locationRepo repositories.LocationRepository,
	geoProvider geo.Provider,
) PatrolServiceInterface {
	return &PatrolService{
		patrolRepo:   patrolRepo,
		logRepo:      logRepo,
		userRepo:     userRepo,
		locationRepo: locationRepo,
		geoProvider:  geoProvider,
	}
}

func (s *PatrolService) Create(ctx context.Context, req request_models.CreatePatrolRequest, actor Actor) (*response_models.PatrolResponse, error) {
	if err := Authorize(actor, OpCreatePatrol, nil); err != nil {
		return nil, err
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, utils.ErrValidation
	}
	if req.StartTime.Before(time.Now()) {
		return nil, utils.ErrValidation
	}

	officerIDs, err := parseUUIDs(req.AssignedOfficers)
	if err != nil {
		return nil, utils.ErrValidation
	}
	routeIDs, err := parseUUIDs(req.Locations)
	if err != nil {
		return nil, utils.ErrValidation
	}

	if err := s.checkReferences(ctx, officerIDs, routeIDs, req.Checkpoints); err != nil {
		return nil, err
	}

	patrol := &dbm.Patrol{
		Title:       req.Title,
		CreatedByID: actor.ID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      dbm.PatrolScheduled,
		Notes:       req.Notes,
		Priority:    priorityOrDefault(req.Priority),
		Recurrence:  recurrenceOrDefault(req.Recurrence),
	}
	attachChildren(patrol, officerIDs, routeIDs, req.Checkpoints)

	if err := s.patrolRepo.Create(ctx, patrol); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.reload(ctx, patrol.ID)
}

func (s *PatrolService) List(ctx context.Context, q request_models.ListPatrolsQuery) (*response_models.PagedPatrols, error) {
	if q.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if q.Limit < 1 || q.Limit > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	filter := repositories.PatrolFilter{
		Sort:  q.Sort,
		Page:  q.Page,
		Limit: q.Limit,
	}
	if q.Status != "" {
		filter.Status = dbm.PatrolStatus(q.Status)
	}
	if q.StartDate != "" {
		t, err := parseDate(q.StartDate)
		if err != nil {
			return nil, utils.ErrValidation
		}
		filter.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := parseDate(q.EndDate)
		if err != nil {
			return nil, utils.ErrValidation
		}
		filter.EndDate = &t
	}

	patrols, total, err := s.patrolRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.PatrolResponse, 0, len(patrols))
	for i := range patrols {
		items = append(items, response_models.BuildPatrolResponse(&patrols[i]))
	}

	return &response_models.PagedPatrols{
		Items:      items,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(q.Limit))),
		Page:       q.Page,
		Limit:      q.Limit,
	}, nil
}

func (s *PatrolService) Get(ctx context.Context, patrolID string) (*response_models.PatrolDetailResponse, error) {
	patrol, err := s.fetch(ctx, patrolID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.ListForPatrol(ctx, patrol.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PatrolDetailResponse{
		Patrol: response_models.BuildPatrolResponse(patrol),
		Logs:   response_models.BuildLogResponses(logs),
	}, nil
}

func (s *PatrolService) Update(ctx context.Context, patrolID string, req request_models.UpdatePatrolRequest, actor Actor) (*response_models.PatrolResponse, error) {
	patrol, err := s.fetch(ctx, patrolID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, OpUpdatePatrol, patrol); err != nil {
		return nil, err
	}
	if patrol.Status.Terminal() {
		return nil, utils.ErrInvalidState
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, utils.ErrValidation
	}
	officerIDs, err := parseUUIDs(req.AssignedOfficers)
	if err != nil {
		return nil, utils.ErrValidation
	}
	routeIDs, err := parseUUIDs(req.Locations)
	if err != nil {
		return nil, utils.ErrValidation
	}
	if err := s.checkReferences(ctx, officerIDs, routeIDs, req.Checkpoints); err != nil {
		return nil, err
	}

	patrol.Title = req.Title
	patrol.StartTime = req.StartTime
	patrol.EndTime = req.EndTime
	patrol.Notes = req.Notes
	patrol.Priority = priorityOrDefault(req.Priority)
	patrol.Recurrence = recurrenceOrDefault(req.Recurrence)
	patrol.Officers = nil
	patrol.Route = nil
	patrol.Checkpoints = nil
	attachChildren(patrol, officerIDs, routeIDs, req.Checkpoints)

	if err := s.patrolRepo.Replace(ctx, patrol, patrol.Version); err != nil {
		return nil, wrapRepoErr(err)
	}

	return s.reload(ctx, patrol.ID)
}

func (s *PatrolService) Delete(ctx context.Context, patrolID string, actor Actor) error {
	patrol, err := s.fetch(ctx, patrolID)
	if err != nil {
		return err
	}
	if err := Authorize(actor, OpDeletePatrol, patrol); err != nil {
		return err
	}
	if err := s.patrolRepo.Delete(ctx, patrol.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PatrolService) Start(ctx context.Context, patrolID string, actor Actor, coords *geo.Coordinates) (*response_models.PatrolResponse, error) {
	patrol, err := s.fetch(ctx, patrolID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, OpStartPatrol, patrol); err != nil {
		return nil, err
	}
	if !patrol.Status.CanTransitionTo(dbm.PatrolInProgress) {
		return nil, utils.ErrInvalidState
	}

	expected := patrol.Version
	patrol.Status = dbm.PatrolInProgress

	change := repositories.StateChange{
		Patrol:          patrol,
		ExpectedVersion: expected,
		Log:             s.buildLog(ctx, patrol, actor, patrol.FirstRouteLocation(), dbm.ActionCheckIn, "Patrol started", coords),
		OfficerStatus: &repositories.OfficerStatusChange{
			OfficerID: actor.ID,
			Status:    dbm.DutyOnDuty,
		},
	}
	if err := s.patrolRepo.ApplyStateChange(ctx, change); err != nil {
		return nil, wrapRepoErr(err)
	}

	return s.reload(ctx, patrol.ID)
}

func (s *PatrolService) Complete(ctx context.Context, patrolID string, actor Actor, notes string, coords *geo.Coordinates) (*response_models.PatrolResponse, error) {
	patrol, err := s.fetch(ctx, patrolID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, OpCompletePatrol, patrol); err != nil {
		return nil, err
	}
	if !patrol.Status.CanTransitionTo(dbm.PatrolCompleted) {
		return nil, utils.ErrInvalidState
	}

	expected := patrol.Version
	patrol.Status = dbm.PatrolCompleted
	patrol.EndTime = time.Now()

	description := notes
	if description == "" {
		description = "Patrol completed"
	}

	change := repositories.StateChange{
		Patrol:          patrol,
		ExpectedVersion: expected,
		SweepToMissed:   true,
		Log:             s.buildLog(ctx, patrol, actor, patrol.LastRouteLocation(), dbm.ActionCheckOut, description, coords),
		OfficerStatus: &repositories.OfficerStatusChange{
			OfficerID: actor.ID,
			Status:    dbm.DutyAvailable,
		},
	}
	if err := s.patrolRepo.ApplyStateChange(ctx, change); err != nil {
		return nil, wrapRepoErr(err)
	}

	return s.reload(ctx, patrol.ID)
}

func (s *PatrolService) Cancel(ctx context.Context, patrolID string, actor Actor) (*response_models.PatrolResponse, error) {
	patrol, err := s.fetch(ctx, patrolID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, OpCancelPatrol, patrol); err != nil {
		return nil, err
	}
	if !patrol.Status.CanTransitionTo(dbm.PatrolCancelled) {
		return nil, utils.ErrInvalidState
	}

	expected := patrol.Version
	patrol.Status = dbm.PatrolCancelled

	change := repositories.StateChange{
		Patrol:          patrol,
		ExpectedVersion: expected,
		Log:             s.buildLog(ctx, patrol, actor, patrol.FirstRouteLocation(), dbm.ActionNote, "Patrol cancelled", nil),
	}
	if err := s.patrolRepo.ApplyStateChange(ctx, change); err != nil {
		return nil, wrapRepoErr(err)
	}

	return s.reload(ctx, patrol.ID)
}

func (s *PatrolService) CompleteCheckpoint(ctx context.Context, patrolID, checkpointID string, actor Actor, notes string, coords *geo.Coordinates) (*response_models.PatrolResponse, error) {
	patrol, err := s.fetch(ctx, patrolID)
	if err != nil {
		return nil, err
	}
	cpID, err := uuid.Parse(checkpointID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	if err := Authorize(actor, OpCompleteCheckpoint, patrol); err != nil {
		return nil, err
	}
	if patrol.Status != dbm.PatrolInProgress {
		return nil, utils.ErrInvalidState
	}

	checkpoint := patrol.FindCheckpoint(cpID)
	if checkpoint == nil {
		return nil, utils.ErrCheckpointNotFound
	}
	// Re-completing a checkpoint is rejected rather than overwritten.
	if checkpoint.Status == dbm.CheckpointCompleted {
		return nil, utils.ErrInvalidState
	}

	now := time.Now()
	checkpoint.Status = dbm.CheckpointCompleted
	checkpoint.ActualTime = &now
	if notes != "" {
		checkpoint.Notes = notes
	}

	description := notes
	if description == "" {
		description = "Checkpoint completed"
	}

	change := repositories.StateChange{
		Patrol:          patrol,
		ExpectedVersion: patrol.Version,
		Checkpoint:      checkpoint,
		Log:             s.buildLog(ctx, patrol, actor, checkpoint.LocationID, dbm.ActionCheckIn, description, coords),
	}
	if err := s.patrolRepo.ApplyStateChange(ctx, change); err != nil {
		return nil, wrapRepoErr(err)
	}

	return s.reload(ctx, patrol.ID)
}

func (s *PatrolService) fetch(ctx context.Context, patrolID string) (*dbm.Patrol, error) {
	id, err := uuid.Parse(patrolID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	patrol, err := s.patrolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if patrol == nil {
		return nil, utils.ErrPatrolNotFound
	}
	return patrol, nil
}

func (s *PatrolService) reload(ctx context.Context, id uuid.UUID) (*response_models.PatrolResponse, error) {
	patrol, err := s.patrolRepo.GetByID(ctx, id)
	if err != nil || patrol == nil {
		return nil, utils.ErrDatabaseError
	}
	out := response_models.BuildPatrolResponse(patrol)
	return &out, nil
}

func (s *PatrolService) buildLog(ctx context.Context, patrol *dbm.Patrol, actor Actor, locationID uuid.UUID, action dbm.LogAction, description string, coords *geo.Coordinates) *dbm.PatrolLog {
	entry := &dbm.PatrolLog{
		PatrolID:    patrol.ID,
		OfficerID:   actor.ID,
		LocationID:  locationID,
		Action:      action,
		Description: description,
	}
	if c := geo.Resolve(ctx, coords, s.geoProvider, coordinateTimeout); c != nil {
		entry.Latitude = &c.Latitude
		entry.Longitude = &c.Longitude
	}
	return entry
}

// checkReferences verifies every officer and location id on the request
// resolves to a stored row.
func (s *PatrolService) checkReferences(ctx context.Context, officerIDs, routeIDs []uuid.UUID, checkpoints []request_models.CheckpointSpec) error {
	n, err := s.userRepo.CountExisting(ctx, officerIDs)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if n != int64(len(uniqueIDs(officerIDs))) {
		return utils.ErrUserNotFound
	}

	locIDs := append([]uuid.UUID{}, routeIDs...)
	for _, cp := range checkpoints {
		id, err := uuid.Parse(cp.LocationID)
		if err != nil {
			return utils.ErrValidation
		}
		locIDs = append(locIDs, id)
	}
	unique := uniqueIDs(locIDs)
	n, err = s.locationRepo.CountExisting(ctx, unique)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if n != int64(len(unique)) {
		return utils.ErrLocationNotFound
	}
	return nil
}

func attachChildren(patrol *dbm.Patrol, officerIDs, routeIDs []uuid.UUID, checkpoints []request_models.CheckpointSpec) {
	for i, id := range officerIDs {
		patrol.Officers = append(patrol.Officers, dbm.PatrolOfficer{
			PatrolID:  patrol.ID,
			OfficerID: id,
			Position:  i,
		})
	}
	for i, id := range routeIDs {
		patrol.Route = append(patrol.Route, dbm.RouteStop{
			PatrolID:   patrol.ID,
			LocationID: id,
			Position:   i,
		})
	}
	for _, cp := range checkpoints {
		locID, _ := uuid.Parse(cp.LocationID)
		patrol.Checkpoints = append(patrol.Checkpoints, dbm.Checkpoint{
			PatrolID:     patrol.ID,
			LocationID:   locID,
			RequiredTime: cp.RequiredTime,
			Status:       dbm.CheckpointPending,
			Notes:        cp.Notes,
		})
	}
}

func parseUUIDs(in []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func priorityOrDefault(s string) dbm.PatrolPriority {
	switch dbm.PatrolPriority(s) {
	case dbm.PriorityLow, dbm.PriorityMedium, dbm.PriorityHigh, dbm.PriorityUrgent:
		return dbm.PatrolPriority(s)
	}
	return dbm.PriorityMedium
}

func recurrenceOrDefault(s string) dbm.Recurrence {
	switch dbm.Recurrence(s) {
	case dbm.RecurrenceDaily, dbm.RecurrenceWeekly, dbm.RecurrenceBiWeekly, dbm.RecurrenceMonthly, dbm.RecurrenceNone:
		return dbm.Recurrence(s)
	}
	return dbm.RecurrenceNone
}

func wrapRepoErr(err error) error {
	if errors.Is(err, utils.ErrVersionConflict) {
		return err
	}
	return utils.ErrDatabaseError
}
