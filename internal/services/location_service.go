package services

import (
	"context"

	"github.com/google/uuid"

	dbm "patrolms/internal/models/db_models"
	"patrolms/internal/models/request_models"
	"patrolms/internal/models/response_models"
	"patrolms/internal/repositories"
	"patrolms/pkg/utils"
)

type LocationServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateLocationRequest, actor Actor) (*dbm.Location, error)
	List(ctx context.Context, activeOnly bool) ([]response_models.LocationResponse, error)
	Get(ctx context.Context, locationID string) (*dbm.Location, error)
	Update(ctx context.Context, locationID string, req request_models.UpdateLocationRequest) (*dbm.Location, error)
	Delete(ctx context.Context, locationID string) error
}

type LocationService struct {
	locationRepo repositories.LocationRepository
}

func NewLocationService(locationRepo repositories.LocationRepository) LocationServiceInterface {
	return &LocationService{locationRepo: locationRepo}
}

func (s *LocationService) Create(ctx context.Context, req request_models.CreateLocationRequest, actor Actor) (*dbm.Location, error) {
	location := &dbm.Location{
		Name:           req.Name,
		Description:    req.Description,
		LocationType:   defaulted(req.LocationType, "checkpoint"),
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		GeofenceRadius: req.GeofenceRadius,
		SecurityLevel:  defaulted(req.SecurityLevel, "medium"),
		IsActive:       true,
		Notes:          req.Notes,
		CreatedByID:    actor.ID,
	}
	if location.GeofenceRadius == 0 {
		location.GeofenceRadius = 50
	}
	if err := s.locationRepo.Insert(ctx, location); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return location, nil
}

func (s *LocationService) List(ctx context.Context, activeOnly bool) ([]response_models.LocationResponse, error) {
	locations, err := s.locationRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.LocationResponse, 0, len(locations))
	for i := range locations {
		out = append(out, response_models.BuildLocationResponse(&locations[i]))
	}
	return out, nil
}

func (s *LocationService) Get(ctx context.Context, locationID string) (*dbm.Location, error) {
	return s.mustGet(ctx, locationID)
}

func (s *LocationService) Update(ctx context.Context, locationID string, req request_models.UpdateLocationRequest) (*dbm.Location, error) {
	location, err := s.mustGet(ctx, locationID)
	if err != nil {
		return nil, err
	}

	location.Name = req.Name
	location.Description = req.Description
	location.LocationType = defaulted(req.LocationType, location.LocationType)
	location.Latitude = *req.Latitude
	location.Longitude = *req.Longitude
	if req.GeofenceRadius > 0 {
		location.GeofenceRadius = req.GeofenceRadius
	}
	location.SecurityLevel = defaulted(req.SecurityLevel, location.SecurityLevel)
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	location.Notes = req.Notes

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return location, nil
}

func (s *LocationService) Delete(ctx context.Context, locationID string) error {
	location, err := s.mustGet(ctx, locationID)
	if err != nil {
		return err
	}
	if err := s.locationRepo.Delete(ctx, location.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LocationService) mustGet(ctx context.Context, locationID string) (*dbm.Location, error) {
	id, err := uuid.Parse(locationID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}
	return location, nil
}

func defaulted(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
