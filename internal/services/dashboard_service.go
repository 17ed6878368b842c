package services

import (
	"context"
	"time"

	dbm "patrolms/internal/models/db_models"
	"patrolms/internal/models/response_models"
	"patrolms/internal/repositories"
	"patrolms/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildStats(ctx context.Context) (*response_models.DashboardStats, error)
	ActivePatrols(ctx context.Context) ([]response_models.PatrolResponse, error)
}

type DashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{repo: repo}
}

// BuildStats is a point-in-time snapshot over persisted state. The reads
// are independent queries, so a concurrent write may land between them;
// that is acceptable for a dashboard.
func (s *DashboardService) BuildStats(ctx context.Context) (*response_models.DashboardStats, error) {
	activePatrols, err := s.repo.CountPatrolsByStatus(ctx, dbm.PatrolInProgress)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	officersOnDuty, err := s.repo.CountOfficersOnDuty(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	patrolsToday, err := s.repo.CountPatrolsStartingOn(ctx, utils.StartOfDay(time.Now()))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalLocations, err := s.repo.CountLocations(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	recent, err := s.repo.RecentPatrols(ctx, 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	officers, err := s.repo.Officers(ctx, 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := &response_models.DashboardStats{
		ActivePatrols:  activePatrols,
		OfficersOnDuty: officersOnDuty,
		PatrolsToday:   patrolsToday,
		TotalLocations: totalLocations,
	}
	stats.RecentPatrols = make([]response_models.PatrolResponse, 0, len(recent))
	for i := range recent {
		stats.RecentPatrols = append(stats.RecentPatrols, response_models.BuildPatrolResponse(&recent[i]))
	}
	stats.Officers = make([]response_models.UserResponse, 0, len(officers))
	for i := range officers {
		stats.Officers = append(stats.Officers, response_models.BuildUserResponse(&officers[i]))
	}
	return stats, nil
}

func (s *DashboardService) ActivePatrols(ctx context.Context) ([]response_models.PatrolResponse, error) {
	patrols, err := s.repo.ActivePatrols(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.PatrolResponse, 0, len(patrols))
	for i := range patrols {
		out = append(out, response_models.BuildPatrolResponse(&patrols[i]))
	}
	return out, nil
}
