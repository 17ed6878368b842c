package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "patrolms/internal/models/db_models"
)

type DashboardRepository interface {
	CountPatrolsByStatus(ctx context.Context, status dbm.PatrolStatus) (int64, error)
	CountOfficersOnDuty(ctx context.Context) (int64, error)
	CountPatrolsStartingOn(ctx context.Context, dayStart time.Time) (int64, error)
	CountLocations(ctx context.Context) (int64, error)
	RecentPatrols(ctx context.Context, limit int) ([]dbm.Patrol, error)
	ActivePatrols(ctx context.Context) ([]dbm.Patrol, error)
	Officers(ctx context.Context, limit int) ([]dbm.User, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountPatrolsByStatus(ctx context.Context, status dbm.PatrolStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Patrol{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountOfficersOnDuty(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("role = ? AND status = ?", dbm.RoleOfficer, dbm.DutyOnDuty).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPatrolsStartingOn(ctx context.Context, dayStart time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Patrol{}).
		Where("start_time >= ? AND start_time < ?", dayStart, dayStart.Add(24*time.Hour)).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountLocations(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Location{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) RecentPatrols(ctx context.Context, limit int) ([]dbm.Patrol, error) {
	var patrols []dbm.Patrol
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("Officers.Officer").
		Preload("Route.Location").
		Preload("Checkpoints.Location").
		Order("start_time DESC").
		Limit(limit).
		Find(&patrols).Error
	return patrols, err
}

func (r *dashboardRepository) ActivePatrols(ctx context.Context) ([]dbm.Patrol, error) {
	var patrols []dbm.Patrol
	err := r.db.WithContext(ctx).
		Where("status = ?", dbm.PatrolInProgress).
		Preload("CreatedBy").
		Preload("Officers.Officer").
		Preload("Route.Location").
		Preload("Checkpoints.Location").
		Order("start_time DESC").
		Find(&patrols).Error
	return patrols, err
}

func (r *dashboardRepository) Officers(ctx context.Context, limit int) ([]dbm.User, error) {
	var users []dbm.User
	err := r.db.WithContext(ctx).
		Where("role = ?", dbm.RoleOfficer).
		Order("name ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
