package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "patrolms/internal/models/db_models"
)

type LocationRepository interface {
	Insert(ctx context.Context, location *dbm.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Location, error)
	List(ctx context.Context, activeOnly bool) ([]dbm.Location, error)
	CountExisting(ctx context.Context, ids []uuid.UUID) (int64, error)
	Update(ctx context.Context, location *dbm.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Insert(ctx context.Context, location *dbm.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Location, error) {
	var location dbm.Location
	err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context, activeOnly bool) ([]dbm.Location, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Location{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var locations []dbm.Location
	err := q.Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *locationRepository) CountExisting(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Location{}).
		Where("id IN ?", ids).
		Count(&n).Error
	return n, err
}

func (r *locationRepository) Update(ctx context.Context, location *dbm.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.Location{}, "id = ?", id).Error
}
