package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "patrolms/internal/models/db_models"
)

// PatrolLogRepository is insert-and-read only. There is deliberately no
// update or delete; the ledger is append-only.
type PatrolLogRepository interface {
	Append(ctx context.Context, entry *dbm.PatrolLog) error
	ListForPatrol(ctx context.Context, patrolID uuid.UUID) ([]dbm.PatrolLog, error)
	ListForOfficer(ctx context.Context, officerID uuid.UUID) ([]dbm.PatrolLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.PatrolLog, error)
}

type patrolLogRepository struct {
	db *gorm.DB
}

func NewPatrolLogRepository(db *gorm.DB) PatrolLogRepository {
	return &patrolLogRepository{db: db}
}

func (r *patrolLogRepository) Append(ctx context.Context, entry *dbm.PatrolLog) error {
	entry.Timestamp = time.Now()
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *patrolLogRepository) ListForPatrol(ctx context.Context, patrolID uuid.UUID) ([]dbm.PatrolLog, error) {
	var logs []dbm.PatrolLog
	err := r.db.WithContext(ctx).
		Where("patrol_id = ?", patrolID).
		Preload("Officer").
		Preload("Location").
		Order("timestamp DESC").
		Find(&logs).Error
	return logs, err
}

func (r *patrolLogRepository) ListForOfficer(ctx context.Context, officerID uuid.UUID) ([]dbm.PatrolLog, error) {
	var logs []dbm.PatrolLog
	err := r.db.WithContext(ctx).
		Where("officer_id = ?", officerID).
		Preload("Officer").
		Preload("Location").
		Preload("Patrol").
		Order("timestamp DESC").
		Find(&logs).Error
	return logs, err
}

func (r *patrolLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.PatrolLog, error) {
	var entry dbm.PatrolLog
	err := r.db.WithContext(ctx).
		Preload("Officer").
		Preload("Location").
		Preload("Patrol").
		First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
