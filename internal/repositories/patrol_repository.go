package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "patrolms/internal/models/db_models"
	"patrolms/pkg/utils"
)

type PatrolFilter struct {
	Status    dbm.PatrolStatus
	StartDate *time.Time
	EndDate   *time.Time
	Sort      string // "startTime", "-startTime", "createdAt", "-createdAt"
	Page      int
	Limit     int
}

// OfficerStatusChange flips one officer's duty status alongside a patrol
// transition.
type OfficerStatusChange struct {
	OfficerID uuid.UUID
	Status    dbm.DutyStatus
}

// StateChange is one atomic unit of patrol mutation: the aggregate write,
// at most one checkpoint update, an optional sweep of still-pending
// checkpoints, exactly one log append, and an optional duty flip. Either
// all of it lands or none of it does.
type StateChange struct {
	Patrol          *dbm.Patrol
	ExpectedVersion int64
	Checkpoint      *dbm.Checkpoint
	SweepToMissed   bool
	Log             *dbm.PatrolLog
	OfficerStatus   *OfficerStatusChange
}

type PatrolRepository interface {
	Create(ctx context.Context, patrol *dbm.Patrol) error
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Patrol, error)
	List(ctx context.Context, filter PatrolFilter) ([]dbm.Patrol, int64, error)
	Replace(ctx context.Context, patrol *dbm.Patrol, expectedVersion int64) error
	Delete(ctx context.Context, id uuid.UUID) error
	ApplyStateChange(ctx context.Context, change StateChange) error
}

type patrolRepository struct {
	db *gorm.DB
}

func NewPatrolRepository(db *gorm.DB) PatrolRepository {
	return &patrolRepository{db: db}
}

func (r *patrolRepository) Create(ctx context.Context, patrol *dbm.Patrol) error {
	return r.db.WithContext(ctx).Create(patrol).Error
}

func (r *patrolRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Patrol, error) {
	var patrol dbm.Patrol
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("Officers", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Officers.Officer").
		Preload("Route", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Route.Location").
		Preload("Checkpoints", func(db *gorm.DB) *gorm.DB { return db.Order("required_time ASC") }).
		Preload("Checkpoints.Location").
		First(&patrol, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patrol, nil
}

func (r *patrolRepository) List(ctx context.Context, filter PatrolFilter) ([]dbm.Patrol, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Patrol{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		q = q.Where("start_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("start_time <= ?", *filter.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "startTime":
		q = q.Order("start_time ASC")
	case "-startTime":
		q = q.Order("start_time DESC")
	case "createdAt":
		q = q.Order("created_at ASC")
	default:
		q = q.Order("created_at DESC")
	}

	var patrols []dbm.Patrol
	err := q.
		Preload("CreatedBy").
		Preload("Officers", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Officers.Officer").
		Preload("Route", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Route.Location").
		Preload("Checkpoints", func(db *gorm.DB) *gorm.DB { return db.Order("required_time ASC") }).
		Preload("Checkpoints.Location").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&patrols).Error
	if err != nil {
		return nil, 0, err
	}
	return patrols, total, nil
}

// Replace rewrites the whole document: scalar fields plus roster, route and
// checkpoint children. Guarded by a version compare-and-swap so a
// concurrent lifecycle transition cannot be silently overwritten.
func (r *patrolRepository) Replace(ctx context.Context, patrol *dbm.Patrol, expectedVersion int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&dbm.Patrol{}).
			Where("id = ? AND version = ?", patrol.ID, expectedVersion).
			Updates(map[string]interface{}{
				"title":      patrol.Title,
				"start_time": patrol.StartTime,
				"end_time":   patrol.EndTime,
				"notes":      patrol.Notes,
				"priority":   patrol.Priority,
				"recurrence": patrol.Recurrence,
				"version":    expectedVersion + 1,
				"updated_at": time.Now().Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrVersionConflict
		}

		for _, model := range []interface{}{&dbm.PatrolOfficer{}, &dbm.RouteStop{}, &dbm.Checkpoint{}} {
			if err := tx.Unscoped().Where("patrol_id = ?", patrol.ID).Delete(model).Error; err != nil {
				return err
			}
		}

		if len(patrol.Officers) > 0 {
			if err := tx.Create(&patrol.Officers).Error; err != nil {
				return err
			}
		}
		if len(patrol.Route) > 0 {
			if err := tx.Create(&patrol.Route).Error; err != nil {
				return err
			}
		}
		if len(patrol.Checkpoints) > 0 {
			if err := tx.Create(&patrol.Checkpoints).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *patrolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&dbm.PatrolOfficer{}, &dbm.RouteStop{}, &dbm.Checkpoint{}} {
			if err := tx.Where("patrol_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&dbm.Patrol{}, "id = ?", id).Error
	})
}

func (r *patrolRepository) ApplyStateChange(ctx context.Context, change StateChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		res := tx.Model(&dbm.Patrol{}).
			Where("id = ? AND version = ?", change.Patrol.ID, change.ExpectedVersion).
			Updates(map[string]interface{}{
				"status":     change.Patrol.Status,
				"end_time":   change.Patrol.EndTime,
				"notes":      change.Patrol.Notes,
				"version":    change.ExpectedVersion + 1,
				"updated_at": now.Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrVersionConflict
		}

		if cp := change.Checkpoint; cp != nil {
			if err := tx.Model(&dbm.Checkpoint{}).
				Where("id = ? AND patrol_id = ?", cp.ID, change.Patrol.ID).
				Updates(map[string]interface{}{
					"status":      cp.Status,
					"actual_time": cp.ActualTime,
					"notes":       cp.Notes,
					"updated_at":  now.Unix(),
				}).Error; err != nil {
				return err
			}
		}

		if change.SweepToMissed {
			if err := tx.Model(&dbm.Checkpoint{}).
				Where("patrol_id = ? AND status = ?", change.Patrol.ID, dbm.CheckpointPending).
				Updates(map[string]interface{}{
					"status":     dbm.CheckpointMissed,
					"updated_at": now.Unix(),
				}).Error; err != nil {
				return err
			}
		}

		if change.Log != nil {
			change.Log.Timestamp = now
			if err := tx.Create(change.Log).Error; err != nil {
				return err
			}
		}

		if os := change.OfficerStatus; os != nil {
			if err := tx.Model(&dbm.User{}).
				Where("id = ?", os.OfficerID).
				Updates(map[string]interface{}{
					"status":     os.Status,
					"updated_at": now.Unix(),
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
