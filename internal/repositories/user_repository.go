package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dbm "patrolms/internal/models/db_models"
	"patrolms/pkg/utils"
)

type UserRepository interface {
	Insert(ctx context.Context, user *dbm.User) error
	FindByEmail(ctx context.Context, email string) (*dbm.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.User, error)
	List(ctx context.Context, role dbm.UserRole) ([]dbm.User, error)
	CountExisting(ctx context.Context, ids []uuid.UUID) (int64, error)
	Update(ctx context.Context, user *dbm.User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status dbm.DutyStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *dbm.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, role dbm.UserRole) ([]dbm.User, error) {
	q := r.db.WithContext(ctx).Model(&dbm.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var users []dbm.User
	err := q.Order("name ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) CountExisting(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("id IN ?", ids).
		Count(&n).Error
	return n, err
}

func (r *userRepository) Update(ctx context.Context, user *dbm.User) error {
	return r.db.WithContext(ctx).Model(user).
		Updates(map[string]interface{}{
			"name":         user.Name,
			"email":        user.Email,
			"badge_number": user.BadgeNumber,
			"role":         user.Role,
			"updated_at":   time.Now().Unix(),
		}).Error
}

func (r *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status dbm.DutyStatus) error {
	return r.db.WithContext(ctx).Model(&dbm.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().Unix(),
		}).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.User{}, "id = ?", id).Error
}
