package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	dbm "patrolms/internal/models/db_models"
	"patrolms/internal/models/request_models"
	"patrolms/internal/models/response_models"
	"patrolms/internal/repositories"
	"patrolms/pkg/utils"
)

type UserServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.UserResponse, error)
	List(ctx context.Context) ([]response_models.UserResponse, error)
	ListOfficers(ctx context.Context) ([]response_models.UserResponse, error)
	Get(ctx context.Context, userID string) (*response_models.UserResponse, error)
	Update(ctx context.Context, userID string, req request_models.UpdateUserRequest, actor Actor) (*response_models.UserResponse, error)
	UpdateStatus(ctx context.Context, userID string, status string, actor Actor) error
	Delete(ctx context.Context, userID string) error
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  response_models.BuildUserResponse(user),
	}, nil
}

func (s *UserService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	role := dbm.RoleOfficer
	if req.Role != "" {
		role = dbm.UserRole(req.Role)
	}

	user := &dbm.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		BadgeNumber:  req.BadgeNumber,
		Status:       dbm.DutyAvailable,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	out := response_models.BuildUserResponse(user)
	return &out, nil
}

func (s *UserService) List(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.userRepo.List(ctx, "")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildUserResponses(users), nil
}

func (s *UserService) ListOfficers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.userRepo.List(ctx, dbm.RoleOfficer)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildUserResponses(users), nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := s.mustGet(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := response_models.BuildUserResponse(user)
	return &out, nil
}

func (s *UserService) Update(ctx context.Context, userID string, req request_models.UpdateUserRequest, actor Actor) (*response_models.UserResponse, error) {
	user, err := s.mustGet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if actor.ID != user.ID && actor.Role != dbm.RoleAdmin {
		return nil, utils.ErrNotAuthorized
	}
	// Only an admin may change a role.
	if req.Role != "" && dbm.UserRole(req.Role) != user.Role && actor.Role != dbm.RoleAdmin {
		return nil, utils.ErrNotAuthorized
	}

	user.Name = req.Name
	user.Email = req.Email
	user.BadgeNumber = req.BadgeNumber
	if req.Role != "" {
		user.Role = dbm.UserRole(req.Role)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := response_models.BuildUserResponse(user)
	return &out, nil
}

func (s *UserService) UpdateStatus(ctx context.Context, userID string, status string, actor Actor) error {
	user, err := s.mustGet(ctx, userID)
	if err != nil {
		return err
	}
	if actor.ID != user.ID && actor.Role != dbm.RoleAdmin && actor.Role != dbm.RoleManager {
		return utils.ErrNotAuthorized
	}
	if err := s.userRepo.UpdateStatus(ctx, user.ID, dbm.DutyStatus(status)); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	user, err := s.mustGet(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *UserService) mustGet(ctx context.Context, userID string) (*dbm.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func buildUserResponses(users []dbm.User) []response_models.UserResponse {
	out := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, response_models.BuildUserResponse(&users[i]))
	}
	return out
}
