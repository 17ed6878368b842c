package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "patrolms/internal/models/db_models"
	"patrolms/internal/models/request_models"
	"patrolms/pkg/utils"
)

func newUserService(s *fakeStore) UserServiceInterface {
	return NewUserService(&fakeUserRepo{s})
}

func TestRegisterAndLogin(t *testing.T) {
	s := newFakeStore()
	svc := newUserService(s)
	ctx := context.Background()

	out, err := svc.Register(ctx, request_models.RegisterRequest{
		Name:     "Dana Cole",
		Email:    "dana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, string(dbm.RoleOfficer), out.Role)
	assert.Equal(t, string(dbm.DutyAvailable), out.Status)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, request_models.RegisterRequest{
			Name:     "Dana Again",
			Email:    "dana@example.com",
			Password: "hunter22",
		})
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	})

	t.Run("login", func(t *testing.T) {
		resp, err := svc.Login(ctx, request_models.LoginRequest{Email: "dana@example.com", Password: "hunter22"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, out.ID, resp.User.ID)

		claims, err := utils.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, out.ID, claims.UserID)
		assert.Equal(t, string(dbm.RoleOfficer), claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, request_models.LoginRequest{Email: "dana@example.com", Password: "wrong-pass"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}

func TestUpdateUser(t *testing.T) {
	s := newFakeStore()
	svc := newUserService(s)
	ctx := context.Background()

	officer := s.addUser(dbm.RoleOfficer)
	admin := s.addUser(dbm.RoleAdmin)
	other := s.addUser(dbm.RoleOfficer)

	req := request_models.UpdateUserRequest{Name: "New Name", Email: "new@example.com", BadgeNumber: "B-112"}

	t.Run("self edit", func(t *testing.T) {
		out, err := svc.Update(ctx, officer.String(), req, Actor{ID: officer, Role: dbm.RoleOfficer})
		require.NoError(t, err)
		assert.Equal(t, "New Name", out.Name)
		assert.Equal(t, "B-112", out.BadgeNumber)
	})

	t.Run("self role escalation denied", func(t *testing.T) {
		esc := req
		esc.Role = string(dbm.RoleAdmin)
		_, err := svc.Update(ctx, officer.String(), esc, Actor{ID: officer, Role: dbm.RoleOfficer})
		assert.ErrorIs(t, err, utils.ErrNotAuthorized)
	})

	t.Run("admin promotes", func(t *testing.T) {
		promote := req
		promote.Role = string(dbm.RoleManager)
		out, err := svc.Update(ctx, officer.String(), promote, Actor{ID: admin, Role: dbm.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, string(dbm.RoleManager), out.Role)
	})

	t.Run("editing someone else denied", func(t *testing.T) {
		_, err := svc.Update(ctx, officer.String(), req, Actor{ID: other, Role: dbm.RoleOfficer})
		assert.ErrorIs(t, err, utils.ErrNotAuthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.NewString(), req, Actor{ID: admin, Role: dbm.RoleAdmin})
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})
}

func TestUpdateUserStatus(t *testing.T) {
	s := newFakeStore()
	svc := newUserService(s)
	ctx := context.Background()

	officer := s.addUser(dbm.RoleOfficer)
	manager := s.addUser(dbm.RoleManager)
	other := s.addUser(dbm.RoleOfficer)

	require.NoError(t, svc.UpdateStatus(ctx, officer.String(), string(dbm.DutyOffDuty), Actor{ID: officer, Role: dbm.RoleOfficer}))
	assert.Equal(t, dbm.DutyOffDuty, s.users[officer].Status)

	require.NoError(t, svc.UpdateStatus(ctx, officer.String(), string(dbm.DutyAvailable), Actor{ID: manager, Role: dbm.RoleManager}))
	assert.Equal(t, dbm.DutyAvailable, s.users[officer].Status)

	err := svc.UpdateStatus(ctx, officer.String(), string(dbm.DutyOffDuty), Actor{ID: other, Role: dbm.RoleOfficer})
	assert.ErrorIs(t, err, utils.ErrNotAuthorized)
}

func TestListUsersAndOfficers(t *testing.T) {
	s := newFakeStore()
	svc := newUserService(s)
	ctx := context.Background()

	s.addUser(dbm.RoleAdmin)
	s.addUser(dbm.RoleOfficer)
	s.addUser(dbm.RoleOfficer)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	officers, err := svc.ListOfficers(ctx)
	require.NoError(t, err)
	assert.Len(t, officers, 2)
	for _, u := range officers {
		assert.Equal(t, string(dbm.RoleOfficer), u.Role)
	}
}

func TestDeleteUser(t *testing.T) {
	s := newFakeStore()
	svc := newUserService(s)
	ctx := context.Background()

	id := s.addUser(dbm.RoleOfficer)
	require.NoError(t, svc.Delete(ctx, id.String()))

	_, err := svc.Get(ctx, id.String())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
