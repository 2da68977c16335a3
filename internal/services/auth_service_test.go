package services

import (
	"testing"

	"gameconnect_backend/internal/auth"
	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/services/dto"
	"gameconnect_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, _, _, _, _ := newRepos()
	svc := NewAuthService(userRepo, adminRepo, testConfig())

	user, err := svc.Register(db, &dto.RegisterRequest{
		Username: "fresh_player",
		Email:    "fresh@test.com",
		Password: "secret123",
		Name:     "Fresh Player",
		City:     "Mumbai",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh_player", user.Username)
	assert.NotEmpty(t, user.ID)

	// Дубликат username
	_, err = svc.Register(db, &dto.RegisterRequest{
		Username: "fresh_player",
		Email:    "other@test.com",
		Password: "secret123",
		Name:     "Other",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

	// Дубликат email
	_, err = svc.Register(db, &dto.RegisterRequest{
		Username: "other_player",
		Email:    "fresh@test.com",
		Password: "secret123",
		Name:     "Other",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// Слабый пароль
	_, err = svc.Register(db, &dto.RegisterRequest{
		Username: "weak_player",
		Email:    "weak@test.com",
		Password: "123",
		Name:     "Weak",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_LoginRoles(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, _, _, _, _ := newRepos()
	svc := NewAuthService(userRepo, adminRepo, testConfig())

	seedUser(t, db, "plain_player", "playerpass", nil)
	seedUser(t, db, "the_owner", "ownerpass", func(u *models.User) { u.IsOwner = true })

	resp, err := svc.Login(db, &dto.LoginRequest{Username: "plain_player", Password: "playerpass"})
	require.NoError(t, err)
	assert.Equal(t, auth.RolePlayer, resp.Role)
	assert.NotEmpty(t, resp.AccessToken)

	resp, err = svc.Login(db, &dto.LoginRequest{Username: "the_owner", Password: "ownerpass"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleOwner, resp.Role)

	_, err = svc.Login(db, &dto.LoginRequest{Username: "plain_player", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(db, &dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_AdminApprovalGate(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, _, _, _, _ := newRepos()
	svc := NewAuthService(userRepo, adminRepo, testConfig())

	admin := seedAdmin(t, db, "pending_admin", "adminpass", false)

	_, err := svc.Login(db, &dto.LoginRequest{Username: "pending_admin", Password: "adminpass"})
	assert.ErrorIs(t, err, apperrors.ErrAdminNotApproved)

	require.NoError(t, adminRepo.SetApproved(db, admin.ID, true))

	resp, err := svc.Login(db, &dto.LoginRequest{Username: "pending_admin", Password: "adminpass"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, resp.Role)
}

func TestAuthService_DeactivatedUserLogin(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, _, _, _, _ := newRepos()
	svc := NewAuthService(userRepo, adminRepo, testConfig())

	user := seedUser(t, db, "sleepy_player", "sleepypass", nil)
	require.NoError(t, userRepo.SetActive(db, user.ID, false))

	_, err := svc.Login(db, &dto.LoginRequest{Username: "sleepy_player", Password: "sleepypass"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDeactivated)
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, _, _, _, _ := newRepos()
	svc := NewAuthService(userRepo, adminRepo, testConfig())

	user := seedUser(t, db, "rotating_player", "oldpassword", nil)
	identity := auth.Identity{SubjectID: user.ID, Kind: auth.KindUser, Role: auth.RolePlayer}

	// Новый пароль и подтверждение не совпадают
	err := svc.ChangePassword(db, identity, &dto.ChangePasswordRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
		ConfirmPassword: "different",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	// Неверный текущий пароль
	err = svc.ChangePassword(db, identity, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
		ConfirmPassword: "newpassword",
	})
	assert.ErrorIs(t, err, apperrors.ErrWrongCurrentPassword)

	require.NoError(t, svc.ChangePassword(db, identity, &dto.ChangePasswordRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
		ConfirmPassword: "newpassword",
	}))

	_, err = svc.Login(db, &dto.LoginRequest{Username: "rotating_player", Password: "oldpassword"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(db, &dto.LoginRequest{Username: "rotating_player", Password: "newpassword"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}
