package services

import (
	"testing"

	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/services/dto"
	"gameconnect_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_CreateAdmin(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, followRepo, profileViewRepo, listingRepo, historyRepo := newRepos()
	svc := NewAdminService(adminRepo, userRepo, followRepo, profileViewRepo, listingRepo, historyRepo)

	admin, err := svc.CreateAdmin(db, &dto.CreateAdminRequest{
		Username: "content_admin",
		Email:    "content@test.com",
		Password: "adminpass",
		Name:     "Content Admin",
	})
	require.NoError(t, err)
	// Созданный владельцем админ одобрен сразу
	assert.True(t, admin.IsApproved)

	_, err = svc.CreateAdmin(db, &dto.CreateAdminRequest{
		Username: "content_admin",
		Email:    "other@test.com",
		Password: "adminpass",
		Name:     "Dup",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestAdminService_ApproveAdmin(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, followRepo, profileViewRepo, listingRepo, historyRepo := newRepos()
	svc := NewAdminService(adminRepo, userRepo, followRepo, profileViewRepo, listingRepo, historyRepo)

	pending := seedAdmin(t, db, "approve_me", "adminpass", false)

	approved, err := svc.ApproveAdmin(db, pending.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	_, err = svc.ApproveAdmin(db, "no-such-admin")
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
}

func TestAdminService_ToggleUserActive(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, followRepo, profileViewRepo, listingRepo, historyRepo := newRepos()
	svc := NewAdminService(adminRepo, userRepo, followRepo, profileViewRepo, listingRepo, historyRepo)

	user := seedUser(t, db, "toggle_me", "password1", nil)
	owner := seedUser(t, db, "the_boss", "password1", func(u *models.User) { u.IsOwner = true })

	row, err := svc.ToggleUserActive(db, user.ID)
	require.NoError(t, err)
	assert.False(t, row.IsActive)

	row, err = svc.ToggleUserActive(db, user.ID)
	require.NoError(t, err)
	assert.True(t, row.IsActive)

	// Владельца отключить нельзя
	_, err = svc.ToggleUserActive(db, owner.ID)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestAdminService_ListUsers(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, followRepo, profileViewRepo, listingRepo, historyRepo := newRepos()
	svc := NewAdminService(adminRepo, userRepo, followRepo, profileViewRepo, listingRepo, historyRepo)

	seedUser(t, db, "list_batsman", "password1", func(u *models.User) {
		u.CricketRole = models.CricketRoleBatsman
		u.Gender = models.GenderFemale
	})
	seedUser(t, db, "list_bowler", "password1", func(u *models.User) {
		u.CricketRole = models.CricketRoleBowler
		u.Gender = models.GenderMale
	})

	resp, err := svc.ListUsers(db, &dto.ListUsersRequest{Role: "batsman"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "list_batsman", resp.Users[0].Username)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	resp, err = svc.ListUsers(db, &dto.ListUsersRequest{Gender: "male"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "list_bowler", resp.Users[0].Username)

	// Поиск по подстроке username
	resp, err = svc.ListUsers(db, &dto.ListUsersRequest{Search: "list_"})
	require.NoError(t, err)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, 20, resp.Pagination.PerPage)
}

func TestAdminService_UserDetailCounts(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, followRepo, profileViewRepo, listingRepo, historyRepo := newRepos()
	svc := NewAdminService(adminRepo, userRepo, followRepo, profileViewRepo, listingRepo, historyRepo)

	viewer := seedUser(t, db, "detail_viewer", "password1", nil)
	target := seedUser(t, db, "detail_target", "password1", nil)

	require.NoError(t, followRepo.Insert(db, viewer.ID, target.ID))
	require.NoError(t, profileViewRepo.Grant(db, viewer.ID, target.ID))
	require.NoError(t, historyRepo.Create(db, &models.SearchHistory{UserID: viewer.ID, ResultCount: 1}))

	detail, err := svc.GetUserDetail(db, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.FollowingCount)
	assert.Equal(t, int64(0), detail.FollowersCount)
	assert.Equal(t, int64(1), detail.ProfilesViewed)
	assert.Equal(t, int64(1), detail.SearchesMade)

	_, err = svc.GetUserDetail(db, "no-such-user")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAdminService_OwnerDashboard(t *testing.T) {
	db := newTestDB(t)
	userRepo, adminRepo, followRepo, profileViewRepo, listingRepo, historyRepo := newRepos()
	svc := NewAdminService(adminRepo, userRepo, followRepo, profileViewRepo, listingRepo, historyRepo)

	seedUser(t, db, "dash_user", "password1", nil)
	seedAdmin(t, db, "dash_pending", "adminpass", false)
	require.NoError(t, db.Create(&models.CoachingAd{Title: "Dash ad", CreatedBy: "x"}).Error)

	dashboard, err := svc.OwnerDashboard(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dashboard.TotalUsers)
	assert.Equal(t, int64(1), dashboard.PendingAdmins)
	assert.Equal(t, int64(1), dashboard.CoachingAds)
	assert.Len(t, dashboard.Admins, 1)
}
