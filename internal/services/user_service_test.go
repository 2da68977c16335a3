package services

import (
	"testing"

	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	db := newTestDB(t)
	userRepo, _, followRepo, _, _, _ := newRepos()
	svc := NewUserService(userRepo, followRepo)

	user := seedUser(t, db, "profile_user", "password1", func(u *models.User) {
		u.City = "Vadodara"
		u.CricketRole = models.CricketRoleBowler
	})
	fan := seedUser(t, db, "profile_fan", "password1", nil)
	require.NoError(t, followRepo.Insert(db, fan.ID, user.ID))

	profile, err := svc.GetProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "profile_user", profile.Username)
	assert.Equal(t, "Vadodara", profile.City)
	assert.Equal(t, int64(1), profile.FollowersCount)
	assert.Equal(t, int64(0), profile.FollowingCount)
}

func TestUserService_UpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	userRepo, _, followRepo, _, _, _ := newRepos()
	svc := NewUserService(userRepo, followRepo)

	user := seedUser(t, db, "update_user", "password1", func(u *models.User) {
		u.City = "Ranchi"
		u.Availability = "weekdays"
	})

	newAvailability := "weekends"
	newRole := "all-rounder"
	profile, err := svc.UpdateProfile(db, user.ID, &dto.UpdateProfileRequest{
		Availability: &newAvailability,
		CricketRole:  &newRole,
	})
	require.NoError(t, err)
	assert.Equal(t, "weekends", profile.Availability)
	assert.Equal(t, models.CricketRoleAllRounder, profile.CricketRole)
	// Непереданные поля сохраняют значения
	assert.Equal(t, "Ranchi", profile.City)
}
