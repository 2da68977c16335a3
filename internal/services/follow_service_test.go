package services

import (
	"testing"

	"gameconnect_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_FollowIdempotent(t *testing.T) {
	db := newTestDB(t)
	userRepo, _, followRepo, _, _, _ := newRepos()
	svc := NewFollowService(followRepo, userRepo)

	alice := seedUser(t, db, "alice_f", "password1", nil)
	bob := seedUser(t, db, "bob_f", "password1", nil)

	require.NoError(t, svc.Follow(db, alice.ID, bob.ID))
	// Повторная подписка - no-op без ошибки
	require.NoError(t, svc.Follow(db, alice.ID, bob.ID))

	count, err := followRepo.CountFollowers(db, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	following, err := svc.IsFollowing(db, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowService_SelfFollow(t *testing.T) {
	db := newTestDB(t)
	userRepo, _, followRepo, _, _, _ := newRepos()
	svc := NewFollowService(followRepo, userRepo)

	alice := seedUser(t, db, "alice_self", "password1", nil)

	err := svc.Follow(db, alice.ID, alice.ID)
	assert.ErrorIs(t, err, apperrors.ErrCannotFollowSelf)
}

func TestFollowService_FollowMissingUser(t *testing.T) {
	db := newTestDB(t)
	userRepo, _, followRepo, _, _, _ := newRepos()
	svc := NewFollowService(followRepo, userRepo)

	alice := seedUser(t, db, "alice_missing", "password1", nil)

	err := svc.Follow(db, alice.ID, "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestFollowService_UnfollowRestoresCounts(t *testing.T) {
	db := newTestDB(t)
	userRepo, _, followRepo, _, _, _ := newRepos()
	svc := NewFollowService(followRepo, userRepo)

	alice := seedUser(t, db, "alice_u", "password1", nil)
	bob := seedUser(t, db, "bob_u", "password1", nil)

	require.NoError(t, svc.Follow(db, alice.ID, bob.ID))
	require.NoError(t, svc.Unfollow(db, alice.ID, bob.ID))

	count, err := followRepo.CountFollowers(db, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Отписка без подписки - тоже no-op
	require.NoError(t, svc.Unfollow(db, alice.ID, bob.ID))
}
