package services

import (
	"gameconnect_backend/internal/repositories"
	"gameconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// FollowService - социальный граф подписок
type FollowService interface {
	// Follow подписывает followerID на followedID.
	// Повторная подписка - успешный no-op, подписка на себя - ошибка.
	Follow(db *gorm.DB, followerID, followedID string) error

	// Unfollow снимает подписку. Отписка без подписки - успешный no-op.
	Unfollow(db *gorm.DB, followerID, followedID string) error

	IsFollowing(db *gorm.DB, followerID, followedID string) (bool, error)
}

type FollowServiceImpl struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
}

func NewFollowService(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *FollowServiceImpl) Follow(db *gorm.DB, followerID, followedID string) error {
	if followerID == followedID {
		return apperrors.ErrCannotFollowSelf
	}

	if _, err := s.userRepo.FindByID(db, followedID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.followRepo.Insert(db, followerID, followedID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FollowServiceImpl) Unfollow(db *gorm.DB, followerID, followedID string) error {
	if err := s.followRepo.Delete(db, followerID, followedID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FollowServiceImpl) IsFollowing(db *gorm.DB, followerID, followedID string) (bool, error) {
	following, err := s.followRepo.Exists(db, followerID, followedID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return following, nil
}
