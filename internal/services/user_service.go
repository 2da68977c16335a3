package services

import (
	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/repositories"
	"gameconnect_backend/internal/services/dto"
	"gameconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService - операции над собственным профилем игрока
type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type UserServiceImpl struct {
	userRepo   repositories.UserRepository
	followRepo repositories.FollowRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetProfile возвращает собственный профиль со счетчиками графа
func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildProfile(db, user)
}

// UpdateProfile применяет частичное обновление: меняются только
// переданные поля, остальные сохраняют прежние значения
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.Area != nil {
		user.Area = *req.Area
	}
	if req.CricketRole != nil {
		user.CricketRole = models.CricketRole(*req.CricketRole)
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Gender != nil {
		user.Gender = models.Gender(*req.Gender)
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildProfile(db, user)
}

func (s *UserServiceImpl) buildProfile(db *gorm.DB, user *models.User) (*dto.ProfileResponse, error) {
	followers, err := s.followRepo.CountFollowers(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	following, err := s.followRepo.CountFollowing(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Name:           user.Name,
		Age:            user.Age,
		State:          user.State,
		City:           user.City,
		Area:           user.Area,
		CricketRole:    user.CricketRole,
		Availability:   user.Availability,
		Phone:          user.Phone,
		Gender:         user.Gender,
		IsOwner:        user.IsOwner,
		FollowersCount: followers,
		FollowingCount: following,
		CreatedAt:      user.CreatedAt,
	}, nil
}
