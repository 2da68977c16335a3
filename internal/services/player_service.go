package services

import (
	"encoding/json"

	"gameconnect_backend/internal/logger"
	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/repositories"
	"gameconnect_backend/internal/services/dto"
	"gameconnect_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlayerService - поиск игроков и доступ к их профилям.
// Детальный профиль открывается только через поиск: каждая строка
// выдачи выдает зрителю бессрочное право просмотра (ProfileView).
type PlayerService interface {
	SearchPlayers(db *gorm.DB, viewerID string, req *dto.SearchPlayersRequest) (*dto.SearchPlayersResponse, error)
	GetPlayerDetail(db *gorm.DB, viewerID, playerID string) (*dto.PlayerDetail, error)
	HasVisibility(db *gorm.DB, viewerID, playerID string) (bool, error)
}

type PlayerServiceImpl struct {
	userRepo        repositories.UserRepository
	followRepo      repositories.FollowRepository
	profileViewRepo repositories.ProfileViewRepository
	listingRepo     repositories.ListingRepository
	historyRepo     repositories.SearchHistoryRepository
}

func NewPlayerService(
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	profileViewRepo repositories.ProfileViewRepository,
	listingRepo repositories.ListingRepository,
	historyRepo repositories.SearchHistoryRepository,
) PlayerService {
	return &PlayerServiceImpl{
		userRepo:        userRepo,
		followRepo:      followRepo,
		profileViewRepo: profileViewRepo,
		listingRepo:     listingRepo,
		historyRepo:     historyRepo,
	}
}

// SearchPlayers выполняет фильтрованный поиск.
// Без единого фильтра поиск не считается выполненным: выдача пуста,
// права просмотра не выдаются, журнал не пишется. Роль "all" - это
// явно заданный фильтр, хотя по роли она не сужает.
func (s *PlayerServiceImpl) SearchPlayers(db *gorm.DB, viewerID string, req *dto.SearchPlayersRequest) (*dto.SearchPlayersResponse, error) {
	filter := repositories.PlayerFilter{
		State: req.State,
		City:  req.City,
		Area:  req.Area,
		Role:  models.CricketRole(req.Role),
	}

	if filter.IsEmpty() {
		return &dto.SearchPlayersResponse{
			Players:         []dto.PlayerSummary{},
			CoachingAds:     []dto.CoachingAdSummary{},
			SearchPerformed: false,
		}, nil
	}

	users, err := s.userRepo.SearchPlayers(db, viewerID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	players := make([]dto.PlayerSummary, 0, len(users))
	for i := range users {
		// Каждая найденная строка открывает зрителю профиль игрока
		if err := s.profileViewRepo.Grant(db, viewerID, users[i].ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		players = append(players, dto.NewPlayerSummary(&users[i]))
	}

	// Выдача сопровождается тренерскими объявлениями того же региона
	ads, err := s.listingRepo.FindCoachingByLocation(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	adSummaries := make([]dto.CoachingAdSummary, 0, len(ads))
	for i := range ads {
		adSummaries = append(adSummaries, dto.NewCoachingAdSummary(&ads[i]))
	}

	s.recordSearch(db, viewerID, req, len(players))

	return &dto.SearchPlayersResponse{
		Players:         players,
		CoachingAds:     adSummaries,
		SearchPerformed: true,
	}, nil
}

// GetPlayerDetail возвращает профиль игрока.
// Свой профиль виден всегда; чужой - только после выдачи права поиском.
func (s *PlayerServiceImpl) GetPlayerDetail(db *gorm.DB, viewerID, playerID string) (*dto.PlayerDetail, error) {
	visible, err := s.HasVisibility(db, viewerID, playerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.ErrProfileNotVisible
	}

	user, err := s.userRepo.FindByID(db, playerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	followers, err := s.followRepo.CountFollowers(db, playerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	following, err := s.followRepo.CountFollowing(db, playerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	isFollowing, err := s.followRepo.Exists(db, viewerID, playerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PlayerDetail{
		ID:             user.ID,
		Username:       user.Username,
		Name:           user.Name,
		Age:            user.Age,
		State:          user.State,
		City:           user.City,
		Area:           user.Area,
		CricketRole:    user.CricketRole,
		Availability:   user.Availability,
		Phone:          user.Phone,
		Gender:         user.Gender,
		FollowersCount: followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
		CreatedAt:      user.CreatedAt,
	}, nil
}

// HasVisibility сообщает, открыт ли профиль playerID зрителю viewerID
func (s *PlayerServiceImpl) HasVisibility(db *gorm.DB, viewerID, playerID string) (bool, error) {
	if viewerID == playerID {
		return true, nil
	}
	visible, err := s.profileViewRepo.Exists(db, viewerID, playerID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return visible, nil
}

// recordSearch пишет запись в журнал поисков.
// Сбой журнала не должен ломать выдачу, поэтому ошибка только логируется.
func (s *PlayerServiceImpl) recordSearch(db *gorm.DB, viewerID string, req *dto.SearchPlayersRequest, resultCount int) {
	filters, err := json.Marshal(req)
	if err != nil {
		logger.WithError(err).Warn("failed to marshal search filters")
		return
	}

	entry := &models.SearchHistory{
		UserID:      viewerID,
		Filters:     datatypes.JSON(filters),
		ResultCount: resultCount,
	}
	if err := s.historyRepo.Create(db, entry); err != nil {
		logger.WithError(err).Warn("failed to record search history")
	}
}
