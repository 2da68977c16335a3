package services

import (
	"gameconnect_backend/internal/auth"
	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/repositories"
	"gameconnect_backend/internal/services/dto"
	"gameconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AdminService - консоль владельца: управление админами,
// пользователями и аналитика поисков.
type AdminService interface {
	CreateAdmin(db *gorm.DB, req *dto.CreateAdminRequest) (*dto.AdminDTO, error)
	ApproveAdmin(db *gorm.DB, adminID string) (*dto.AdminDTO, error)
	OwnerDashboard(db *gorm.DB) (*dto.OwnerDashboard, error)
	ListUsers(db *gorm.DB, req *dto.ListUsersRequest) (*dto.ListUsersResponse, error)
	GetUserDetail(db *gorm.DB, userID string) (*dto.ConsoleUserDetail, error)
	ToggleUserActive(db *gorm.DB, userID string) (*dto.ConsoleUserRow, error)
	SearchAnalytics(db *gorm.DB, limit int) ([]dto.SearchAnalyticsEntry, error)
}

type AdminServiceImpl struct {
	adminRepo       repositories.AdminRepository
	userRepo        repositories.UserRepository
	followRepo      repositories.FollowRepository
	profileViewRepo repositories.ProfileViewRepository
	listingRepo     repositories.ListingRepository
	historyRepo     repositories.SearchHistoryRepository
}

func NewAdminService(
	adminRepo repositories.AdminRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	profileViewRepo repositories.ProfileViewRepository,
	listingRepo repositories.ListingRepository,
	historyRepo repositories.SearchHistoryRepository,
) AdminService {
	return &AdminServiceImpl{
		adminRepo:       adminRepo,
		userRepo:        userRepo,
		followRepo:      followRepo,
		profileViewRepo: profileViewRepo,
		listingRepo:     listingRepo,
		historyRepo:     historyRepo,
	}
}

// CreateAdmin создает админа от имени владельца.
// Созданный владельцем админ одобрен сразу: отдельный шаг approve
// нужен только для учетных записей, заведенных иным путем.
func (s *AdminServiceImpl) CreateAdmin(db *gorm.DB, req *dto.CreateAdminRequest) (*dto.AdminDTO, error) {
	if _, err := s.adminRepo.FindByUsername(db, req.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrAdminNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.adminRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrAdminNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	admin := &models.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		IsApproved:   true,
	}
	if err := s.adminRepo.Create(db, admin); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewAdminConsoleDTO(admin)
	return &result, nil
}

// ApproveAdmin одобряет ожидающего админа
func (s *AdminServiceImpl) ApproveAdmin(db *gorm.DB, adminID string) (*dto.AdminDTO, error) {
	if err := s.adminRepo.SetApproved(db, adminID, true); err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	admin, err := s.adminRepo.FindByID(db, adminID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	result := dto.NewAdminConsoleDTO(admin)
	return &result, nil
}

// OwnerDashboard собирает сводку платформы
func (s *AdminServiceImpl) OwnerDashboard(db *gorm.DB) (*dto.OwnerDashboard, error) {
	totalUsers, err := s.userRepo.Count(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingAdmins, err := s.adminRepo.CountPending(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	admins, err := s.adminRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	coachingAds, err := s.listingRepo.CountCoachingAds(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	liveMatches, err := s.listingRepo.CountLiveMatches(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	storeProducts, err := s.listingRepo.CountStoreProducts(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalSearches, err := s.historyRepo.Count(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	adminDTOs := make([]dto.AdminDTO, 0, len(admins))
	for i := range admins {
		adminDTOs = append(adminDTOs, dto.NewAdminConsoleDTO(&admins[i]))
	}

	return &dto.OwnerDashboard{
		TotalUsers:    totalUsers,
		PendingAdmins: pendingAdmins,
		Admins:        adminDTOs,
		CoachingAds:   coachingAds,
		LiveMatches:   liveMatches,
		StoreProducts: storeProducts,
		TotalSearches: totalSearches,
	}, nil
}

// ListUsers возвращает страницу пользователей консоли владельца
func (s *AdminServiceImpl) ListUsers(db *gorm.DB, req *dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	filter := repositories.UserConsoleFilter{
		Search: req.Search,
		Gender: models.Gender(req.Gender),
		Role:   models.CricketRole(req.Role),
		Page:   req.Page,
	}

	users, total, err := s.userRepo.FindForConsole(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]dto.ConsoleUserRow, 0, len(users))
	for i := range users {
		rows = append(rows, newConsoleUserRow(&users[i]))
	}

	return &dto.ListUsersResponse{
		Users:      rows,
		Pagination: dto.NewPagination(req.Page, filter.Limit(), total),
	}, nil
}

// GetUserDetail возвращает карточку пользователя со счетчиками активности
func (s *AdminServiceImpl) GetUserDetail(db *gorm.DB, userID string) (*dto.ConsoleUserDetail, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	followers, err := s.followRepo.CountFollowers(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	following, err := s.followRepo.CountFollowing(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	viewed, err := s.profileViewRepo.CountByViewer(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	searches, err := s.historyRepo.CountByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ConsoleUserDetail{
		ConsoleUserRow: newConsoleUserRow(user),
		State:          user.State,
		Area:           user.Area,
		Availability:   user.Availability,
		Phone:          user.Phone,
		Age:            user.Age,
		FollowersCount: followers,
		FollowingCount: following,
		ProfilesViewed: viewed,
		SearchesMade:   searches,
	}, nil
}

// ToggleUserActive переключает флаг активности.
// Владельца деактивировать нельзя.
func (s *AdminServiceImpl) ToggleUserActive(db *gorm.DB, userID string) (*dto.ConsoleUserRow, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.IsOwner {
		return nil, apperrors.ErrInvalidOperation("users", "Cannot deactivate the platform owner")
	}

	if err := s.userRepo.SetActive(db, userID, !user.IsActive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsActive = !user.IsActive

	row := newConsoleUserRow(user)
	return &row, nil
}

// SearchAnalytics возвращает последние поиски с именами пользователей
func (s *AdminServiceImpl) SearchAnalytics(db *gorm.DB, limit int) ([]dto.SearchAnalyticsEntry, error) {
	entries, err := s.historyRepo.FindRecent(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.SearchAnalyticsEntry, 0, len(entries))
	for i := range entries {
		entry := dto.SearchAnalyticsEntry{
			ID:          entries[i].ID,
			UserID:      entries[i].UserID,
			Filters:     string(entries[i].Filters),
			ResultCount: entries[i].ResultCount,
			CreatedAt:   entries[i].CreatedAt,
		}
		if user, err := s.userRepo.FindByID(db, entries[i].UserID); err == nil {
			entry.Username = user.Username
		}
		result = append(result, entry)
	}
	return result, nil
}

func newConsoleUserRow(user *models.User) dto.ConsoleUserRow {
	return dto.ConsoleUserRow{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Name:        user.Name,
		City:        user.City,
		CricketRole: user.CricketRole,
		Gender:      user.Gender,
		IsActive:    user.IsActive,
		IsOwner:     user.IsOwner,
		CreatedAt:   user.CreatedAt,
	}
}
