package dto

import (
	"time"

	"gameconnect_backend/internal/models"
)

// CreateAdminRequest - запрос владельца на создание админа
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// AdminDTO - представление админа в консоли владельца
type AdminDTO struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAdminConsoleDTO строит представление админа из модели
func NewAdminConsoleDTO(admin *models.Admin) AdminDTO {
	return AdminDTO{
		ID:         admin.ID,
		Username:   admin.Username,
		Email:      admin.Email,
		Name:       admin.Name,
		IsApproved: admin.IsApproved,
		CreatedAt:  admin.CreatedAt,
	}
}

// ListUsersRequest - фильтры консоли владельца по пользователям
type ListUsersRequest struct {
	Search string `form:"search"`
	Gender string `form:"gender" validate:"gender"`
	Role   string `form:"role" validate:"omitempty,oneof=batsman bowler all-rounder all"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
}

// ConsoleUserRow - строка списка пользователей в консоли
type ConsoleUserRow struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	City        string             `json:"city"`
	CricketRole models.CricketRole `json:"cricket_role"`
	Gender      models.Gender      `json:"gender"`
	IsActive    bool               `json:"is_active"`
	IsOwner     bool               `json:"is_owner"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ListUsersResponse - страница пользователей с метаданными
type ListUsersResponse struct {
	Users      []ConsoleUserRow `json:"users"`
	Pagination Pagination       `json:"pagination"`
}

// ConsoleUserDetail - карточка пользователя в консоли владельца
type ConsoleUserDetail struct {
	ConsoleUserRow
	State          string `json:"state"`
	Area           string `json:"area"`
	Availability   string `json:"availability"`
	Phone          string `json:"phone"`
	Age            *int   `json:"age,omitempty"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	ProfilesViewed int64  `json:"profiles_viewed"`
	SearchesMade   int64  `json:"searches_made"`
}

// AdminDashboard - сводка консоли контент-админа
type AdminDashboard struct {
	CoachingAds   []CoachingAdSummary   `json:"coaching_ads"`
	LiveMatches   []models.LiveMatch    `json:"live_matches"`
	StoreProducts []models.StoreProduct `json:"store_products"`
}

// OwnerDashboard - сводка консоли владельца
type OwnerDashboard struct {
	TotalUsers    int64      `json:"total_users"`
	PendingAdmins int64      `json:"pending_admins"`
	Admins        []AdminDTO `json:"admins"`
	CoachingAds   int64      `json:"coaching_ads"`
	LiveMatches   int64      `json:"live_matches"`
	StoreProducts int64      `json:"store_products"`
	TotalSearches int64      `json:"total_searches"`
}

// SearchAnalyticsEntry - строка аналитики поисков
type SearchAnalyticsEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Filters     string    `json:"filters"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}
