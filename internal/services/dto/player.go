package dto

import (
	"time"

	"gameconnect_backend/internal/models"
)

// SearchPlayersRequest - фильтры поиска игроков (все опциональны)
type SearchPlayersRequest struct {
	State string `form:"state"`
	City  string `form:"city"`
	Area  string `form:"area"`
	Role  string `form:"role" validate:"omitempty,oneof=batsman bowler all-rounder all"`
}

// PlayerSummary - строка выдачи поиска
type PlayerSummary struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	Name         string             `json:"name"`
	State        string             `json:"state"`
	City         string             `json:"city"`
	Area         string             `json:"area"`
	CricketRole  models.CricketRole `json:"cricket_role"`
	Availability string             `json:"availability"`
}

// CoachingAdSummary - тренерское объявление в публичной выдаче
type CoachingAdSummary struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	State              string    `json:"state"`
	City               string    `json:"city"`
	Area               string    `json:"area"`
	ContactInfo        string    `json:"contact_info"`
	CouponCode         string    `json:"coupon_code"`
	DiscountPercentage int       `json:"discount_percentage"`
	Price              float64   `json:"price"`
	CreatedAt          time.Time `json:"created_at"`
}

// SearchPlayersResponse - результат поиска.
// SearchPerformed=false означает, что фильтры не были заданы
// и выдача пуста не из-за отсутствия совпадений.
type SearchPlayersResponse struct {
	Players         []PlayerSummary     `json:"players"`
	CoachingAds     []CoachingAdSummary `json:"coaching_ads"`
	SearchPerformed bool                `json:"search_performed"`
}

// PlayerDetail - полный профиль игрока со счетчиками графа
type PlayerDetail struct {
	ID             string             `json:"id"`
	Username       string             `json:"username"`
	Name           string             `json:"name"`
	Age            *int               `json:"age,omitempty"`
	State          string             `json:"state"`
	City           string             `json:"city"`
	Area           string             `json:"area"`
	CricketRole    models.CricketRole `json:"cricket_role"`
	Availability   string             `json:"availability"`
	Phone          string             `json:"phone"`
	Gender         models.Gender      `json:"gender"`
	FollowersCount int64              `json:"followers_count"`
	FollowingCount int64              `json:"following_count"`
	IsFollowing    bool               `json:"is_following"`
	CreatedAt      time.Time          `json:"created_at"`
}

// UpdateProfileRequest - запрос обновления собственного профиля
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	Age          *int    `json:"age,omitempty" binding:"omitempty,min=10,max=100"`
	State        *string `json:"state,omitempty"`
	City         *string `json:"city,omitempty"`
	Area         *string `json:"area,omitempty"`
	CricketRole  *string `json:"cricket_role,omitempty" validate:"omitempty,cricket_role"`
	Availability *string `json:"availability,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Gender       *string `json:"gender,omitempty" validate:"omitempty,gender"`
}

// ProfileResponse - собственный профиль с приватными полями
type ProfileResponse struct {
	ID             string             `json:"id"`
	Username       string             `json:"username"`
	Email          string             `json:"email"`
	Name           string             `json:"name"`
	Age            *int               `json:"age,omitempty"`
	State          string             `json:"state"`
	City           string             `json:"city"`
	Area           string             `json:"area"`
	CricketRole    models.CricketRole `json:"cricket_role"`
	Availability   string             `json:"availability"`
	Phone          string             `json:"phone"`
	Gender         models.Gender      `json:"gender"`
	IsOwner        bool               `json:"is_owner"`
	FollowersCount int64              `json:"followers_count"`
	FollowingCount int64              `json:"following_count"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NewPlayerSummary строит строку выдачи из модели
func NewPlayerSummary(user *models.User) PlayerSummary {
	return PlayerSummary{
		ID:           user.ID,
		Username:     user.Username,
		Name:         user.Name,
		State:        user.State,
		City:         user.City,
		Area:         user.Area,
		CricketRole:  user.CricketRole,
		Availability: user.Availability,
	}
}

// NewCoachingAdSummary строит публичное представление объявления
func NewCoachingAdSummary(ad *models.CoachingAd) CoachingAdSummary {
	return CoachingAdSummary{
		ID:                 ad.ID,
		Title:              ad.Title,
		Description:        ad.Description,
		Location:           ad.Location,
		State:              ad.State,
		City:               ad.City,
		Area:               ad.Area,
		ContactInfo:        ad.ContactInfo,
		CouponCode:         ad.CouponCode,
		DiscountPercentage: ad.DiscountPercentage,
		Price:              ad.Price,
		CreatedAt:          ad.CreatedAt,
	}
}
