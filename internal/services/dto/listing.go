package dto

import (
	"time"

	"gameconnect_backend/internal/models"
)

// CreateCoachingAdRequest - создание тренерского объявления
type CreateCoachingAdRequest struct {
	Title              string  `json:"title" binding:"required"`
	Description        string  `json:"description"`
	Location           string  `json:"location"`
	State              string  `json:"state"`
	City               string  `json:"city"`
	Area               string  `json:"area"`
	ContactInfo        string  `json:"contact_info"`
	CouponCode         string  `json:"coupon_code"`
	DiscountPercentage int     `json:"discount_percentage" binding:"omitempty,min=0,max=100"`
	Price              float64 `json:"price" binding:"omitempty,min=0"`
}

// UpdateCoachingAdRequest - частичное обновление объявления
type UpdateCoachingAdRequest struct {
	Title              *string  `json:"title,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Location           *string  `json:"location,omitempty"`
	State              *string  `json:"state,omitempty"`
	City               *string  `json:"city,omitempty"`
	Area               *string  `json:"area,omitempty"`
	ContactInfo        *string  `json:"contact_info,omitempty"`
	CouponCode         *string  `json:"coupon_code,omitempty"`
	DiscountPercentage *int     `json:"discount_percentage,omitempty" binding:"omitempty,min=0,max=100"`
	Price              *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
}

// CreateLiveMatchRequest - создание трансляции матча
type CreateLiveMatchRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	YouTubeURL  string     `json:"youtube_url" binding:"omitempty,url"`
	MatchDate   *time.Time `json:"match_date,omitempty"`
	Teams       string     `json:"teams"`
	IsLive      bool       `json:"is_live"`
	State       string     `json:"state"`
	City        string     `json:"city"`
	Area        string     `json:"area"`
	Location    string     `json:"location"`
}

// UpdateLiveMatchRequest - частичное обновление матча
type UpdateLiveMatchRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	YouTubeURL  *string    `json:"youtube_url,omitempty" binding:"omitempty,url"`
	MatchDate   *time.Time `json:"match_date,omitempty"`
	Teams       *string    `json:"teams,omitempty"`
	IsLive      *bool      `json:"is_live,omitempty"`
	State       *string    `json:"state,omitempty"`
	City        *string    `json:"city,omitempty"`
	Area        *string    `json:"area,omitempty"`
	Location    *string    `json:"location,omitempty"`
}

// CreateStoreProductRequest - создание товара
type CreateStoreProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required,min=0"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
	ProductURL  string  `json:"product_url" binding:"omitempty,url"`
	InStock     bool    `json:"in_stock"`
}

// UpdateStoreProductRequest - частичное обновление товара
type UpdateStoreProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	ImageURL    *string  `json:"image_url,omitempty" binding:"omitempty,url"`
	ProductURL  *string  `json:"product_url,omitempty" binding:"omitempty,url"`
	InStock     *bool    `json:"in_stock,omitempty"`
}

// SearchCoachingRequest - фильтры публичного каталога тренеров.
// Location сопоставляется с каждым из полей state/city/area.
type SearchCoachingRequest struct {
	Query    string `form:"search"`
	Location string `form:"location"`
}

// IsEmpty - поиск без единого фильтра не выполняется
func (r *SearchCoachingRequest) IsEmpty() bool {
	return r.Query == "" && r.Location == ""
}

// SearchMatchesRequest - фильтры публичного каталога матчей
type SearchMatchesRequest struct {
	Query string `form:"search"`
	State string `form:"state"`
	City  string `form:"city"`
	Area  string `form:"area"`
}

func (r *SearchMatchesRequest) IsEmpty() bool {
	return r.Query == "" && r.State == "" && r.City == "" && r.Area == ""
}

// SearchProductsRequest - фильтры витрины магазина
type SearchProductsRequest struct {
	Query    string `form:"search"`
	Category string `form:"category"`
}

func (r *SearchProductsRequest) IsEmpty() bool {
	return r.Query == "" && r.Category == ""
}

// SearchCoachingResponse - выдача публичного каталога тренеров.
// SearchPerformed=false означает, что фильтры не были заданы
// и каталог не раскрывается целиком.
type SearchCoachingResponse struct {
	CoachingAds     []CoachingAdSummary `json:"coaching_ads"`
	SearchPerformed bool                `json:"search_performed"`
}

// SearchMatchesResponse - выдача публичного каталога матчей
type SearchMatchesResponse struct {
	Matches         []models.LiveMatch `json:"matches"`
	SearchPerformed bool               `json:"search_performed"`
}

// SearchProductsResponse - выдача витрины магазина
type SearchProductsResponse struct {
	Products        []models.StoreProduct `json:"products"`
	SearchPerformed bool                  `json:"search_performed"`
}
