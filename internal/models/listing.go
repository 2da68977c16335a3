package models

import "time"

// Листинги витрины: тренерские объявления, трансляции матчей и товары.
// CreatedBy хранит id админа или владельца, создавшего запись; обычные
// админы управляют только своими записями, владелец - любыми.
// Булевы флаги намеренно без gorm-тега default: при наличии тега gorm
// опускает нулевое значение в INSERT и false молча превращается в
// дефолт колонки.

type CoachingAd struct {
	BaseModel
	Title              string  `gorm:"not null" json:"title"`
	Description        string  `json:"description"`
	Location           string  `json:"location"`
	State              string  `json:"state"`
	City               string  `json:"city"`
	Area               string  `json:"area"`
	ContactInfo        string  `json:"contact_info"`
	CouponCode         string  `json:"coupon_code"`
	DiscountPercentage int     `json:"discount_percentage"`
	Price              float64 `json:"price"`
	CreatedBy          string  `gorm:"not null;index" json:"created_by"`
}

type LiveMatch struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	YouTubeURL  string     `json:"youtube_url"`
	MatchDate   *time.Time `json:"match_date,omitempty"`
	Teams       string     `json:"teams"`
	IsLive      bool       `json:"is_live"`
	State       string     `json:"state"`
	City        string     `json:"city"`
	Area        string     `json:"area"`
	Location    string     `json:"location"`
	CreatedBy   string     `gorm:"not null;index" json:"created_by"`
}

type StoreProduct struct {
	BaseModel
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"image_url"`
	ProductURL  string  `json:"product_url"`
	InStock     bool    `json:"in_stock"`
	CreatedBy   string  `gorm:"not null;index" json:"created_by"`
}
