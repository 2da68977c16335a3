package models

type User struct {
	BaseModel
	Username     string      `gorm:"uniqueIndex;not null" json:"username"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Name         string      `gorm:"not null" json:"name"`
	Age          *int        `json:"age,omitempty"`
	State        string      `json:"state"`
	City         string      `json:"city"`
	Area         string      `json:"area"`
	CricketRole  CricketRole `gorm:"type:varchar(20)" json:"cricket_role"`
	Availability string      `json:"availability"`
	Phone        string      `json:"phone"`
	Gender       Gender      `gorm:"type:varchar(10)" json:"gender"`
	// Без gorm-тега default: с ним gorm опускает false в INSERT
	// и деактивированная запись молча создается активной
	IsActive bool `json:"is_active"`
	IsOwner  bool `json:"is_owner"`

	// Relations
	Following []Follow `gorm:"foreignKey:FollowerID" json:"-"`
	Followers []Follow `gorm:"foreignKey:FollowedID" json:"-"`
}
