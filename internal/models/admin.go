package models

// Admin - отдельное пространство идентичности от User.
// Логин возможен только после одобрения владельцем (IsApproved).
type Admin struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `gorm:"not null" json:"name"`
	IsApproved   bool   `json:"is_approved"`
}
