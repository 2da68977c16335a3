package dto

import (
	"time"

	"gameconnect_backend/internal/models"
)

// RegisterRequest - запрос регистрации игрока
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=30"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Name         string `json:"name" binding:"required"`
	Age          *int   `json:"age,omitempty" binding:"omitempty,min=10,max=100"`
	State        string `json:"state"`
	City         string `json:"city"`
	Area         string `json:"area"`
	CricketRole  string `json:"cricket_role" validate:"cricket_role"`
	Availability string `json:"availability"`
	Phone        string `json:"phone"`
	Gender       string `json:"gender" validate:"gender"`
}

// LoginRequest - запрос входа.
// Единая точка входа для игроков, владельца и админов.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest - запрос смены пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// AuthResponse - ответ с токеном и ролью субъекта
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	Role        string  `json:"role"`
	User        UserDTO `json:"user"`
}

// UserDTO - базовая информация о субъекте
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserDTO строит UserDTO из модели пользователя
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// NewAdminDTO строит UserDTO из модели админа
func NewAdminDTO(admin *models.Admin) UserDTO {
	return UserDTO{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		Name:      admin.Name,
		CreatedAt: admin.CreatedAt,
	}
}
