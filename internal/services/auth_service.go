package services

import (
	"time"

	"gameconnect_backend/internal/auth"
	"gameconnect_backend/internal/config"
	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/repositories"
	"gameconnect_backend/internal/services/dto"
	"gameconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService - регистрация и единый вход для всех уровней доступа
type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ChangePassword(db *gorm.DB, identity auth.Identity, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminRepository
	cfg       *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Register - регистрация нового игрока
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	// Уникальность username и email проверяется заранее, чтобы вернуть
	// клиенту конкретное поле конфликта, а не голую ошибку БД
	if _, err := s.userRepo.FindByUsername(db, req.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Age:          req.Age,
		State:        req.State,
		City:         req.City,
		Area:         req.Area,
		CricketRole:  models.CricketRole(req.CricketRole),
		Availability: req.Availability,
		Phone:        req.Phone,
		Gender:       models.Gender(req.Gender),
		IsActive:     true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewUserDTO(user)
	return &result, nil
}

// Login - единая точка входа.
// Сначала ищем игрока (и владельца - это тоже User), затем админа.
// Неодобренный админ получает явный отказ, а не invalid credentials:
// его учетная запись существует, но еще не активирована владельцем.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err == nil {
		if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
			return nil, apperrors.ErrInvalidCredentials
		}
		if !user.IsActive {
			return nil, apperrors.ErrAccountDeactivated
		}

		role := auth.RolePlayer
		if user.IsOwner {
			role = auth.RoleOwner
		}
		return s.issueToken(user.ID, auth.KindUser, role, dto.NewUserDTO(user))
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	admin, err := s.adminRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !admin.IsApproved {
		return nil, apperrors.ErrAdminNotApproved
	}

	return s.issueToken(admin.ID, auth.KindAdmin, auth.RoleAdmin, dto.NewAdminDTO(admin))
}

// ChangePassword - смена пароля текущего субъекта (игрока или админа)
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, identity auth.Identity, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	var currentHash string
	switch identity.Kind {
	case auth.KindAdmin:
		admin, err := s.adminRepo.FindByID(db, identity.SubjectID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		currentHash = admin.PasswordHash
	default:
		user, err := s.userRepo.FindByID(db, identity.SubjectID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		currentHash = user.PasswordHash
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, currentHash) {
		return apperrors.ErrWrongCurrentPassword
	}

	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if identity.Kind == auth.KindAdmin {
		if err := db.Model(&models.Admin{}).
			Where("id = ?", identity.SubjectID).
			Update("password_hash", newHash).Error; err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	}

	if err := s.userRepo.UpdatePassword(db, identity.SubjectID, newHash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueToken(subjectID, kind, role string, userDTO dto.UserDTO) (*dto.AuthResponse, error) {
	ttl := time.Duration(s.cfg.JWT.TTL) * time.Minute
	token, err := auth.GenerateToken(subjectID, kind, role, s.cfg.JWT.Secret, ttl)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		Role:        role,
		User:        userDTO,
	}, nil
}
