package repositories

import (
	"errors"
	"strings"

	"gameconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в БД
	ErrUserNotFound = errors.New("user not found")
)

// PlayerFilter - фильтры поиска игроков. Пустое поле означает
// "не фильтровать". Role со значением "all" эквивалентна пустой.
type PlayerFilter struct {
	State string
	City  string
	Area  string
	Role  models.CricketRole
}

// IsEmpty сообщает, задан ли хотя бы один фильтр.
// Wildcard-роль "all" считается заданным фильтром: пользователь
// явно выполнил поиск, просто без сужения по роли.
func (f PlayerFilter) IsEmpty() bool {
	return f.State == "" && f.City == "" && f.Area == "" && f.Role == ""
}

// UserConsoleFilter - фильтры консоли владельца по списку пользователей
type UserConsoleFilter struct {
	Search string
	Gender models.Gender
	Role   models.CricketRole
	Page   int
	limit  int
}

// Limit возвращает размер страницы консоли
func (f UserConsoleFilter) Limit() int {
	if f.limit > 0 {
		return f.limit
	}
	return 20
}

// UserRepository определяет интерфейс для операций с пользователями
type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Update(db *gorm.DB, user *models.User) error
	UpdatePassword(db *gorm.DB, userID, passwordHash string) error
	SetActive(db *gorm.DB, userID string, active bool) error

	// SearchPlayers возвращает активных игроков по фильтрам локации и роли,
	// исключая самого ищущего
	SearchPlayers(db *gorm.DB, viewerID string, filter PlayerFilter) ([]models.User, error)

	// FindForConsole возвращает страницу пользователей для консоли владельца
	FindForConsole(db *gorm.DB, filter UserConsoleFilter) ([]models.User, int64, error)

	Count(db *gorm.DB) (int64, error)
	CountOwners(db *gorm.DB) (int64, error)
}

type userRepository struct{}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *userRepository) UpdatePassword(db *gorm.DB, userID, passwordHash string) error {
	return db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) SetActive(db *gorm.DB, userID string, active bool) error {
	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SearchPlayers возвращает активных игроков по фильтрам локации и роли.
// Сравнение локаций регистронезависимое через LOWER, чтобы запрос
// одинаково работал на sqlite, postgres и mysql.
func (r *userRepository) SearchPlayers(db *gorm.DB, viewerID string, filter PlayerFilter) ([]models.User, error) {
	query := db.Model(&models.User{}).
		Where("is_active = ?", true).
		Where("id <> ?", viewerID)

	if filter.State != "" {
		query = query.Where("LOWER(state) LIKE ?", "%"+strings.ToLower(filter.State)+"%")
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
	}
	if filter.Area != "" {
		query = query.Where("LOWER(area) LIKE ?", "%"+strings.ToLower(filter.Area)+"%")
	}
	if filter.Role != "" && filter.Role != models.CricketRoleAll {
		query = query.Where("cricket_role = ?", filter.Role)
	}

	var users []models.User
	err := query.Order("name ASC").Find(&users).Error
	return users, err
}

// FindForConsole возвращает страницу пользователей для консоли владельца.
// Search матчится по username, name и email.
func (r *userRepository) FindForConsole(db *gorm.DB, filter UserConsoleFilter) ([]models.User, int64, error) {
	query := db.Model(&models.User{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(username) LIKE ? OR LOWER(name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.Role != "" && filter.Role != models.CricketRoleAll {
		query = query.Where("cricket_role = ?", filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Limit(filter.Limit()).
		Offset((page - 1) * filter.Limit()).
		Find(&users).Error
	return users, total, err
}

func (r *userRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountOwners(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("is_owner = ?", true).Count(&count).Error
	return count, err
}
