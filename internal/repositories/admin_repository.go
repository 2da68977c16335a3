package repositories

import (
	"errors"

	"gameconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrAdminNotFound возвращается, когда админ не найден в БД
	ErrAdminNotFound = errors.New("admin not found")
)

// AdminRepository определяет интерфейс для операций с админами
type AdminRepository interface {
	Create(db *gorm.DB, admin *models.Admin) error
	FindByID(db *gorm.DB, id string) (*models.Admin, error)
	FindByUsername(db *gorm.DB, username string) (*models.Admin, error)
	FindByEmail(db *gorm.DB, email string) (*models.Admin, error)
	SetApproved(db *gorm.DB, adminID string, approved bool) error
	FindAll(db *gorm.DB) ([]models.Admin, error)
	CountPending(db *gorm.DB) (int64, error)
}

type adminRepository struct{}

// NewAdminRepository создает новый экземпляр AdminRepository
func NewAdminRepository() AdminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(db *gorm.DB, admin *models.Admin) error {
	return db.Create(admin).Error
}

func (r *adminRepository) FindByID(db *gorm.DB, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where("id = ?", id).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByUsername(db *gorm.DB, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByEmail(db *gorm.DB, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) SetApproved(db *gorm.DB, adminID string, approved bool) error {
	result := db.Model(&models.Admin{}).
		Where("id = ?", adminID).
		Update("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *adminRepository) FindAll(db *gorm.DB) ([]models.Admin, error) {
	var admins []models.Admin
	err := db.Order("created_at DESC").Find(&admins).Error
	return admins, err
}

func (r *adminRepository) CountPending(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Admin{}).Where("is_approved = ?", false).Count(&count).Error
	return count, err
}
