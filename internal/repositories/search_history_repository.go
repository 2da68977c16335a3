package repositories

import (
	"gameconnect_backend/internal/models"

	"gorm.io/gorm"
)

// SearchHistoryRepository определяет интерфейс для журнала поисков
type SearchHistoryRepository interface {
	Create(db *gorm.DB, entry *models.SearchHistory) error
	FindRecent(db *gorm.DB, limit int) ([]models.SearchHistory, error)
	CountByUser(db *gorm.DB, userID string) (int64, error)
	Count(db *gorm.DB) (int64, error)
}

type searchHistoryRepository struct{}

// NewSearchHistoryRepository создает новый экземпляр SearchHistoryRepository
func NewSearchHistoryRepository() SearchHistoryRepository {
	return &searchHistoryRepository{}
}

func (r *searchHistoryRepository) Create(db *gorm.DB, entry *models.SearchHistory) error {
	return db.Create(entry).Error
}

func (r *searchHistoryRepository) FindRecent(db *gorm.DB, limit int) ([]models.SearchHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.SearchHistory
	err := db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *searchHistoryRepository) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.SearchHistory{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *searchHistoryRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.SearchHistory{}).Count(&count).Error
	return count, err
}
