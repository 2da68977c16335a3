package repositories

import (
	"gameconnect_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileViewRepository определяет интерфейс для операций с правами просмотра
type ProfileViewRepository interface {
	// Grant выдает зрителю право на просмотр профиля.
	// Повторная выдача - идемпотентный no-op.
	Grant(db *gorm.DB, viewerID, viewedID string) error

	Exists(db *gorm.DB, viewerID, viewedID string) (bool, error)
	CountByViewer(db *gorm.DB, viewerID string) (int64, error)
}

type profileViewRepository struct{}

// NewProfileViewRepository создает новый экземпляр ProfileViewRepository
func NewProfileViewRepository() ProfileViewRepository {
	return &profileViewRepository{}
}

func (r *profileViewRepository) Grant(db *gorm.DB, viewerID, viewedID string) error {
	view := models.ProfileView{
		ViewerID: viewerID,
		ViewedID: viewedID,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&view).Error
}

func (r *profileViewRepository) Exists(db *gorm.DB, viewerID, viewedID string) (bool, error) {
	var count int64
	err := db.Model(&models.ProfileView{}).
		Where("viewer_id = ? AND viewed_id = ?", viewerID, viewedID).
		Count(&count).Error
	return count > 0, err
}

func (r *profileViewRepository) CountByViewer(db *gorm.DB, viewerID string) (int64, error) {
	var count int64
	err := db.Model(&models.ProfileView{}).Where("viewer_id = ?", viewerID).Count(&count).Error
	return count, err
}
