package repositories

import (
	"gameconnect_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository определяет интерфейс для операций с подписками
type FollowRepository interface {
	// Insert создает ребро подписки. Повторная вставка той же пары -
	// no-op без ошибки, в том числе при конкурентных запросах.
	Insert(db *gorm.DB, followerID, followedID string) error

	// Delete удаляет ребро подписки, если оно существует
	Delete(db *gorm.DB, followerID, followedID string) error

	Exists(db *gorm.DB, followerID, followedID string) (bool, error)
	CountFollowers(db *gorm.DB, userID string) (int64, error)
	CountFollowing(db *gorm.DB, userID string) (int64, error)
}

type followRepository struct{}

// NewFollowRepository создает новый экземпляр FollowRepository
func NewFollowRepository() FollowRepository {
	return &followRepository{}
}

// Insert создает ребро подписки.
// ON CONFLICT DO NOTHING поверх составного уникального индекса
// превращает гонку двух одинаковых запросов в идемпотентный успех.
func (r *followRepository) Insert(db *gorm.DB, followerID, followedID string) error {
	follow := models.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
}

func (r *followRepository) Delete(db *gorm.DB, followerID, followedID string) error {
	return db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

func (r *followRepository) Exists(db *gorm.DB, followerID, followedID string) (bool, error) {
	var count int64
	err := db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) CountFollowers(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
