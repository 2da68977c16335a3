package repositories

import (
	"errors"
	"strings"

	"gameconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrListingNotFound возвращается, когда запись витрины не найдена
	ErrListingNotFound = errors.New("listing not found")
)

// CoachingFilter - фильтры публичного каталога тренерских объявлений.
// Location сопоставляется с каждым из полей state/city/area.
type CoachingFilter struct {
	Query    string
	Location string
}

// MatchFilter - фильтры публичного каталога матчей.
// Выдача всегда ограничена is_live=true.
type MatchFilter struct {
	Query string
	State string
	City  string
	Area  string
}

// ProductFilter - фильтры витрины магазина.
// Выдача всегда ограничена in_stock=true.
type ProductFilter struct {
	Query    string
	Category string
}

// ListingRepository определяет интерфейс для операций с витриной:
// тренерские объявления, матчи и товары магазина.
type ListingRepository interface {
	CreateCoachingAd(db *gorm.DB, ad *models.CoachingAd) error
	FindCoachingAdByID(db *gorm.DB, id string) (*models.CoachingAd, error)
	UpdateCoachingAd(db *gorm.DB, ad *models.CoachingAd) error
	DeleteCoachingAd(db *gorm.DB, id string) error
	SearchCoachingAds(db *gorm.DB, filter CoachingFilter) ([]models.CoachingAd, error)

	// FindCoachingByLocation возвращает объявления по фильтрам поиска игроков,
	// чтобы выдача поиска сопровождалась тренерами того же региона
	FindCoachingByLocation(db *gorm.DB, filter PlayerFilter) ([]models.CoachingAd, error)

	CreateLiveMatch(db *gorm.DB, match *models.LiveMatch) error
	FindLiveMatchByID(db *gorm.DB, id string) (*models.LiveMatch, error)
	UpdateLiveMatch(db *gorm.DB, match *models.LiveMatch) error
	DeleteLiveMatch(db *gorm.DB, id string) error
	SearchLiveMatches(db *gorm.DB, filter MatchFilter) ([]models.LiveMatch, error)

	CreateStoreProduct(db *gorm.DB, product *models.StoreProduct) error
	FindStoreProductByID(db *gorm.DB, id string) (*models.StoreProduct, error)
	UpdateStoreProduct(db *gorm.DB, product *models.StoreProduct) error
	DeleteStoreProduct(db *gorm.DB, id string) error
	SearchStoreProducts(db *gorm.DB, filter ProductFilter) ([]models.StoreProduct, error)

	// FindByCreator возвращает записи конкретного автора для консоли админа
	FindCoachingByCreator(db *gorm.DB, creatorID string) ([]models.CoachingAd, error)
	FindMatchesByCreator(db *gorm.DB, creatorID string) ([]models.LiveMatch, error)
	FindProductsByCreator(db *gorm.DB, creatorID string) ([]models.StoreProduct, error)

	// FindAll* возвращают полную витрину для консоли владельца,
	// включая не-live матчи и отсутствующие товары
	FindAllCoaching(db *gorm.DB) ([]models.CoachingAd, error)
	FindAllMatches(db *gorm.DB) ([]models.LiveMatch, error)
	FindAllProducts(db *gorm.DB) ([]models.StoreProduct, error)

	CountCoachingAds(db *gorm.DB) (int64, error)
	CountLiveMatches(db *gorm.DB) (int64, error)
	CountStoreProducts(db *gorm.DB) (int64, error)
}

type listingRepository struct{}

// NewListingRepository создает новый экземпляр ListingRepository
func NewListingRepository() ListingRepository {
	return &listingRepository{}
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// --- Coaching ads ---

func (r *listingRepository) CreateCoachingAd(db *gorm.DB, ad *models.CoachingAd) error {
	return db.Create(ad).Error
}

func (r *listingRepository) FindCoachingAdByID(db *gorm.DB, id string) (*models.CoachingAd, error) {
	var ad models.CoachingAd
	if err := db.Where("id = ?", id).First(&ad).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *listingRepository) UpdateCoachingAd(db *gorm.DB, ad *models.CoachingAd) error {
	return db.Save(ad).Error
}

func (r *listingRepository) DeleteCoachingAd(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.CoachingAd{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *listingRepository) SearchCoachingAds(db *gorm.DB, filter CoachingFilter) ([]models.CoachingAd, error) {
	query := db.Model(&models.CoachingAd{})

	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Location != "" {
		pattern := likePattern(filter.Location)
		query = query.Where(
			"LOWER(state) LIKE ? OR LOWER(city) LIKE ? OR LOWER(area) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var ads []models.CoachingAd
	err := query.Order("created_at DESC").Find(&ads).Error
	return ads, err
}

func (r *listingRepository) FindCoachingByLocation(db *gorm.DB, filter PlayerFilter) ([]models.CoachingAd, error) {
	query := db.Model(&models.CoachingAd{})

	if filter.State != "" {
		query = query.Where("LOWER(state) LIKE ?", likePattern(filter.State))
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) LIKE ?", likePattern(filter.City))
	}
	if filter.Area != "" {
		query = query.Where("LOWER(area) LIKE ?", likePattern(filter.Area))
	}

	var ads []models.CoachingAd
	err := query.Order("created_at DESC").Find(&ads).Error
	return ads, err
}

// --- Live matches ---

func (r *listingRepository) CreateLiveMatch(db *gorm.DB, match *models.LiveMatch) error {
	return db.Create(match).Error
}

func (r *listingRepository) FindLiveMatchByID(db *gorm.DB, id string) (*models.LiveMatch, error) {
	var match models.LiveMatch
	if err := db.Where("id = ?", id).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *listingRepository) UpdateLiveMatch(db *gorm.DB, match *models.LiveMatch) error {
	return db.Save(match).Error
}

func (r *listingRepository) DeleteLiveMatch(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.LiveMatch{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *listingRepository) SearchLiveMatches(db *gorm.DB, filter MatchFilter) ([]models.LiveMatch, error) {
	query := db.Model(&models.LiveMatch{}).Where("is_live = ?", true)

	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(teams) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.State != "" {
		query = query.Where("LOWER(state) LIKE ?", likePattern(filter.State))
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) LIKE ?", likePattern(filter.City))
	}
	if filter.Area != "" {
		query = query.Where("LOWER(area) LIKE ?", likePattern(filter.Area))
	}

	var matches []models.LiveMatch
	err := query.Order("created_at DESC").Find(&matches).Error
	return matches, err
}

// --- Store products ---

func (r *listingRepository) CreateStoreProduct(db *gorm.DB, product *models.StoreProduct) error {
	return db.Create(product).Error
}

func (r *listingRepository) FindStoreProductByID(db *gorm.DB, id string) (*models.StoreProduct, error) {
	var product models.StoreProduct
	if err := db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *listingRepository) UpdateStoreProduct(db *gorm.DB, product *models.StoreProduct) error {
	return db.Save(product).Error
}

func (r *listingRepository) DeleteStoreProduct(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.StoreProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *listingRepository) SearchStoreProducts(db *gorm.DB, filter ProductFilter) ([]models.StoreProduct, error) {
	query := db.Model(&models.StoreProduct{}).Where("in_stock = ?", true)

	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", likePattern(filter.Category))
	}

	var products []models.StoreProduct
	err := query.Order("created_at DESC").Find(&products).Error
	return products, err
}

// --- Creator scoping ---

func (r *listingRepository) FindCoachingByCreator(db *gorm.DB, creatorID string) ([]models.CoachingAd, error) {
	var ads []models.CoachingAd
	err := db.Where("created_by = ?", creatorID).Order("created_at DESC").Find(&ads).Error
	return ads, err
}

func (r *listingRepository) FindMatchesByCreator(db *gorm.DB, creatorID string) ([]models.LiveMatch, error) {
	var matches []models.LiveMatch
	err := db.Where("created_by = ?", creatorID).Order("created_at DESC").Find(&matches).Error
	return matches, err
}

func (r *listingRepository) FindProductsByCreator(db *gorm.DB, creatorID string) ([]models.StoreProduct, error) {
	var products []models.StoreProduct
	err := db.Where("created_by = ?", creatorID).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *listingRepository) FindAllCoaching(db *gorm.DB) ([]models.CoachingAd, error) {
	var ads []models.CoachingAd
	err := db.Order("created_at DESC").Find(&ads).Error
	return ads, err
}

func (r *listingRepository) FindAllMatches(db *gorm.DB) ([]models.LiveMatch, error) {
	var matches []models.LiveMatch
	err := db.Order("created_at DESC").Find(&matches).Error
	return matches, err
}

func (r *listingRepository) FindAllProducts(db *gorm.DB) ([]models.StoreProduct, error) {
	var products []models.StoreProduct
	err := db.Order("created_at DESC").Find(&products).Error
	return products, err
}

// --- Counts ---

func (r *listingRepository) CountCoachingAds(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.CoachingAd{}).Count(&count).Error
	return count, err
}

func (r *listingRepository) CountLiveMatches(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.LiveMatch{}).Count(&count).Error
	return count, err
}

func (r *listingRepository) CountStoreProducts(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.StoreProduct{}).Count(&count).Error
	return count, err
}
