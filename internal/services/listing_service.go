package services

import (
	"gameconnect_backend/internal/auth"
	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/repositories"
	"gameconnect_backend/internal/services/dto"
	"gameconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ListingService - витрина платформы: тренерские объявления,
// трансляции матчей и товары магазина. Публичное чтение открыто всем,
// запись доступна админам (свои записи) и владельцу (любые).
type ListingService interface {
	CreateCoachingAd(db *gorm.DB, identity auth.Identity, req *dto.CreateCoachingAdRequest) (*models.CoachingAd, error)
	UpdateCoachingAd(db *gorm.DB, identity auth.Identity, id string, req *dto.UpdateCoachingAdRequest) (*models.CoachingAd, error)
	DeleteCoachingAd(db *gorm.DB, identity auth.Identity, id string) error

	// SearchCoaching / SearchMatches / SearchProducts выполняются только
	// при заданных фильтрах: без фильтров выдача пуста и
	// SearchPerformed=false, каталог целиком не раскрывается
	SearchCoaching(db *gorm.DB, req *dto.SearchCoachingRequest) (*dto.SearchCoachingResponse, error)

	CreateLiveMatch(db *gorm.DB, identity auth.Identity, req *dto.CreateLiveMatchRequest) (*models.LiveMatch, error)
	UpdateLiveMatch(db *gorm.DB, identity auth.Identity, id string, req *dto.UpdateLiveMatchRequest) (*models.LiveMatch, error)
	DeleteLiveMatch(db *gorm.DB, identity auth.Identity, id string) error
	SearchMatches(db *gorm.DB, req *dto.SearchMatchesRequest) (*dto.SearchMatchesResponse, error)

	CreateStoreProduct(db *gorm.DB, identity auth.Identity, req *dto.CreateStoreProductRequest) (*models.StoreProduct, error)
	UpdateStoreProduct(db *gorm.DB, identity auth.Identity, id string, req *dto.UpdateStoreProductRequest) (*models.StoreProduct, error)
	DeleteStoreProduct(db *gorm.DB, identity auth.Identity, id string) error
	SearchProducts(db *gorm.DB, req *dto.SearchProductsRequest) (*dto.SearchProductsResponse, error)

	// Dashboard возвращает записи, которыми субъект вправе управлять
	Dashboard(db *gorm.DB, identity auth.Identity) (*dto.AdminDashboard, error)
}

type ListingServiceImpl struct {
	listingRepo repositories.ListingRepository
}

func NewListingService(listingRepo repositories.ListingRepository) ListingService {
	return &ListingServiceImpl{listingRepo: listingRepo}
}

// canManage проверяет право управления записью: автор или владелец
func canManage(identity auth.Identity, createdBy string) bool {
	return identity.IsOwner() || identity.SubjectID == createdBy
}

// --- Coaching ads ---

func (s *ListingServiceImpl) CreateCoachingAd(db *gorm.DB, identity auth.Identity, req *dto.CreateCoachingAdRequest) (*models.CoachingAd, error) {
	ad := &models.CoachingAd{
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		State:              req.State,
		City:               req.City,
		Area:               req.Area,
		ContactInfo:        req.ContactInfo,
		CouponCode:         req.CouponCode,
		DiscountPercentage: req.DiscountPercentage,
		Price:              req.Price,
		CreatedBy:          identity.SubjectID,
	}
	if err := s.listingRepo.CreateCoachingAd(db, ad); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ad, nil
}

func (s *ListingServiceImpl) UpdateCoachingAd(db *gorm.DB, identity auth.Identity, id string, req *dto.UpdateCoachingAdRequest) (*models.CoachingAd, error) {
	ad, err := s.listingRepo.FindCoachingAdByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !canManage(identity, ad.CreatedBy) {
		return nil, apperrors.ErrNotListingOwner
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}
	if req.Location != nil {
		ad.Location = *req.Location
	}
	if req.State != nil {
		ad.State = *req.State
	}
	if req.City != nil {
		ad.City = *req.City
	}
	if req.Area != nil {
		ad.Area = *req.Area
	}
	if req.ContactInfo != nil {
		ad.ContactInfo = *req.ContactInfo
	}
	if req.CouponCode != nil {
		ad.CouponCode = *req.CouponCode
	}
	if req.DiscountPercentage != nil {
		ad.DiscountPercentage = *req.DiscountPercentage
	}
	if req.Price != nil {
		ad.Price = *req.Price
	}

	if err := s.listingRepo.UpdateCoachingAd(db, ad); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ad, nil
}

func (s *ListingServiceImpl) DeleteCoachingAd(db *gorm.DB, identity auth.Identity, id string) error {
	ad, err := s.listingRepo.FindCoachingAdByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrListingNotFound
		}
		return apperrors.InternalError(err)
	}
	if !canManage(identity, ad.CreatedBy) {
		return apperrors.ErrNotListingOwner
	}
	if err := s.listingRepo.DeleteCoachingAd(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ListingServiceImpl) SearchCoaching(db *gorm.DB, req *dto.SearchCoachingRequest) (*dto.SearchCoachingResponse, error) {
	if req.IsEmpty() {
		return &dto.SearchCoachingResponse{
			CoachingAds:     []dto.CoachingAdSummary{},
			SearchPerformed: false,
		}, nil
	}

	ads, err := s.listingRepo.SearchCoachingAds(db, repositories.CoachingFilter{
		Query:    req.Query,
		Location: req.Location,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.CoachingAdSummary, 0, len(ads))
	for i := range ads {
		summaries = append(summaries, dto.NewCoachingAdSummary(&ads[i]))
	}
	return &dto.SearchCoachingResponse{
		CoachingAds:     summaries,
		SearchPerformed: true,
	}, nil
}

// --- Live matches ---

func (s *ListingServiceImpl) CreateLiveMatch(db *gorm.DB, identity auth.Identity, req *dto.CreateLiveMatchRequest) (*models.LiveMatch, error) {
	match := &models.LiveMatch{
		Title:       req.Title,
		Description: req.Description,
		YouTubeURL:  req.YouTubeURL,
		MatchDate:   req.MatchDate,
		Teams:       req.Teams,
		IsLive:      req.IsLive,
		State:       req.State,
		City:        req.City,
		Area:        req.Area,
		Location:    req.Location,
		CreatedBy:   identity.SubjectID,
	}
	if err := s.listingRepo.CreateLiveMatch(db, match); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return match, nil
}

func (s *ListingServiceImpl) UpdateLiveMatch(db *gorm.DB, identity auth.Identity, id string, req *dto.UpdateLiveMatchRequest) (*models.LiveMatch, error) {
	match, err := s.listingRepo.FindLiveMatchByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !canManage(identity, match.CreatedBy) {
		return nil, apperrors.ErrNotListingOwner
	}

	if req.Title != nil {
		match.Title = *req.Title
	}
	if req.Description != nil {
		match.Description = *req.Description
	}
	if req.YouTubeURL != nil {
		match.YouTubeURL = *req.YouTubeURL
	}
	if req.MatchDate != nil {
		match.MatchDate = req.MatchDate
	}
	if req.Teams != nil {
		match.Teams = *req.Teams
	}
	if req.IsLive != nil {
		match.IsLive = *req.IsLive
	}
	if req.State != nil {
		match.State = *req.State
	}
	if req.City != nil {
		match.City = *req.City
	}
	if req.Area != nil {
		match.Area = *req.Area
	}
	if req.Location != nil {
		match.Location = *req.Location
	}

	if err := s.listingRepo.UpdateLiveMatch(db, match); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return match, nil
}

func (s *ListingServiceImpl) DeleteLiveMatch(db *gorm.DB, identity auth.Identity, id string) error {
	match, err := s.listingRepo.FindLiveMatchByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrListingNotFound
		}
		return apperrors.InternalError(err)
	}
	if !canManage(identity, match.CreatedBy) {
		return apperrors.ErrNotListingOwner
	}
	if err := s.listingRepo.DeleteLiveMatch(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ListingServiceImpl) SearchMatches(db *gorm.DB, req *dto.SearchMatchesRequest) (*dto.SearchMatchesResponse, error) {
	if req.IsEmpty() {
		return &dto.SearchMatchesResponse{
			Matches:         []models.LiveMatch{},
			SearchPerformed: false,
		}, nil
	}

	matches, err := s.listingRepo.SearchLiveMatches(db, repositories.MatchFilter{
		Query: req.Query,
		State: req.State,
		City:  req.City,
		Area:  req.Area,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.SearchMatchesResponse{
		Matches:         matches,
		SearchPerformed: true,
	}, nil
}

// --- Store products ---

func (s *ListingServiceImpl) CreateStoreProduct(db *gorm.DB, identity auth.Identity, req *dto.CreateStoreProductRequest) (*models.StoreProduct, error) {
	product := &models.StoreProduct{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		ProductURL:  req.ProductURL,
		InStock:     req.InStock,
		CreatedBy:   identity.SubjectID,
	}
	if err := s.listingRepo.CreateStoreProduct(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ListingServiceImpl) UpdateStoreProduct(db *gorm.DB, identity auth.Identity, id string, req *dto.UpdateStoreProductRequest) (*models.StoreProduct, error) {
	product, err := s.listingRepo.FindStoreProductByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !canManage(identity, product.CreatedBy) {
		return nil, apperrors.ErrNotListingOwner
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.ProductURL != nil {
		product.ProductURL = *req.ProductURL
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := s.listingRepo.UpdateStoreProduct(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ListingServiceImpl) DeleteStoreProduct(db *gorm.DB, identity auth.Identity, id string) error {
	product, err := s.listingRepo.FindStoreProductByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrListingNotFound
		}
		return apperrors.InternalError(err)
	}
	if !canManage(identity, product.CreatedBy) {
		return apperrors.ErrNotListingOwner
	}
	if err := s.listingRepo.DeleteStoreProduct(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ListingServiceImpl) SearchProducts(db *gorm.DB, req *dto.SearchProductsRequest) (*dto.SearchProductsResponse, error) {
	if req.IsEmpty() {
		return &dto.SearchProductsResponse{
			Products:        []models.StoreProduct{},
			SearchPerformed: false,
		}, nil
	}

	products, err := s.listingRepo.SearchStoreProducts(db, repositories.ProductFilter{
		Query:    req.Query,
		Category: req.Category,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.SearchProductsResponse{
		Products:        products,
		SearchPerformed: true,
	}, nil
}

// Dashboard возвращает записи витрины, доступные субъекту.
// Владелец видит все записи, админ - только созданные им.
func (s *ListingServiceImpl) Dashboard(db *gorm.DB, identity auth.Identity) (*dto.AdminDashboard, error) {
	var (
		ads      []models.CoachingAd
		matches  []models.LiveMatch
		products []models.StoreProduct
		err      error
	)

	if identity.IsOwner() {
		ads, err = s.listingRepo.FindAllCoaching(db)
		if err == nil {
			matches, err = s.listingRepo.FindAllMatches(db)
		}
		if err == nil {
			products, err = s.listingRepo.FindAllProducts(db)
		}
	} else {
		ads, err = s.listingRepo.FindCoachingByCreator(db, identity.SubjectID)
		if err == nil {
			matches, err = s.listingRepo.FindMatchesByCreator(db, identity.SubjectID)
		}
		if err == nil {
			products, err = s.listingRepo.FindProductsByCreator(db, identity.SubjectID)
		}
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	adSummaries := make([]dto.CoachingAdSummary, 0, len(ads))
	for i := range ads {
		adSummaries = append(adSummaries, dto.NewCoachingAdSummary(&ads[i]))
	}

	return &dto.AdminDashboard{
		CoachingAds:   adSummaries,
		LiveMatches:   matches,
		StoreProducts: products,
	}, nil
}
