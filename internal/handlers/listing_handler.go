package handlers

import (
	"net/http"

	"gameconnect_backend/internal/services"
	"gameconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ListingHandler - консоль управления витриной для админов и владельца
type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

// RegisterRoutes регистрирует маршруты консоли админа.
// Группа должна быть защищена RequireAdminOrOwner.
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)

	coaching := rg.Group("/coaching")
	{
		coaching.POST("", h.CreateCoachingAd)
		coaching.PUT("/:id", h.UpdateCoachingAd)
		coaching.DELETE("/:id", h.DeleteCoachingAd)
	}

	matches := rg.Group("/matches")
	{
		matches.POST("", h.CreateLiveMatch)
		matches.PUT("/:id", h.UpdateLiveMatch)
		matches.DELETE("/:id", h.DeleteLiveMatch)
	}

	store := rg.Group("/store")
	{
		store.POST("", h.CreateStoreProduct)
		store.PUT("/:id", h.UpdateStoreProduct)
		store.DELETE("/:id", h.DeleteStoreProduct)
	}
}

func (h *ListingHandler) Dashboard(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	dashboard, err := h.listingService.Dashboard(db, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// --- Coaching ads ---

func (h *ListingHandler) CreateCoachingAd(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCoachingAdRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	ad, err := h.listingService.CreateCoachingAd(db, identity, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ad)
}

func (h *ListingHandler) UpdateCoachingAd(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateCoachingAdRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	ad, err := h.listingService.UpdateCoachingAd(db, identity, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ad)
}

func (h *ListingHandler) DeleteCoachingAd(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.listingService.DeleteCoachingAd(db, identity, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coaching ad deleted"})
}

// --- Live matches ---

func (h *ListingHandler) CreateLiveMatch(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateLiveMatchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	match, err := h.listingService.CreateLiveMatch(db, identity, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

func (h *ListingHandler) UpdateLiveMatch(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateLiveMatchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	match, err := h.listingService.UpdateLiveMatch(db, identity, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

func (h *ListingHandler) DeleteLiveMatch(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.listingService.DeleteLiveMatch(db, identity, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted"})
}

// --- Store products ---

func (h *ListingHandler) CreateStoreProduct(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateStoreProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	product, err := h.listingService.CreateStoreProduct(db, identity, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ListingHandler) UpdateStoreProduct(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateStoreProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	product, err := h.listingService.UpdateStoreProduct(db, identity, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ListingHandler) DeleteStoreProduct(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.listingService.DeleteStoreProduct(db, identity, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
