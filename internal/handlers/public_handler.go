package handlers

import (
	"net/http"

	"gameconnect_backend/internal/services"
	"gameconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// PublicHandler - открытые каталоги витрины: тренеры, матчи, магазин
type PublicHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewPublicHandler(base *BaseHandler, listingService services.ListingService) *PublicHandler {
	return &PublicHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

// RegisterRoutes регистрирует публичные каталоги
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/coaching", h.SearchCoaching)
	rg.GET("/matches", h.SearchMatches)
	rg.GET("/store", h.SearchProducts)
}

func (h *PublicHandler) SearchCoaching(c *gin.Context) {
	var req dto.SearchCoachingRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.listingService.SearchCoaching(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PublicHandler) SearchMatches(c *gin.Context) {
	var req dto.SearchMatchesRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.listingService.SearchMatches(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PublicHandler) SearchProducts(c *gin.Context) {
	var req dto.SearchProductsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.listingService.SearchProducts(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
