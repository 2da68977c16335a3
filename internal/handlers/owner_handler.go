package handlers

import (
	"net/http"

	"gameconnect_backend/internal/services"
	"gameconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// OwnerHandler - консоль владельца платформы
type OwnerHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewOwnerHandler(base *BaseHandler, adminService services.AdminService) *OwnerHandler {
	return &OwnerHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// RegisterRoutes регистрирует маршруты консоли владельца.
// Группа должна быть защищена RequireOwner.
func (h *OwnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.POST("/admins", h.CreateAdmin)
	rg.POST("/admins/:id/approve", h.ApproveAdmin)
	rg.GET("/users", h.ListUsers)
	rg.GET("/users/:id", h.GetUserDetail)
	rg.POST("/users/:id/toggle-active", h.ToggleUserActive)
	rg.GET("/search-analytics", h.SearchAnalytics)
}

func (h *OwnerHandler) Dashboard(c *gin.Context) {
	db := h.GetDB(c)

	dashboard, err := h.adminService.OwnerDashboard(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *OwnerHandler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	admin, err := h.adminService.CreateAdmin(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, admin)
}

func (h *OwnerHandler) ApproveAdmin(c *gin.Context) {
	db := h.GetDB(c)

	admin, err := h.adminService.ApproveAdmin(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

func (h *OwnerHandler) ListUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.adminService.ListUsers(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *OwnerHandler) GetUserDetail(c *gin.Context) {
	db := h.GetDB(c)

	detail, err := h.adminService.GetUserDetail(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *OwnerHandler) ToggleUserActive(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.adminService.ToggleUserActive(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *OwnerHandler) SearchAnalytics(c *gin.Context) {
	db := h.GetDB(c)

	limit := ParseQueryInt(c, "limit", 50)
	entries, err := h.adminService.SearchAnalytics(db, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"searches": entries})
}
