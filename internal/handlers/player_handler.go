package handlers

import (
	"net/http"

	"gameconnect_backend/internal/services"
	"gameconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	*BaseHandler
	playerService services.PlayerService
	followService services.FollowService
}

func NewPlayerHandler(
	base *BaseHandler,
	playerService services.PlayerService,
	followService services.FollowService,
) *PlayerHandler {
	return &PlayerHandler{
		BaseHandler:   base,
		playerService: playerService,
		followService: followService,
	}
}

// RegisterRoutes регистрирует маршруты поиска и профилей игроков
func (h *PlayerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	players := rg.Group("/players")
	{
		players.GET("/search", h.SearchPlayers)
		players.GET("/:id", h.GetPlayerDetail)
		players.POST("/:id/follow", h.Follow)
		players.DELETE("/:id/follow", h.Unfollow)
	}
}

func (h *PlayerHandler) SearchPlayers(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.SearchPlayersRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.playerService.SearchPlayers(db, identity.SubjectID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PlayerHandler) GetPlayerDetail(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	detail, err := h.playerService.GetPlayerDetail(db, identity.SubjectID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *PlayerHandler) Follow(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.followService.Follow(db, identity.SubjectID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Following"})
}

func (h *PlayerHandler) Unfollow(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.followService.Unfollow(db, identity.SubjectID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}
