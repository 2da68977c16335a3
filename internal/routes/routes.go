package routes

import (
	"gameconnect_backend/internal/config"
	"gameconnect_backend/internal/handlers"
	"gameconnect_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Три уровня доступа: публичные каталоги, маршруты игрока (JWT),
// консоль админа (admin или owner) и консоль владельца (только owner).
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	cfg *config.Config,
) {
	api := ginRouter.Group("/api/v1")
	{
		// Публичные маршруты
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.PublicHandler.RegisterRoutes(api)

		// Маршруты, требующие аутентификации
		authenticated := api.Group("")
		authenticated.Use(middleware.AuthMiddleware(cfg))
		{
			appHandlers.AuthHandler.RegisterProtectedRoutes(authenticated)
			appHandlers.ProfileHandler.RegisterRoutes(authenticated)

			players := authenticated.Group("")
			players.Use(middleware.RequirePlayer())
			{
				appHandlers.PlayerHandler.RegisterRoutes(players)
			}

			admin := authenticated.Group("/admin")
			admin.Use(middleware.RequireAdminOrOwner())
			{
				appHandlers.ListingHandler.RegisterRoutes(admin)
			}

			owner := authenticated.Group("/owner")
			owner.Use(middleware.RequireOwner())
			{
				appHandlers.OwnerHandler.RegisterRoutes(owner)
			}
		}
	}
}
