package middleware

import (
	"net/http"
	"strings"

	"gameconnect_backend/internal/auth"
	"gameconnect_backend/internal/config"
	"gameconnect_backend/internal/logger"
	"gameconnect_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT.
// Кладет Identity субъекта в контекст запроса.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, cfg.JWT.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		identity := claims.Identity()
		c.Set(string(contextkeys.IdentityContextKey), identity)

		ctx := logger.WithUserID(c.Request.Context(), identity.SubjectID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequirePlayer пропускает только обычных пользователей (включая владельца)
func RequirePlayer() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || identity.Kind != auth.KindUser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: player account required"})
			return
		}
		c.Next()
	}
}

// RequireAdminOrOwner пропускает контент-админов и владельца
func RequireAdminOrOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.IsAdminOrOwner() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireOwner пропускает только владельца платформы
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.IsOwner() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: owner only"})
			return
		}
		c.Next()
	}
}

// GetIdentity извлекает Identity субъекта из контекста
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	val, exists := c.Get(string(contextkeys.IdentityContextKey))
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := val.(auth.Identity)
	return identity, ok
}
