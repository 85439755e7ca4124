package middleware

import (
	"net/http"
	"strings"

	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/config"
	"tradelab_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireAuth - middleware проверки identity claim.
// Без валидного токена запрос дальше не идет.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, config.GetConfig().JWT.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		identity := auth.Authenticated(claims.ClientID)
		c.Set(identityKey, identity)

		// client_id попадает во все логи этого запроса
		ctx := logger.WithClientID(c.Request.Context(), claims.ClientID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OptionalAuth - как RequireAuth, но отсутствие токена не ошибка:
// вызов продолжается анонимом. Нужен публичным маршрутам.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set(identityKey, auth.Anonymous())
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, config.GetConfig().JWT.Secret)
		if err != nil {
			// Битый токен на публичном маршруте приравниваем к анониму
			c.Set(identityKey, auth.Anonymous())
			c.Next()
			return
		}

		c.Set(identityKey, auth.Authenticated(claims.ClientID))
		ctx := logger.WithClientID(c.Request.Context(), claims.ClientID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetIdentity извлекает identity вызывающего из gin.Context.
func GetIdentity(c *gin.Context) auth.Identity {
	val, exists := c.Get(identityKey)
	if !exists {
		return auth.Anonymous()
	}
	identity, ok := val.(auth.Identity)
	if !ok {
		return auth.Anonymous()
	}
	return identity
}
