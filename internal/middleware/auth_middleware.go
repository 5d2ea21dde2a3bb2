package middleware

import (
	"net/http"
	"strings"

	"tasktracker/internal/auth"

	"github.com/gin-gonic/gin"
)

// UserIDKey - ключ, под которым ID аутентифицированного пользователя
// кладется в контекст запроса
const UserIDKey = "userID"

// JWTAuthMiddleware проверяет заголовок Authorization и кладет ID
// пользователя в контекст. Запросы без валидного токена отклоняются с 401.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := auth.ParseToken(parts[1], jwtSecret)
		if err != nil {
			if err.Error() == "invalid user ID in token" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			}
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
