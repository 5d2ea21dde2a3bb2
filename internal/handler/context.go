package handler

import (
	"net/http"

	"tasktracker/internal/middleware"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/gin-gonic/gin"
)

// getCurrentUser достает аутентифицированного пользователя, положенного в
// контекст JWT middleware. Дальше по сервисам он передается только явным
// параметром. При ошибке пишет ответ и возвращает false.
func getCurrentUser(c *gin.Context, users repository.UserRepositoryInterface) (*model.User, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}

	id, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return nil, false
	}

	user, err := users.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user information"})
		return nil, false
	}
	if user == nil {
		// Токен валиден, но пользователя уже удалили напрямую в базе
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
		return nil, false
	}

	return user, true
}
