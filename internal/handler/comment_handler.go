package handler

import (
	"net/http"
	"strings"

	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *service.CommentService
	users    repository.UserRepositoryInterface
}

func NewCommentHandler(comments *service.CommentService, users repository.UserRepositoryInterface) *CommentHandler {
	return &CommentHandler{comments: comments, users: users}
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

// Create добавляет комментарий к задаче
// @Summary      Create a comment
// @Tags         Comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Task ID"
// @Param        request body CreateCommentRequest true "Comment text"
// @Success      201 {object} service.CommentDTO
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /tasks/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := getCurrentUser(c, h.users)
	if !ok {
		return
	}

	taskID, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text cannot be blank"})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), user, taskID, req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// List возвращает комментарии задачи в порядке создания
// @Summary      List comments for a task
// @Tags         Comments
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200 {array} service.CommentDTO
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /tasks/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	user, ok := getCurrentUser(c, h.users)
	if !ok {
		return
	}

	taskID, err := parseIDParam(c)
	if err != nil {
		return
	}

	comments, err := h.comments.ListByTask(c.Request.Context(), user, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
