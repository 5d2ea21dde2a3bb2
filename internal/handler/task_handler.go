package handler

import (
	"net/http"
	"strconv"
	"strings"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks *service.TaskService
	users repository.UserRepositoryInterface
}

func NewTaskHandler(tasks *service.TaskService, users repository.UserRepositoryInterface) *TaskHandler {
	return &TaskHandler{tasks: tasks, users: users}
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Status      string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS DONE"`
	Priority    string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
	AssigneeID  *uint  `json:"assigneeId"`
}

// UpdateTaskRequest - частичный патч: отсутствующие поля не меняются
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Status      *string `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	AssigneeID  *uint   `json:"assigneeId"`
}

// Create создает новую задачу
// @Summary      Create a task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateTaskRequest true "Task data"
// @Success      201 {object} service.TaskDTO
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := getCurrentUser(c, h.users)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be blank"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), user, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetByID возвращает задачу со всеми комментариями
// @Summary      Get a task by ID
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200 {object} service.TaskDTO
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	user, ok := getCurrentUser(c, h.users)
	if !ok {
		return
	}

	taskID, err := parseIDParam(c)
	if err != nil {
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), user, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update применяет частичный патч к задаче
// @Summary      Update a task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Task ID"
// @Param        request body UpdateTaskRequest true "Fields to update"
// @Success      200 {object} service.TaskDTO
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	user, ok := getCurrentUser(c, h.users)
	if !ok {
		return
	}

	taskID, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be blank"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), user, taskID, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete удаляет задачу вместе с комментариями
// @Summary      Delete a task
// @Tags         Tasks
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Success      204
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	user, ok := getCurrentUser(c, h.users)
	if !ok {
		return
	}

	taskID, err := parseIDParam(c)
	if err != nil {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), user, taskID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List возвращает страницу задач с учетом фильтров
// @Summary      List tasks
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        page query int false "Page number (0-based)" default(0)
// @Param        size query int false "Page size" default(10)
// @Param        status query string false "Filter by status"
// @Param        priority query string false "Filter by priority"
// @Param        authorId query int false "Filter by author ID"
// @Param        assigneeId query int false "Filter by assignee ID"
// @Success      200 {object} service.TaskPage
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	user, ok := getCurrentUser(c, h.users)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page value"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size value"})
		return
	}

	var in service.ListTasksInput
	if status := c.Query("status"); status != "" {
		if !model.IsValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
			return
		}
		in.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		if !model.IsValidPriority(priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority value"})
			return
		}
		in.Priority = &priority
	}
	if authorID, ok := parseIDQuery(c, "authorId"); !ok {
		return
	} else if authorID != nil {
		in.AuthorID = authorID
	}
	if assigneeID, ok := parseIDQuery(c, "assigneeId"); !ok {
		return
	} else if assigneeID != nil {
		in.AssigneeID = assigneeID
	}

	tasks, err := h.tasks.List(c.Request.Context(), user, page, size, in)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// parseIDParam парсит числовой :id из пути, при ошибке пишет 400
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return 0, err
	}
	return uint(id), nil
}

// parseIDQuery парсит необязательный числовой query-параметр
func parseIDQuery(c *gin.Context, name string) (*uint, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " value"})
		return nil, false
	}
	parsed := uint(id)
	return &parsed, true
}
