package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tasktracker/internal/handler"
	"tasktracker/internal/middleware"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Мок репозитория комментариев
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByTaskID(ctx context.Context, taskID uint) ([]model.Comment, error) {
	args := m.Called(ctx, taskID)
	comments := args.Get(0)
	if comments == nil {
		return nil, args.Error(1)
	}
	return comments.([]model.Comment), args.Error(1)
}

func setupCommentTest(currentUserID uint) (*gin.Engine, *MockCommentRepository, *MockTaskRepository, *MockUserRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	commentRepo := new(MockCommentRepository)
	taskRepo := new(MockTaskRepository)
	userRepo := new(MockUserRepository)
	commentService := service.NewCommentService(commentRepo, taskRepo)
	commentHandler := handler.NewCommentHandler(commentService, userRepo)

	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, currentUserID)
		c.Next()
	})

	r.POST("/tasks/:id/comments", commentHandler.Create)
	r.GET("/tasks/:id/comments", commentHandler.List)

	return r, commentRepo, taskRepo, userRepo
}

func TestCommentHandler_Create_Success(t *testing.T) {
	// Arrange
	router, commentRepo, taskRepo, userRepo := setupCommentTest(1)
	user := &model.User{ID: 1, Email: "user@example.com", Name: "User", Role: model.RoleUser}
	task := &model.Task{ID: 5, Title: "Task", AuthorID: 1, Author: *user}

	userRepo.On("GetByID", mock.Anything, uint(1)).Return(user, nil)
	taskRepo.On("GetByID", mock.Anything, uint(5)).Return(task, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*model.Comment)
			c.ID = 1
			c.CreatedAt = time.Now()
		}).
		Return(nil)

	reqBody := handler.CreateCommentRequest{Text: "Looks good"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/tasks/5/comments", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var comment service.CommentDTO
	err := json.Unmarshal(resp.Body.Bytes(), &comment)
	assert.NoError(t, err)
	assert.Equal(t, "Looks good", comment.Text)
	assert.Equal(t, uint(1), comment.Author.ID)
}

func TestCommentHandler_Create_BlankText(t *testing.T) {
	router, commentRepo, _, userRepo := setupCommentTest(1)
	user := &model.User{ID: 1, Email: "user@example.com", Name: "User", Role: model.RoleUser}
	userRepo.On("GetByID", mock.Anything, uint(1)).Return(user, nil)

	reqBody := map[string]string{"text": "   "}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/tasks/5/comments", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentHandler_Create_TaskNotFound(t *testing.T) {
	router, _, taskRepo, userRepo := setupCommentTest(1)
	user := &model.User{ID: 1, Email: "user@example.com", Name: "User", Role: model.RoleUser}

	userRepo.On("GetByID", mock.Anything, uint(1)).Return(user, nil)
	taskRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, repository.ErrTaskNotFound)

	reqBody := handler.CreateCommentRequest{Text: "Comment"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/tasks/42/comments", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCommentHandler_List_Success(t *testing.T) {
	router, commentRepo, taskRepo, userRepo := setupCommentTest(1)
	user := &model.User{ID: 1, Email: "user@example.com", Name: "User", Role: model.RoleUser}
	task := &model.Task{ID: 5, Title: "Task", AuthorID: 1, Author: *user}

	userRepo.On("GetByID", mock.Anything, uint(1)).Return(user, nil)
	taskRepo.On("GetByID", mock.Anything, uint(5)).Return(task, nil)
	commentRepo.On("FindByTaskID", mock.Anything, uint(5)).Return([]model.Comment{
		{ID: 1, Text: "First", AuthorID: 1, Author: *user, TaskID: 5},
		{ID: 2, Text: "Second", AuthorID: 1, Author: *user, TaskID: 5},
	}, nil)

	req, _ := http.NewRequest("GET", "/tasks/5/comments", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var comments []service.CommentDTO
	err := json.Unmarshal(resp.Body.Bytes(), &comments)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "First", comments[0].Text)
	assert.Equal(t, "Second", comments[1].Text)
}

func TestCommentHandler_List_Forbidden(t *testing.T) {
	router, commentRepo, taskRepo, userRepo := setupCommentTest(1)
	user := &model.User{ID: 1, Email: "user@example.com", Name: "User", Role: model.RoleUser}
	task := &model.Task{ID: 5, Title: "Task", AuthorID: 77, Author: model.User{ID: 77}}

	userRepo.On("GetByID", mock.Anything, uint(1)).Return(user, nil)
	taskRepo.On("GetByID", mock.Anything, uint(5)).Return(task, nil)

	req, _ := http.NewRequest("GET", "/tasks/5/comments", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	commentRepo.AssertNotCalled(t, "FindByTaskID", mock.Anything, mock.Anything)
}
