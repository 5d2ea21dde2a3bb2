package service_test

import (
	"context"
	"testing"
	"time"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCommentService() (*service.CommentService, *MockCommentRepository, *MockTaskRepository) {
	commentRepo := new(MockCommentRepository)
	taskRepo := new(MockTaskRepository)
	return service.NewCommentService(commentRepo, taskRepo), commentRepo, taskRepo
}

func TestCommentService_Create_Success(t *testing.T) {
	// Arrange
	svc, commentRepo, taskRepo := setupCommentService()
	user := regularUser()
	task := &model.Task{ID: 5, Title: "Task", AuthorID: user.ID, Author: *user}

	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*model.Comment)
			c.ID = 1
			c.CreatedAt = time.Now()
		}).
		Return(nil)

	// Act
	result, err := svc.Create(context.Background(), user, task.ID, "Looks good")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Looks good", result.Text)
	assert.Equal(t, user.ID, result.Author.ID)
	assert.False(t, result.CreatedAt.IsZero())
	commentRepo.AssertExpectations(t)
}

func TestCommentService_Create_NoPermission(t *testing.T) {
	svc, commentRepo, taskRepo := setupCommentService()
	user := regularUser()
	task := &model.Task{ID: 5, Title: "Task", AuthorID: 77, Author: model.User{ID: 77}}

	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)

	_, err := svc.Create(context.Background(), user, task.ID, "Sneaky comment")

	assert.ErrorIs(t, err, service.ErrForbidden)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Create_AsAdmin_Success(t *testing.T) {
	// Админ может комментировать любую задачу
	svc, commentRepo, taskRepo := setupCommentService()
	admin := adminUser()
	task := &model.Task{ID: 5, Title: "Task", AuthorID: 77, Author: model.User{ID: 77}}

	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

	result, err := svc.Create(context.Background(), admin, task.ID, "Admin note")

	assert.NoError(t, err)
	assert.Equal(t, admin.ID, result.Author.ID)
}

func TestCommentService_Create_TaskNotFound(t *testing.T) {
	svc, _, taskRepo := setupCommentService()
	user := regularUser()

	taskRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, repository.ErrTaskNotFound)

	_, err := svc.Create(context.Background(), user, 42, "Comment")

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestCommentService_ListByTask_Success(t *testing.T) {
	svc, commentRepo, taskRepo := setupCommentService()
	user := regularUser()
	task := &model.Task{ID: 5, Title: "Task", AuthorID: user.ID, Author: *user}

	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
	commentRepo.On("FindByTaskID", mock.Anything, task.ID).Return([]model.Comment{
		{ID: 1, Text: "First", AuthorID: user.ID, Author: *user, TaskID: task.ID},
		{ID: 2, Text: "Second", AuthorID: user.ID, Author: *user, TaskID: task.ID},
	}, nil)

	comments, err := svc.ListByTask(context.Background(), user, task.ID)

	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	// Порядок создания сохраняется
	assert.Equal(t, "First", comments[0].Text)
	assert.Equal(t, "Second", comments[1].Text)
}

func TestCommentService_ListByTask_NoPermission(t *testing.T) {
	svc, commentRepo, taskRepo := setupCommentService()
	user := regularUser()
	task := &model.Task{ID: 5, Title: "Task", AuthorID: 77, Author: model.User{ID: 77}}

	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)

	_, err := svc.ListByTask(context.Background(), user, task.ID)

	assert.ErrorIs(t, err, service.ErrForbidden)
	commentRepo.AssertNotCalled(t, "FindByTaskID", mock.Anything, mock.Anything)
}
