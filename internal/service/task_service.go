package service

import (
	"context"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// noMatchID - фильтр, который заведомо не совпадает ни с одной строкой:
// база никогда не выдает id 0
const noMatchID uint = 0

type TaskService struct {
	tasks repository.TaskRepositoryInterface
	users repository.UserRepositoryInterface
}

func NewTaskService(tasks repository.TaskRepositoryInterface, users repository.UserRepositoryInterface) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// CreateTaskInput - данные новой задачи. Автором всегда становится
// текущий пользователь.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	AssigneeID  *uint
}

// UpdateTaskInput - частичное обновление: nil-поля не трогаются,
// очистить поле через патч нельзя
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *uint
}

// ListTasksInput - необязательные фильтры списка задач
type ListTasksInput struct {
	Status     *string
	Priority   *string
	AuthorID   *uint
	AssigneeID *uint
}

// Create создает задачу от имени текущего пользователя. Назначить задачу
// другому пользователю может только админ, себе - кто угодно.
func (s *TaskService) Create(ctx context.Context, currentUser *model.User, in CreateTaskInput) (*TaskDTO, error) {
	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		AuthorID:    currentUser.ID,
	}

	if in.AssigneeID != nil {
		assignee, err := s.users.GetByID(ctx, *in.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, ErrAssigneeNotFound
		}
		if currentUser.Role != model.RoleAdmin && currentUser.ID != assignee.ID {
			return nil, ErrAssignForbidden
		}
		task.AssigneeID = &assignee.ID
		task.Assignee = assignee
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	task.Author = *currentUser
	return mapTaskToDTO(task), nil
}

// Update применяет частичный патч к задаче. Смена исполнителя доступна
// только админу, даже если исполнитель - сам пользователь.
func (s *TaskService) Update(ctx context.Context, currentUser *model.User, taskID uint, in UpdateTaskInput) (*TaskDTO, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !hasTaskAccess(currentUser, task) {
		return nil, ErrForbidden
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.AssigneeID != nil {
		assignee, err := s.users.GetByID(ctx, *in.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, ErrAssigneeNotFound
		}
		if currentUser.Role != model.RoleAdmin {
			return nil, ErrReassignForbidden
		}
		task.AssigneeID = &assignee.ID
		task.Assignee = assignee
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return mapTaskToDTO(task), nil
}

// Delete удаляет задачу вместе с ее комментариями
func (s *TaskService) Delete(ctx context.Context, currentUser *model.User, taskID uint) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if !hasTaskAccess(currentUser, task) {
		return ErrForbidden
	}

	return s.tasks.Delete(ctx, task.ID)
}

// GetByID возвращает задачу с комментариями в порядке их создания
func (s *TaskService) GetByID(ctx context.Context, currentUser *model.User, taskID uint) (*TaskDTO, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !hasTaskAccess(currentUser, task) {
		return nil, ErrForbidden
	}

	return mapTaskToDTO(task), nil
}

// List возвращает страницу задач, подходящих под все заданные фильтры.
// Страницы нумеруются с нуля.
func (s *TaskService) List(ctx context.Context, currentUser *model.User, page, size int, in ListTasksInput) (*TaskPage, error) {
	if in.AuthorID != nil {
		author, err := s.users.GetByID(ctx, *in.AuthorID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			return nil, ErrAuthorNotFound
		}
	}
	if in.AssigneeID != nil {
		assignee, err := s.users.GetByID(ctx, *in.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, ErrAssigneeNotFound
		}
	}

	filter := repository.TaskFilter{
		Status:     in.Status,
		Priority:   in.Priority,
		AuthorID:   in.AuthorID,
		AssigneeID: in.AssigneeID,
	}

	if currentUser.Role != model.RoleAdmin {
		// Обычный пользователь не может фильтровать по чужим задачам:
		// чужой фильтр молча превращается в пустой результат
		if filter.AuthorID != nil && *filter.AuthorID != currentUser.ID {
			none := noMatchID
			filter.AuthorID = &none
		}
		if filter.AssigneeID != nil && *filter.AssigneeID != currentUser.ID {
			none := noMatchID
			filter.AssigneeID = &none
		}
	}

	tasks, total, err := s.tasks.List(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}

	content := make([]TaskDTO, 0, len(tasks))
	for i := range tasks {
		content = append(content, *mapTaskToDTO(&tasks[i]))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &TaskPage{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          page,
		Size:          size,
	}, nil
}
