package service

import (
	"context"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

type CommentService struct {
	comments repository.CommentRepositoryInterface
	tasks    repository.TaskRepositoryInterface
}

func NewCommentService(comments repository.CommentRepositoryInterface, tasks repository.TaskRepositoryInterface) *CommentService {
	return &CommentService{comments: comments, tasks: tasks}
}

// Create добавляет комментарий к задаче. Комментировать может любой,
// у кого есть доступ к самой задаче.
func (s *CommentService) Create(ctx context.Context, currentUser *model.User, taskID uint, text string) (*CommentDTO, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !hasTaskAccess(currentUser, task) {
		return nil, ErrForbidden
	}

	comment := &model.Comment{
		Text:     text,
		AuthorID: currentUser.ID,
		TaskID:   task.ID,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	comment.Author = *currentUser
	dto := mapCommentToDTO(comment)
	return &dto, nil
}

// ListByTask возвращает комментарии задачи в порядке создания
func (s *CommentService) ListByTask(ctx context.Context, currentUser *model.User, taskID uint) ([]CommentDTO, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !hasTaskAccess(currentUser, task) {
		return nil, ErrForbidden
	}

	comments, err := s.comments.FindByTaskID(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	dtos := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, mapCommentToDTO(&comments[i]))
	}
	return dtos, nil
}
