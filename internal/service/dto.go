package service

import (
	"time"

	"tasktracker/internal/model"
)

// UserDTO - публичное представление пользователя, хэш пароля наружу не выходит
type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Author    UserDTO   `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type TaskDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	Author      UserDTO      `json:"author"`
	Assignee    *UserDTO     `json:"assignee"`
	Comments    []CommentDTO `json:"comments"`
}

// TaskPage - одна страница списка задач
type TaskPage struct {
	Content       []TaskDTO `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
}

func mapUserToDTO(user *model.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func mapCommentToDTO(comment *model.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		Text:      comment.Text,
		Author:    mapUserToDTO(&comment.Author),
		CreatedAt: comment.CreatedAt,
	}
}

func mapTaskToDTO(task *model.Task) *TaskDTO {
	dto := &TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Author:      mapUserToDTO(&task.Author),
		Comments:    make([]CommentDTO, 0, len(task.Comments)),
	}

	if task.Assignee != nil {
		assignee := mapUserToDTO(task.Assignee)
		dto.Assignee = &assignee
	}

	for i := range task.Comments {
		dto.Comments = append(dto.Comments, mapCommentToDTO(&task.Comments[i]))
	}

	return dto
}
