package service

import "errors"

// Ошибки бизнес-слоя. Обработчики переводят их в HTTP статусы,
// сами сервисы ничего не знают про HTTP.
var (
	// ErrEmailTaken is returned when registering with an email that already exists
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned on any login failure; unknown email and
	// wrong password are deliberately indistinguishable
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAuthorNotFound is returned when an author filter names a missing user
	ErrAuthorNotFound = errors.New("author not found")

	// ErrAssigneeNotFound is returned when an assignee id names a missing user
	ErrAssigneeNotFound = errors.New("assignee not found")

	// ErrForbidden is returned when the caller has no access to the task
	ErrForbidden = errors.New("you do not have permission to access this task")

	// ErrAssignForbidden is returned when a non-admin assigns a task to someone else
	ErrAssignForbidden = errors.New("only admins can assign tasks to other users")

	// ErrReassignForbidden is returned when a non-admin changes a task's assignee
	ErrReassignForbidden = errors.New("only admins can reassign tasks")
)
