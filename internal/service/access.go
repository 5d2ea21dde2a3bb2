package service

import (
	"tasktracker/internal/model"
)

// hasTaskAccess - единственный предикат доступа к конкретной задаче.
// Доступ есть у админа, автора и назначенного исполнителя. Все операции
// чтения, изменения и удаления задачи и ее комментариев проходят через
// эту проверку.
func hasTaskAccess(user *model.User, task *model.Task) bool {
	return user.Role == model.RoleAdmin ||
		task.AuthorID == user.ID ||
		(task.AssigneeID != nil && *task.AssigneeID == user.ID)
}
