package model

import (
	"time"
)

// Статусы задачи
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// Приоритеты задачи
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// IsValidStatus reports whether s is a member of the task status enum
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusDone
}

// IsValidPriority reports whether p is a member of the task priority enum
func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"size:500"`
	Status      string `gorm:"not null;check:status IN ('PENDING', 'IN_PROGRESS', 'DONE')"`
	Priority    string `gorm:"not null;check:priority IN ('LOW', 'MEDIUM', 'HIGH')"`
	AuthorID    uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author   User      `gorm:"foreignKey:AuthorID"`
	Assignee *User     `gorm:"foreignKey:AssigneeID"`
	Comments []Comment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}
