package model

import (
	"time"
)

// Comment привязан ровно к одной задаче, никогда не редактируется и не
// удаляется отдельно от нее
type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"size:500;not null"`
	AuthorID  uint      `gorm:"not null;index"`
	TaskID    uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Author User `gorm:"foreignKey:AuthorID"`
	Task   Task `gorm:"foreignKey:TaskID"`
}
