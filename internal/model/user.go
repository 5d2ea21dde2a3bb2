package model

import (
	"time"
)

// Роли пользователей в системе
const (
	RoleUser  = "USER"  // видит только задачи, где он автор или исполнитель
	RoleAdmin = "ADMIN" // полный доступ ко всем задачам
)

type User struct {
	ID             uint      `gorm:"primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	Name           string    `gorm:"not null"`
	Role           string    `gorm:"not null;check:role IN ('USER', 'ADMIN')"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
