package models

import (
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthID    string    `json:"auth_id" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null;default:'student'"` // admin, student; immutable after creation
	StudentID string    `json:"student_id"`
	CreatedAt time.Time `json:"created_at"`
}
