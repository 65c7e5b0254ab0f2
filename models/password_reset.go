package models

import (
	"time"
)

// PasswordReset is a recovery link issued by the identity layer. Tokens are
// single-use and expire 24 hours after creation.
type PasswordReset struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	Email     string     `json:"email" gorm:"index;not null"`
	Token     string     `json:"token" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
