package models

import (
	"time"
)

// Invitation authorizes one email to self-register as a student. The unique
// index on invite_code is load-bearing: invite-code generation inserts and
// retries on a duplicate-key failure instead of pre-checking.
type Invitation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Email           string    `json:"email" gorm:"index;not null"`
	InviteCode      string    `json:"invite_code" gorm:"uniqueIndex;not null"`
	StudentID       string    `json:"student_id" gorm:"index"`
	FullName        string    `json:"full_name" gorm:"not null"`
	IsRegistered    bool      `json:"is_registered" gorm:"not null;default:false"`
	IsPasswordReset bool      `json:"is_password_reset" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Invitation) TableName() string {
	return "student_invitations"
}
