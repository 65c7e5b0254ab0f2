package models

import (
	"time"
)

// AuthUser is an identity-provider account. Profile rows in users reference it
// through auth_id; passwords live only here, as bcrypt hashes.
type AuthUser struct {
	ID             string            `json:"id" gorm:"primaryKey"`
	Email          string            `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string            `json:"-" gorm:"not null"`
	EmailConfirmed bool              `json:"email_confirmed" gorm:"not null;default:false"`
	Metadata       map[string]string `json:"metadata,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time         `json:"created_at"`
}
