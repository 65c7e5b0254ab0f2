package models

import (
	"time"
)

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

// Quiz is created by admins and read-only to students. Questions keep their
// authored order.
type Quiz struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Title      string         `json:"title" gorm:"not null"`
	Questions  []QuizQuestion `json:"questions" gorm:"serializer:json;not null"`
	ArticleIDs []uint         `json:"article_ids" gorm:"serializer:json"`
	CreatedAt  time.Time      `json:"created_at"`
}
