package models

import (
	"time"
)

type AttemptAnswer struct {
	Question  string `json:"question"`
	Selected  int    `json:"selected"`
	Correct   int    `json:"correct"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizAttempt is one completed submission. Rows are append-only; scoring is a
// write-once fact and no update path exists.
type QuizAttempt struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	QuizID         uint            `json:"quiz_id" gorm:"index"`
	UserID         uint            `json:"user_id" gorm:"index"`
	StudentName    string          `json:"student_name"`
	StudentEmail   string          `json:"student_email"`
	Score          int             `json:"score" gorm:"not null"`
	TotalQuestions int             `json:"total_questions" gorm:"not null"`
	TimeTaken      int             `json:"time_taken" gorm:"not null;default:0"` // seconds
	Answers        []AttemptAnswer `json:"answers" gorm:"serializer:json"`
	CompletedAt    time.Time       `json:"completed_at"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
