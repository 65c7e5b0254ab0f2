package models

import (
	"time"
)

// Article is scraped study content that quizzes can reference by ID.
type Article struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content"`
	SourceName string    `json:"source_name" gorm:"index"`
	URL        string    `json:"url"`
	ScrapedAt  time.Time `json:"scraped_at" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
}
