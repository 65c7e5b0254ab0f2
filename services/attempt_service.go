package services

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"strconv"
	"time"

	"careerprep/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	attemptsCacheKey = "scoreboard:attempts"
	attemptsCacheTTL = 30 * time.Second
)

type AttemptService struct {
	db    *gorm.DB
	redis *redis.Client
	hub   *Hub
}

func NewAttemptService(db *gorm.DB, redisClient *redis.Client, hub *Hub) *AttemptService {
	return &AttemptService{
		db:    db,
		redis: redisClient,
		hub:   hub,
	}
}

type RecordAttemptRequest struct {
	QuizID         uint                   `json:"quiz_id"`
	UserID         uint                   `json:"user_id"`
	StudentName    string                 `json:"student_name"`
	StudentEmail   string                 `json:"student_email"`
	Score          float64                `json:"score"`
	TotalQuestions int                    `json:"total_questions" binding:"required,min=1"`
	Answers        []models.AttemptAnswer `json:"answers"`
	TimeTaken      int                    `json:"time_taken"`
}

// RecordAttempt appends one immutable attempt row. Partial credit is rounded
// to the nearest integer before persisting; the caller is trusted on bounds.
func (s *AttemptService) RecordAttempt(req *RecordAttemptRequest) (*models.QuizAttempt, error) {
	name := req.StudentName
	if name == "" {
		name = "Unknown Student"
	}
	email := req.StudentEmail
	if email == "" {
		email = "unknown@example.com"
	}

	attempt := models.QuizAttempt{
		QuizID:         req.QuizID,
		UserID:         req.UserID,
		StudentName:    name,
		StudentEmail:   email,
		Score:          int(math.Round(req.Score)),
		TotalQuestions: req.TotalQuestions,
		TimeTaken:      req.TimeTaken,
		Answers:        req.Answers,
		CompletedAt:    time.Now(),
	}

	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	s.invalidateCache()

	// Push the fresh scoreboard to connected admin clients.
	if s.hub != nil {
		if attempts, err := s.ListAttempts(); err == nil {
			s.hub.Broadcast("scoreboard_update", Summarize(attempts))
		}
	}

	return &attempt, nil
}

// ListAttempts returns formatted attempts, newest completed first, serving
// from the redis cache when it is warm.
func (s *AttemptService) ListAttempts() ([]FormattedAttempt, error) {
	if cached := s.getCachedAttempts(); cached != nil {
		return cached, nil
	}

	var attempts []models.QuizAttempt
	if err := s.db.Order("completed_at DESC").Find(&attempts).Error; err != nil {
		return nil, err
	}

	titles := s.quizTitles(attempts)
	formatted := make([]FormattedAttempt, 0, len(attempts))
	for _, attempt := range attempts {
		formatted = append(formatted, formatAttempt(attempt, titles))
	}

	s.cacheAttempts(formatted)
	return formatted, nil
}

// GetScoreboard reduces the current attempt list into per-quiz summaries.
func (s *AttemptService) GetScoreboard() ([]QuizSummary, error) {
	attempts, err := s.ListAttempts()
	if err != nil {
		return nil, err
	}
	return Summarize(attempts), nil
}

func formatAttempt(attempt models.QuizAttempt, titles map[uint]string) FormattedAttempt {
	quizID := "practice"
	quizTitle := "Practice Quiz"
	if attempt.QuizID != 0 {
		quizID = strconvUint(attempt.QuizID)
		if title, ok := titles[attempt.QuizID]; ok {
			quizTitle = title
		}
	}

	totalPoints := attempt.TotalQuestions * pointsPerQuestion
	answers := attempt.Answers
	if answers == nil {
		answers = []models.AttemptAnswer{}
	}

	return FormattedAttempt{
		ID:             attempt.ID,
		QuizID:         quizID,
		QuizTitle:      quizTitle,
		StudentName:    attempt.StudentName,
		StudentEmail:   attempt.StudentEmail,
		Score:          attempt.Score,
		TotalQuestions: totalPoints,
		Percentage:     percentage(attempt.Score, totalPoints),
		Answers:        answers,
		TimeTaken:      attempt.TimeTaken,
		AttemptedAt:    attempt.CompletedAt,
	}
}

func strconvUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (s *AttemptService) quizTitles(attempts []models.QuizAttempt) map[uint]string {
	ids := []uint{}
	seen := map[uint]bool{}
	for _, attempt := range attempts {
		if attempt.QuizID != 0 && !seen[attempt.QuizID] {
			seen[attempt.QuizID] = true
			ids = append(ids, attempt.QuizID)
		}
	}

	titles := map[uint]string{}
	if len(ids) == 0 {
		return titles
	}

	var quizzes []models.Quiz
	if err := s.db.Where("id IN ?", ids).Find(&quizzes).Error; err != nil {
		log.Printf("Failed to resolve quiz titles: %v", err)
		return titles
	}
	for _, quiz := range quizzes {
		titles[quiz.ID] = quiz.Title
	}
	return titles
}

func (s *AttemptService) getCachedAttempts() []FormattedAttempt {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(context.Background(), attemptsCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error reading attempts cache: %v", err)
		}
		return nil
	}

	var attempts []FormattedAttempt
	if err := json.Unmarshal([]byte(data), &attempts); err != nil {
		log.Printf("Failed to unmarshal attempts cache: %v", err)
		return nil
	}
	return attempts
}

func (s *AttemptService) cacheAttempts(attempts []FormattedAttempt) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(attempts)
	if err != nil {
		log.Printf("Failed to marshal attempts cache: %v", err)
		return
	}
	if err := s.redis.Set(context.Background(), attemptsCacheKey, data, attemptsCacheTTL).Err(); err != nil {
		log.Printf("Failed to store attempts cache: %v", err)
	}
}

func (s *AttemptService) invalidateCache() {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(context.Background(), attemptsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate attempts cache: %v", err)
	}
}
