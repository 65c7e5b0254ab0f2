package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"careerprep/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title      string                `json:"title" binding:"required"`
	Questions  []models.QuizQuestion `json:"questions" binding:"required,min=1"`
	ArticleIDs []uint                `json:"article_ids"`
}

func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	for _, q := range req.Questions {
		if q.Question == "" || len(q.Options) < 2 {
			return nil, fmt.Errorf("%w: each question needs text and at least two options", ErrQuizInvalid)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return nil, fmt.Errorf("%w: each question must mark a valid correct option", ErrQuizInvalid)
		}
	}

	quiz := models.Quiz{
		Title:      req.Title,
		Questions:  req.Questions,
		ArticleIDs: req.ArticleIDs,
	}

	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (s *QuizService) GetQuizByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// ArticleFilter narrows the article listing. A nil date bound means
// unbounded on that side; Source "all" matches everything.
type ArticleFilter struct {
	Search   string
	Source   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// ListArticles returns study content newest-scraped first, optionally
// filtered by a title substring, source name, and scraped-at range.
func (s *QuizService) ListArticles(filter ArticleFilter) ([]models.Article, error) {
	query := s.db.Order("scraped_at DESC")
	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+strings.TrimSpace(filter.Search)+"%")
	}
	if filter.Source != "" && filter.Source != "all" {
		query = query.Where("source_name = ?", filter.Source)
	}
	if filter.DateFrom != nil {
		query = query.Where("scraped_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("scraped_at <= ?", *filter.DateTo)
	}

	var articles []models.Article
	err := query.Find(&articles).Error
	return articles, err
}

type CreateArticleRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	SourceName string `json:"source_name"`
	URL        string `json:"url"`
}

func (s *QuizService) CreateArticle(req *CreateArticleRequest) (*models.Article, error) {
	article := models.Article{
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		SourceName: req.SourceName,
		URL:        req.URL,
		ScrapedAt:  time.Now(),
	}

	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}

	return &article, nil
}

// UpdateArticleRequest carries partial updates; nil fields are untouched.
type UpdateArticleRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	SourceName *string `json:"source_name"`
	URL        *string `json:"url"`
}

func (s *QuizService) UpdateArticle(id uint, req *UpdateArticleRequest) (*models.Article, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.SourceName != nil {
		updates["source_name"] = *req.SourceName
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}

	var article models.Article
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if len(updates) == 0 {
		return &article, nil
	}

	if err := s.db.Model(&article).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *QuizService) DeleteArticle(id uint) error {
	result := s.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}
