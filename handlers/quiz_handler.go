package handlers

import (
	"fmt"
	"net/http"
	"time"

	"careerprep/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quiz, err := h.quizService.CreateQuiz(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "quiz": quiz})
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quizzes": quizzes})
}

func (h *QuizHandler) GetQuizByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	quiz, err := h.quizService.GetQuizByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quiz": quiz})
}

func (h *QuizHandler) ListArticles(c *gin.Context) {
	filter := services.ArticleFilter{
		Search: c.Query("search"),
		Source: c.Query("source"),
	}

	var err error
	if filter.DateFrom, err = parseDateParam(c.Query("dateFrom")); err != nil {
		respondBindError(c, err)
		return
	}
	if filter.DateTo, err = parseDateParam(c.Query("dateTo")); err != nil {
		respondBindError(c, err)
		return
	}

	articles, err := h.quizService.ListArticles(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "articles": articles})
}

// parseDateParam accepts a date ("2006-01-02") or a full RFC3339 timestamp.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", value)
}

func (h *QuizHandler) CreateArticle(c *gin.Context) {
	var req services.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	article, err := h.quizService.CreateArticle(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "article": article, "message": "Article created successfully"})
}

func (h *QuizHandler) UpdateArticle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	var req services.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	article, err := h.quizService.UpdateArticle(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "article": article, "message": "Article updated successfully"})
}

func (h *QuizHandler) DeleteArticle(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.quizService.DeleteArticle(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Article deleted successfully"})
}
